package domain

import (
	"math"
	"time"
)

// CupoStatus статус cupo
type CupoStatus string

const (
	CupoStatusActive    CupoStatus = "active"
	CupoStatusInactive  CupoStatus = "inactive"
	CupoStatusSoldOut   CupoStatus = "sold_out"
	CupoStatusCancelled CupoStatus = "cancelled"
	CupoStatusCompleted CupoStatus = "completed"
)

// AvailabilityStatus производный статус доступности мест
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityLimited   AvailabilityStatus = "limited_availability"
	AvailabilityLow       AvailabilityStatus = "low_availability"
	AvailabilitySoldOut   AvailabilityStatus = "sold_out"
)

// CupoMetadata описательные данные cupo
type CupoMetadata struct {
	Destination  *string
	ProviderName *string
	RoomType     *string
	FlightInfo   *string
	FlightClass  *string
	Value        float64
	Currency     string // ISO 4217
}

// CupoSlot предварительно выкупленный блок мест (номера, места в самолете) на конкретную дату
type CupoSlot struct {
	ID            int64
	ServiceID     int64
	ProviderID    int64
	Date          time.Time // дата услуги, время суток не используется
	TotalSeats    int
	ReservedSeats int
	Status        CupoStatus
	Metadata      CupoMetadata
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AvailabilityThresholds пороги для low_availability и limited_availability
// Доступность считается "ниже порога", если свободных мест строго меньше значения
type AvailabilityThresholds struct {
	LowBelow     int
	LimitedBelow int
}

// DefaultAvailabilityThresholds пороги по умолчанию
func DefaultAvailabilityThresholds() AvailabilityThresholds {
	return AvailabilityThresholds{
		LowBelow:     DefaultLowAvailabilityBelow,
		LimitedBelow: DefaultLimitedAvailabilityBelow,
	}
}

// AvailableSeats количество свободных мест, никогда не меньше нуля
func (c *CupoSlot) AvailableSeats() int {
	available := c.TotalSeats - c.ReservedSeats
	if available < 0 {
		return 0
	}
	return available
}

// OccupancyPercentage процент занятости (0-100)
func (c *CupoSlot) OccupancyPercentage() float64 {
	if c.TotalSeats <= 0 {
		return 0
	}
	return float64(c.ReservedSeats) / float64(c.TotalSeats) * 100
}

// OccupancyRounded процент занятости, округленный для отображения
func (c *CupoSlot) OccupancyRounded() int {
	return int(math.Round(c.OccupancyPercentage()))
}

// AvailabilityStatus вычисляет статус доступности по порогам
func (c *CupoSlot) AvailabilityStatus(th AvailabilityThresholds) AvailabilityStatus {
	available := c.AvailableSeats()
	switch {
	case available == 0:
		return AvailabilitySoldOut
	case available < th.LowBelow:
		return AvailabilityLow
	case available < th.LimitedBelow:
		return AvailabilityLimited
	default:
		return AvailabilityAvailable
	}
}

// IsClosed возвращает true для завершенных и отмененных cupos
func (c *CupoSlot) IsClosed() bool {
	return c.Status == CupoStatusCompleted || c.Status == CupoStatusCancelled
}

// IsReservable возвращает true, если по cupo можно начать продажу
func (c *CupoSlot) IsReservable() bool {
	return c.AvailableSeats() > 0 && !c.IsClosed()
}

// DateKey ключ дня в формате YYYY-MM-DD
func (c *CupoSlot) DateKey() string {
	return c.Date.Format(DateFormat)
}

// CupoFilter фильтр выборки cupos за период
type CupoFilter struct {
	StartDate  time.Time // включительно
	EndDate    time.Time // включительно
	ServiceID  *int64
	ProviderID *int64
	Statuses   []CupoStatus // пусто - все статусы
}

// OpenCupoStatuses статусы, которые планировщик переводит в completed после даты услуги
var OpenCupoStatuses = []CupoStatus{
	CupoStatusActive,
	CupoStatusInactive,
	CupoStatusSoldOut,
}

// ParseCupoStatus конвертирует строку в CupoStatus с валидацией
func ParseCupoStatus(s string) (CupoStatus, bool) {
	switch status := CupoStatus(s); status {
	case CupoStatusActive, CupoStatusInactive, CupoStatusSoldOut, CupoStatusCancelled, CupoStatusCompleted:
		return status, true
	}
	return "", false
}
