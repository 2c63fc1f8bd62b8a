package handlers

import (
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
)

// PassengerResponse HTTP модель пассажира
type PassengerResponse struct {
	ID        int64               `json:"id"`
	PrimaryID *int64              `json:"primaryId,omitempty"`
	Record    domain.PersonRecord `json:"record"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

// PassengerWithCompanionsResponse HTTP модель основного пассажира с сопровождающими
type PassengerWithCompanionsResponse struct {
	Passenger  PassengerResponse   `json:"passenger"`
	Companions []PassengerResponse `json:"companions"`
}

// SlotResponse HTTP модель cupo с метриками
type SlotResponse struct {
	ID                  int64   `json:"id"`
	ServiceID           int64   `json:"serviceId"`
	ProviderID          int64   `json:"providerId"`
	Date                string  `json:"date"`
	Status              string  `json:"status"`
	TotalSeats          int     `json:"totalSeats"`
	ReservedSeats       int     `json:"reservedSeats"`
	AvailableSeats      int     `json:"availableSeats"`
	OccupancyPercentage int     `json:"occupancyPercentage"`
	AvailabilityStatus  string  `json:"availabilityStatus"`
	Interactive         bool    `json:"interactive"`
	Destination         *string `json:"destination,omitempty"`
	ProviderName        *string `json:"providerName,omitempty"`
	RoomType            *string `json:"roomType,omitempty"`
	FlightInfo          *string `json:"flightInfo,omitempty"`
	FlightClass         *string `json:"flightClass,omitempty"`
	Value               float64 `json:"value"`
	Currency            string  `json:"currency"`
	PriceLabel          string  `json:"priceLabel"`
}

// DayCellResponse HTTP модель ячейки календаря
type DayCellResponse struct {
	Date     string         `json:"date,omitempty"`
	Day      int            `json:"day,omitempty"`
	Blank    bool           `json:"blank"`
	Slots    []SlotResponse `json:"slots"`
	Count    int            `json:"count"`
	Overflow int            `json:"overflow"`
}

// CalendarResponse HTTP модель календаря
type CalendarResponse struct {
	View          string            `json:"view"`
	Date          string            `json:"date"`
	PeriodStart   string            `json:"periodStart"`
	PeriodEnd     string            `json:"periodEnd"`
	DayCounts     map[string]int    `json:"dayCounts"`
	LeadingBlanks int               `json:"leadingBlanks,omitempty"`
	Cells         []DayCellResponse `json:"cells,omitempty"`
	Slots         []SlotResponse    `json:"slots,omitempty"`
}

// FromPassenger конвертирует пассажира в HTTP модель
func FromPassenger(p *domain.Passenger) PassengerResponse {
	return PassengerResponse{
		ID:        p.ID,
		PrimaryID: p.PrimaryID,
		Record:    p.Record,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// FromPassengers конвертирует список пассажиров
func FromPassengers(ps []*domain.Passenger) []PassengerResponse {
	out := make([]PassengerResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPassenger(p))
	}
	return out
}

// FromPassengerWithCompanions конвертирует пассажира с сопровождающими
func FromPassengerWithCompanions(p *domain.PassengerWithCompanions) *PassengerWithCompanionsResponse {
	return &PassengerWithCompanionsResponse{
		Passenger:  FromPassenger(p.Passenger),
		Companions: FromPassengers(p.Companions),
	}
}

// FromSlotView конвертирует представление cupo
func FromSlotView(v calendar.SlotView) SlotResponse {
	return SlotResponse{
		ID:                  v.ID,
		ServiceID:           v.ServiceID,
		ProviderID:          v.ProviderID,
		Date:                v.Date,
		Status:              string(v.Status),
		TotalSeats:          v.TotalSeats,
		ReservedSeats:       v.ReservedSeats,
		AvailableSeats:      v.AvailableSeats,
		OccupancyPercentage: v.OccupancyPercentage,
		AvailabilityStatus:  string(v.AvailabilityStatus),
		Interactive:         v.Interactive,
		Destination:         v.Destination,
		ProviderName:        v.ProviderName,
		RoomType:            v.RoomType,
		FlightInfo:          v.FlightInfo,
		FlightClass:         v.FlightClass,
		Value:               v.Value,
		Currency:            v.Currency,
		PriceLabel:          v.PriceLabel,
	}
}

func fromSlotViews(views []calendar.SlotView) []SlotResponse {
	out := make([]SlotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSlotView(v))
	}
	return out
}

func fromCells(cells []calendar.DayCell) []DayCellResponse {
	out := make([]DayCellResponse, 0, len(cells))
	for _, c := range cells {
		out = append(out, DayCellResponse{
			Date:     c.Date,
			Day:      c.Day,
			Blank:    c.Blank,
			Slots:    fromSlotViews(c.Slots),
			Count:    c.Count,
			Overflow: c.Overflow,
		})
	}
	return out
}

// FromCalendar конвертирует календарь в HTTP модель
// month и week отдают ячейки, day отдает плоский список cupos
func FromCalendar(resp *get_calendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		View:        string(resp.View),
		Date:        resp.Date.Format(domain.DateFormat),
		PeriodStart: resp.Period.Start.Format(domain.DateFormat),
		PeriodEnd:   resp.Period.End.Format(domain.DateFormat),
		DayCounts:   resp.DayCounts,
	}

	switch {
	case resp.Month != nil:
		out.LeadingBlanks = resp.Month.LeadingBlanks
		out.Cells = fromCells(resp.Month.Cells)
	case resp.Week != nil:
		out.Cells = fromCells(resp.Week.Cells)
	case resp.Day != nil:
		out.Slots = fromSlotViews(resp.Day.Slots)
	}

	return out
}
