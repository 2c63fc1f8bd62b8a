package calendar

import (
	"time"

	"golang.org/x/text/language"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// Options параметры отображения календаря
type Options struct {
	MonthCellCap int // сколько cupos показывать в ячейке месяца, остальные уходят в "+N"
	Thresholds   domain.AvailabilityThresholds
	Locale       language.Tag
}

// DefaultOptions параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		MonthCellCap: domain.DefaultMonthCellCap,
		Thresholds:   domain.DefaultAvailabilityThresholds(),
		Locale:       language.AmericanEnglish,
	}
}

// SlotView cupo с производными метриками для отображения
type SlotView struct {
	ID                  int64
	ServiceID           int64
	ProviderID          int64
	Date                string
	Status              domain.CupoStatus
	TotalSeats          int
	ReservedSeats       int
	AvailableSeats      int
	OccupancyPercentage int
	AvailabilityStatus  domain.AvailabilityStatus
	Interactive         bool
	Destination         *string
	ProviderName        *string
	RoomType            *string
	FlightInfo          *string
	FlightClass         *string
	Value               float64
	Currency            string
	PriceLabel          string
}

// DayCell ячейка сетки
type DayCell struct {
	Date     string // пусто для ведущих пустых ячеек
	Day      int
	Blank    bool
	Slots    []SlotView
	Count    int // всего cupos за день
	Overflow int // сколько cupos не поместилось в ячейку
}

// MonthGrid сетка месяца: ведущие пустые ячейки до дня недели 1-го числа, затем по ячейке на день
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []DayCell
}

// DayCells ячейки без ведущих пустых
func (g MonthGrid) DayCells() []DayCell {
	return g.Cells[g.LeadingBlanks:]
}

// WeekGrid ровно 7 ячеек с воскресенья по субботу, без ограничения количества cupos
type WeekGrid struct {
	Start string
	End   string
	Cells []DayCell
}

// DayView все cupos выбранного дня с полными данными
type DayView struct {
	Date  string
	Slots []SlotView
}

// Materializer строит представления календаря из bucket; bucket не изменяется
type Materializer struct {
	opts Options
}

// NewMaterializer создает построитель представлений, незаданные параметры берутся по умолчанию
func NewMaterializer(opts Options) *Materializer {
	defaults := DefaultOptions()
	if opts.MonthCellCap <= 0 {
		opts.MonthCellCap = defaults.MonthCellCap
	}
	if opts.Thresholds.LowBelow <= 0 && opts.Thresholds.LimitedBelow <= 0 {
		opts.Thresholds = defaults.Thresholds
	}
	if opts.Locale == language.Und {
		opts.Locale = defaults.Locale
	}
	return &Materializer{opts: opts}
}

// Options текущие параметры отображения
func (m *Materializer) Options() Options {
	return m.opts
}

// Slot строит представление одного cupo
func (m *Materializer) Slot(slot domain.CupoSlot) SlotView {
	return SlotView{
		ID:                  slot.ID,
		ServiceID:           slot.ServiceID,
		ProviderID:          slot.ProviderID,
		Date:                DateKey(slot.Date),
		Status:              slot.Status,
		TotalSeats:          slot.TotalSeats,
		ReservedSeats:       slot.ReservedSeats,
		AvailableSeats:      slot.AvailableSeats(),
		OccupancyPercentage: slot.OccupancyRounded(),
		AvailabilityStatus:  slot.AvailabilityStatus(m.opts.Thresholds),
		Interactive:         slot.IsReservable(),
		Destination:         slot.Metadata.Destination,
		ProviderName:        slot.Metadata.ProviderName,
		RoomType:            slot.Metadata.RoomType,
		FlightInfo:          slot.Metadata.FlightInfo,
		FlightClass:         slot.Metadata.FlightClass,
		Value:               slot.Metadata.Value,
		Currency:            slot.Metadata.Currency,
		PriceLabel:          PriceLabel(m.opts.Locale, slot.Metadata.Value, slot.Metadata.Currency),
	}
}

// Month строит сетку месяца, содержащего ref
func (m *Materializer) Month(b *Bucket, ref time.Time) MonthGrid {
	period := PeriodFor(ViewMonth, ref)
	blanks := int(period.Start.Weekday())

	grid := MonthGrid{
		Year:          period.Start.Year(),
		Month:         period.Start.Month(),
		LeadingBlanks: blanks,
		Cells:         make([]DayCell, 0, blanks+31),
	}

	for i := 0; i < blanks; i++ {
		grid.Cells = append(grid.Cells, DayCell{Blank: true})
	}
	for _, day := range period.Days() {
		grid.Cells = append(grid.Cells, m.cell(b, day, m.opts.MonthCellCap))
	}

	return grid
}

// Week строит сетку недели, содержащей ref
func (m *Materializer) Week(b *Bucket, ref time.Time) WeekGrid {
	period := PeriodFor(ViewWeek, ref)

	grid := WeekGrid{
		Start: DateKey(period.Start),
		End:   DateKey(period.End),
		Cells: make([]DayCell, 0, 7),
	}
	for _, day := range period.Days() {
		grid.Cells = append(grid.Cells, m.cell(b, day, 0))
	}

	return grid
}

// Day строит список cupos дня ref
func (m *Materializer) Day(b *Bucket, ref time.Time) DayView {
	day := DateOnly(ref)
	return DayView{
		Date:  DateKey(day),
		Slots: m.views(b.Slots(day), 0),
	}
}

// cell строит ячейку дня; limit <= 0 означает без ограничения
func (m *Materializer) cell(b *Bucket, day time.Time, limit int) DayCell {
	slots := b.Slots(day)

	cell := DayCell{
		Date:  DateKey(day),
		Day:   day.Day(),
		Slots: m.views(slots, limit),
		Count: len(slots),
	}
	if limit > 0 && len(slots) > limit {
		cell.Overflow = len(slots) - limit
	}
	return cell
}

func (m *Materializer) views(slots []domain.CupoSlot, limit int) []SlotView {
	if limit > 0 && len(slots) > limit {
		slots = slots[:limit]
	}
	out := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		out = append(out, m.Slot(slot))
	}
	return out
}
