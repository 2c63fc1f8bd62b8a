package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

func TestMaterializer_MonthGridFebruary2024(t *testing.T) {
	ref := date(2024, 2, 15)
	b := BuildBucket(PeriodFor(ViewMonth, ref), nil)

	grid := NewMaterializer(DefaultOptions()).Month(b, ref)

	assert.Equal(t, int(date(2024, 2, 1).Weekday()), grid.LeadingBlanks)
	assert.Equal(t, 4, grid.LeadingBlanks)
	assert.Len(t, grid.DayCells(), 29)
	assert.Len(t, grid.Cells, 33)

	for _, cell := range grid.Cells[:grid.LeadingBlanks] {
		assert.True(t, cell.Blank)
	}
	assert.Equal(t, "2024-02-01", grid.DayCells()[0].Date)
	assert.Equal(t, "2024-02-29", grid.DayCells()[28].Date)
}

func TestMaterializer_MonthCellCapAndOverflow(t *testing.T) {
	ref := date(2024, 3, 1)
	slots := make([]domain.CupoSlot, 0, 5)
	for i := int64(1); i <= 5; i++ {
		slots = append(slots, slotOn(i, date(2024, 3, 8)))
	}
	b := BuildBucket(PeriodFor(ViewMonth, ref), slots)

	grid := NewMaterializer(DefaultOptions()).Month(b, ref)
	cell := grid.DayCells()[7]

	assert.Equal(t, "2024-03-08", cell.Date)
	assert.Len(t, cell.Slots, 3)
	assert.Equal(t, 5, cell.Count)
	assert.Equal(t, 2, cell.Overflow)
	assert.Equal(t, int64(1), cell.Slots[0].ID)

	custom := NewMaterializer(Options{MonthCellCap: 4}).Month(b, ref).DayCells()[7]
	assert.Len(t, custom.Slots, 4)
	assert.Equal(t, 1, custom.Overflow)
}

func TestMaterializer_WeekHasSevenUncappedCells(t *testing.T) {
	ref := date(2024, 3, 13)
	slots := make([]domain.CupoSlot, 0, 5)
	for i := int64(1); i <= 5; i++ {
		slots = append(slots, slotOn(i, date(2024, 3, 12)))
	}
	b := BuildBucket(PeriodFor(ViewWeek, ref), slots)

	grid := NewMaterializer(DefaultOptions()).Week(b, ref)

	require.Len(t, grid.Cells, 7)
	assert.Equal(t, "2024-03-10", grid.Start)
	assert.Equal(t, "2024-03-16", grid.End)
	assert.Equal(t, time.Sunday, date(2024, 3, 10).Weekday())
	assert.Len(t, grid.Cells[2].Slots, 5)
	assert.Equal(t, 0, grid.Cells[2].Overflow)
}

func TestMaterializer_DayViewCarriesMetrics(t *testing.T) {
	destination := "Bariloche"
	slot := domain.CupoSlot{
		ID:            7,
		ServiceID:     3,
		ProviderID:    9,
		Date:          date(2024, 7, 1),
		TotalSeats:    10,
		ReservedSeats: 10,
		Status:        domain.CupoStatusActive,
		Metadata:      domain.CupoMetadata{Destination: &destination, Value: 1500, Currency: "USD"},
	}
	b := BuildBucket(PeriodFor(ViewDay, slot.Date), []domain.CupoSlot{slot})

	view := NewMaterializer(DefaultOptions()).Day(b, slot.Date)

	require.Len(t, view.Slots, 1)
	got := view.Slots[0]
	assert.Equal(t, "2024-07-01", view.Date)
	assert.Equal(t, 0, got.AvailableSeats)
	assert.Equal(t, 100, got.OccupancyPercentage)
	assert.Equal(t, domain.AvailabilitySoldOut, got.AvailabilityStatus)
	assert.False(t, got.Interactive)
	assert.Equal(t, &destination, got.Destination)
	assert.Contains(t, got.PriceLabel, "1,500.00")
	assert.Contains(t, got.PriceLabel, "$")
}

func TestMaterializer_DoesNotMutateBucket(t *testing.T) {
	ref := date(2024, 3, 1)
	b := BuildBucket(PeriodFor(ViewMonth, ref), []domain.CupoSlot{slotOn(1, date(2024, 3, 2))})
	before := b.DayCounts()

	m := NewMaterializer(DefaultOptions())
	m.Month(b, ref)
	m.Week(b, ref)
	m.Day(b, date(2024, 3, 2))

	assert.Equal(t, before, b.DayCounts())
	assert.Equal(t, 1, b.Len())
}

func TestPriceLabel_UnknownCurrency(t *testing.T) {
	label := PriceLabel(language.AmericanEnglish, 12.5, "BTC")

	assert.True(t, strings.HasSuffix(label, " BTC"), label)
	assert.True(t, strings.HasPrefix(label, "12"), label)
}

func TestNewHandoff(t *testing.T) {
	open := slotOn(1, date(2024, 3, 2))
	handoff, err := NewHandoff(open)
	require.NoError(t, err)
	assert.Equal(t, open.ServiceID, handoff.Cupo.ServiceID)
	assert.Equal(t, open.ProviderID, handoff.Cupo.ProviderID)

	full := open
	full.ReservedSeats = full.TotalSeats
	_, err = NewHandoff(full)
	assert.ErrorIs(t, err, ErrSlotNotReservable)

	completed := open
	completed.Status = domain.CupoStatusCompleted
	_, err = NewHandoff(completed)
	assert.ErrorIs(t, err, ErrSlotNotReservable)
}
