package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// ViewMode режим отображения календаря
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ParseViewMode конвертирует строку в ViewMode, пустая строка означает месяц
func ParseViewMode(s string) (ViewMode, error) {
	switch mode := ViewMode(s); mode {
	case ViewMonth, ViewWeek, ViewDay:
		return mode, nil
	case "":
		return ViewMonth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
}

// Period диапазон дат, обе границы включительно
type Period struct {
	Start time.Time
	End   time.Time
}

// PeriodFor вычисляет диапазон для режима и опорной даты:
// месяц - с первого по последний день, неделя - с воскресенья по субботу, день - сама дата
func PeriodFor(view ViewMode, ref time.Time) Period {
	day := DateOnly(ref)

	switch view {
	case ViewWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return Period{Start: start, End: start.AddDate(0, 0, 6)}
	case ViewDay:
		return Period{Start: day, End: day}
	default:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(0, 1, -1)}
	}
}

// Shift сдвигает опорную дату на steps единиц режима (месяцев, недель или дней)
// При сдвиге по месяцам день ограничивается последним днем целевого месяца
func Shift(view ViewMode, ref time.Time, steps int) time.Time {
	day := DateOnly(ref)

	switch view {
	case ViewWeek:
		return day.AddDate(0, 0, 7*steps)
	case ViewDay:
		return day.AddDate(0, 0, steps)
	default:
		first := time.Date(day.Year(), day.Month()+time.Month(steps), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1).Day()
		d := day.Day()
		if d > last {
			d = last
		}
		return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
	}
}

// Contains проверяет, что календарный день t попадает в диапазон
func (p Period) Contains(t time.Time) bool {
	day := DateOnly(t)
	return !day.Before(p.Start) && !day.After(p.End)
}

// Days возвращает все дни диапазона по порядку
func (p Period) Days() []time.Time {
	days := make([]time.Time, 0, 31)
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String формат "YYYY-MM-DD..YYYY-MM-DD" для логов
func (p Period) String() string {
	return p.Start.Format(domain.DateFormat) + ".." + p.End.Format(domain.DateFormat)
}

// DateOnly календарный день t как полночь UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
