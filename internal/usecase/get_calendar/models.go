package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
)

// Filter фильтр cupos календаря
type Filter struct {
	ServiceID  *int64
	ProviderID *int64
}

// Request модель запроса календаря
type Request struct {
	View calendar.ViewMode
	Date time.Time // опорная дата
	Filter
}

// Response bucket периода и представление для выбранного режима
// Заполнено ровно одно из Month, Week, Day
type Response struct {
	View      calendar.ViewMode
	Date      time.Time
	Period    calendar.Period
	Bucket    *calendar.Bucket
	DayCounts map[string]int
	Month     *calendar.MonthGrid
	Week      *calendar.WeekGrid
	Day       *calendar.DayView
}
