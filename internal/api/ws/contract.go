package ws

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	getCalendar "github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
)

// CalendarFetcher выборка и построение календаря
type CalendarFetcher interface {
	Fetch(ctx context.Context, period calendar.Period, filter getCalendar.Filter) (*calendar.Bucket, error)
	Materialize(view calendar.ViewMode, ref time.Time, bucket *calendar.Bucket) *getCalendar.Response
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
