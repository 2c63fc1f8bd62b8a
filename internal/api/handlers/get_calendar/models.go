package get_calendar

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	getCalendar "github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

var (
	errInvalidView   = errors.New("invalid view")
	errInvalidDate   = errors.New("invalid date")
	errInvalidFilter = errors.New("invalid filter")
)

// ParseQuery разбирает query параметры view, date, serviceId, providerId
// Без даты календарь открывается на сегодняшнем дне
func ParseQuery(q url.Values, now time.Time) (*getCalendar.Request, error) {
	view, err := calendar.ParseViewMode(q.Get("view"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidView, err)
	}

	date := calendar.DateOnly(now)
	if raw := q.Get("date"); raw != "" {
		date, err = validation.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
	}

	req := &getCalendar.Request{View: view, Date: date}

	if req.ServiceID, err = optionalID(q, "serviceId"); err != nil {
		return nil, err
	}
	if req.ProviderID, err = optionalID(q, "providerId"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalID(q url.Values, name string) (*int64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidFilter, name, raw)
	}
	return &id, nil
}
