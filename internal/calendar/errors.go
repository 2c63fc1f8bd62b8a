package calendar

import "errors"

var (
	// ErrInvalidViewMode возвращается при неизвестном режиме календаря
	ErrInvalidViewMode = errors.New("calendar: invalid view mode")

	// ErrSlotNotReservable возвращается при попытке передать в продажу cupo без мест или в закрытом статусе
	ErrSlotNotReservable = errors.New("calendar: cupo is not reservable")
)
