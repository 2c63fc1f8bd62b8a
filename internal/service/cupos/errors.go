package cupos

import "errors"

var (
	// ErrCupoNotFound возвращается, когда cupo не найден
	ErrCupoNotFound = errors.New("cupos: cupo not found")

	// ErrNotReservable возвращается, если cupo нельзя передать в продажу
	ErrNotReservable = errors.New("cupos: cupo cannot be handed off")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cupos: internal error")
)
