package passengers

import "errors"

var (
	// ErrPassengerNotFound возвращается, когда пассажир не найден
	ErrPassengerNotFound = errors.New("passengers: passenger not found")

	// ErrNotCompanion возвращается при попытке повысить основного пассажира
	ErrNotCompanion = errors.New("passengers: passenger is not a companion")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("passengers: internal error")
)
