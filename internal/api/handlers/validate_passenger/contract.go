package validate_passenger

import "github.com/m04kA/SMC-TravelDesk/internal/domain"

type PassengerService interface {
	Validate(rec domain.PersonRecord, primary bool) domain.ValidationErrors
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
