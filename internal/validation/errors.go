package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

var (
	// ErrUnparsableDate возвращается, когда строка не соответствует ни одному из поддерживаемых форматов даты
	ErrUnparsableDate = errors.New("validation: unparsable date")

	// ErrInvalidRecord базовая ошибка для *Error, используется с errors.Is
	ErrInvalidRecord = errors.New("validation: invalid record")
)

// Error ошибка валидации с картой полей, которую обработчики отдают клиенту как есть
type Error struct {
	Fields domain.ValidationErrors
}

// NewError создает ошибку валидации из карты полей
func NewError(fields domain.ValidationErrors) *Error {
	return &Error{Fields: fields}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidRecord, strings.Join(e.Fields.Fields(), ", "))
}

func (e *Error) Unwrap() error {
	return ErrInvalidRecord
}

// AsError извлекает карту полей из цепочки ошибок
func AsError(err error) (domain.ValidationErrors, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}

// Prefixed добавляет префикс к ключам: "dni" -> "companions[1].dni"
func Prefixed(prefix string, errs domain.ValidationErrors) domain.ValidationErrors {
	out := make(domain.ValidationErrors, len(errs))
	for field, msg := range errs {
		out[prefix+"."+field] = msg
	}
	return out
}

// CompanionKey ключ сопровождающего в карте ошибок
func CompanionKey(key string) string {
	return fmt.Sprintf("companions[%s]", key)
}
