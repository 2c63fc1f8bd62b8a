package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// dateLayouts поддерживаемые форматы ввода дат, порядок важен: ISO проверяется первым
var dateLayouts = []string{
	domain.DateFormat,
	domain.USDateFormat,
}

// ParseDate разбирает дату в формате YYYY-MM-DD или MM/DD/YYYY
// Возвращает полночь UTC указанного дня либо ErrUnparsableDate
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparsableDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, value)
}

// ValidateDate проверяет дату с учетом ее смысла:
// дата рождения строго в прошлом и возраст не более 120 лет, срок действия паспорта строго в будущем
// Для прочих подписей проверяется только формат
func ValidateDate(value, label string, now time.Time) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	date, err := ParseDate(value)
	if err != nil {
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD or MM/DD/YYYY)", label)
	}

	today := dateOnly(now)

	switch label {
	case domain.LabelDateOfBirth:
		if !date.Before(today) {
			return fmt.Sprintf("%s must be in the past", label)
		}
		if ageInYears(date, today) > domain.MaxAgeYears {
			return fmt.Sprintf("%s implies an age over %d years", label, domain.MaxAgeYears)
		}
	case domain.LabelPassportExpiration:
		if !date.After(today) {
			return fmt.Sprintf("%s must be in the future", label)
		}
	}

	return ""
}

// dateOnly обнуляет время и переводит дату в UTC, чтобы сравнивать только календарные дни
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ageInYears полных лет на дату today
func ageInYears(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}
