package validation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// Normalize приводит валидную запись к каноническому виду перед сохранением:
// обрезает пробелы, схлопывает повторные пробелы в именах, переводит даты в ISO,
// номер паспорта в верхний регистр, гражданство в Title Case
func Normalize(rec domain.PersonRecord) domain.PersonRecord {
	out := domain.PersonRecord{
		Name:            collapseSpaces(rec.Name),
		Surname:         collapseSpaces(rec.Surname),
		DNI:             strings.TrimSpace(rec.DNI),
		DOB:             normalizeDate(rec.DOB),
		Email:           strings.ToLower(strings.TrimSpace(rec.Email)),
		Phone:           NormalizePhone(strings.TrimSpace(rec.Phone)),
		PassportNumber:  strings.ToUpper(strings.TrimSpace(rec.PassportNumber)),
		ExpirationDate:  normalizeDate(rec.ExpirationDate),
		Gender:          strings.ToLower(strings.TrimSpace(rec.Gender)),
		SpecialRequests: strings.TrimSpace(rec.SpecialRequests),
		PassportImage:   strings.TrimSpace(rec.PassportImage),
	}

	if nationality := collapseSpaces(rec.Nationality); nationality != "" {
		// Caser хранит состояние, поэтому создается на каждый вызов
		out.Nationality = cases.Title(language.Und).String(nationality)
	}

	return out
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// normalizeDate переводит дату в ISO; нераспознанное значение возвращается без изменений
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format(domain.DateFormat)
}
