package validation

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// Options контекст валидации записи
type Options struct {
	Primary bool      // основной пассажир: номер паспорта обязателен
	Now     time.Time // "сегодня" для проверки дат
}

// ValidateRecord проверяет запись целиком и возвращает ошибки только по невалидным полям
// Обязательные поля проверяются всегда, необязательные только если заполнены
func ValidateRecord(rec domain.PersonRecord, opts Options) domain.ValidationErrors {
	errs := domain.ValidationErrors{
		domain.FieldName:    ValidateName(rec.Name, "First name"),
		domain.FieldSurname: ValidateName(rec.Surname, "Last name"),
		domain.FieldDNI:     ValidateDNI(rec.DNI),
	}

	if opts.Primary || present(rec.PassportNumber) {
		errs[domain.FieldPassportNumber] = ValidatePassportNumber(rec.PassportNumber, opts.Primary)
	}
	if present(rec.DOB) {
		errs[domain.FieldDOB] = ValidateDate(rec.DOB, domain.LabelDateOfBirth, opts.Now)
	}
	if present(rec.Email) {
		errs[domain.FieldEmail] = ValidateEmail(rec.Email)
	}
	if present(rec.Phone) {
		errs[domain.FieldPhone] = ValidatePhone(rec.Phone)
	}
	if present(rec.Nationality) {
		errs[domain.FieldNationality] = ValidateNationality(rec.Nationality)
	}
	if present(rec.ExpirationDate) {
		errs[domain.FieldExpirationDate] = ValidateDate(rec.ExpirationDate, domain.LabelPassportExpiration, opts.Now)
	}
	if present(rec.Gender) {
		errs[domain.FieldGender] = ValidateGender(rec.Gender)
	}

	return errs.Compact()
}

// Validator возвращает валидатор записи с фиксированным контекстом
// Используется списком сопровождающих, который не зависит от этого пакета
func Validator(opts Options) domain.RecordValidator {
	return func(rec domain.PersonRecord) domain.ValidationErrors {
		return ValidateRecord(rec, opts)
	}
}

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}
