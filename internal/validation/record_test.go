package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

func validPrimary() domain.PersonRecord {
	return domain.PersonRecord{
		Name:           "John",
		Surname:        "Doe",
		DNI:            "30123456",
		DOB:            "1985-03-20",
		Email:          "john.doe@mail.com",
		Phone:          "+54 11 5555-1234",
		PassportNumber: "AAB123456",
		Nationality:    "Argentine",
		ExpirationDate: "2030-01-01",
		Gender:         "male",
	}
}

func TestValidateRecord_ValidPrimary(t *testing.T) {
	errs := ValidateRecord(validPrimary(), Options{Primary: true, Now: testNow})
	assert.True(t, errs.IsEmpty(), "unexpected errors: %v", errs)
}

func TestValidateRecord_NameWithDigitBlocksSubmission(t *testing.T) {
	rec := validPrimary()
	rec.Name = "John1"

	errs := ValidateRecord(rec, Options{Primary: true, Now: testNow})

	require.False(t, errs.IsEmpty())
	assert.Contains(t, errs, domain.FieldName)
	assert.Len(t, errs, 1)
}

func TestValidateRecord_PassportRequiredOnlyForPrimary(t *testing.T) {
	rec := validPrimary()
	rec.PassportNumber = ""

	primaryErrs := ValidateRecord(rec, Options{Primary: true, Now: testNow})
	assert.Contains(t, primaryErrs, domain.FieldPassportNumber)

	companionErrs := ValidateRecord(rec, Options{Primary: false, Now: testNow})
	assert.True(t, companionErrs.IsEmpty())

	rec.PassportNumber = "X1"
	companionErrs = ValidateRecord(rec, Options{Primary: false, Now: testNow})
	assert.Contains(t, companionErrs, domain.FieldPassportNumber)
}

func TestValidateRecord_RequiredFieldsAlwaysRun(t *testing.T) {
	errs := ValidateRecord(domain.PersonRecord{}, Options{Now: testNow})

	assert.ElementsMatch(t, []string{domain.FieldName, domain.FieldSurname, domain.FieldDNI}, errs.Fields())
}

func TestValidateRecord_OptionalFieldsOnlyWhenPresent(t *testing.T) {
	rec := domain.PersonRecord{
		Name:           "Ann",
		Surname:        "Lee",
		DNI:            "1234567",
		DOB:            "2099-01-01",
		Email:          "bad",
		Phone:          "123",
		Nationality:    "R2D2",
		ExpirationDate: "2000-01-01",
		Gender:         "robot",
	}

	errs := ValidateRecord(rec, Options{Now: testNow})

	assert.ElementsMatch(t, []string{
		domain.FieldDOB,
		domain.FieldEmail,
		domain.FieldPhone,
		domain.FieldNationality,
		domain.FieldExpirationDate,
		domain.FieldGender,
	}, errs.Fields())
	for _, msg := range errs {
		assert.NotEmpty(t, msg)
	}
}

func TestValidateRecord_Idempotent(t *testing.T) {
	rec := validPrimary()
	rec.Surname = "D"
	rec.Email = "nope"
	opts := Options{Primary: true, Now: testNow}

	first := ValidateRecord(rec, opts)
	second := ValidateRecord(rec, opts)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestValidator_CompanionWithoutDNIDoesNotGrowList(t *testing.T) {
	list := domain.NewCompanionList()
	validate := Validator(Options{Now: testNow})

	_, errs := list.Add(domain.PersonRecord{Name: "Ann", Surname: "Lee"}, validate)

	assert.Contains(t, errs, domain.FieldDNI)
	assert.Equal(t, 0, list.Len())
}

func TestError_CarriesFields(t *testing.T) {
	fields := Prefixed(CompanionKey("1"), domain.ValidationErrors{domain.FieldDNI: "DNI is required"})
	err := fmt.Errorf("wrapped: %w", NewError(fields))

	assert.ErrorIs(t, err, ErrInvalidRecord)

	got, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "DNI is required", got["companions[1].dni"])
	assert.Contains(t, err.Error(), "companions[1].dni")

	_, ok = AsError(errors.New("other"))
	assert.False(t, ok)
}
