package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^(\+?[1-9]\d{9,14})$`)
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
)

// ValidateName проверяет имя или фамилию: обязательное поле, только буквы, пробелы, дефисы и апострофы
func ValidateName(value, label string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Sprintf("%s is required", label)
	}
	if !namePattern.MatchString(value) {
		return fmt.Sprintf("%s can only contain letters, spaces, hyphens and apostrophes", label)
	}
	if utf8.RuneCountInString(value) < domain.MinNameLength {
		return fmt.Sprintf("%s must be at least %d characters", label, domain.MinNameLength)
	}
	return ""
}

// ValidateDNI проверяет номер документа: обязательное поле длиной 7-20 символов
func ValidateDNI(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "DNI is required"
	}
	if n := utf8.RuneCountInString(value); n < domain.MinDNILength || n > domain.MaxDNILength {
		return fmt.Sprintf("DNI must be between %d and %d characters", domain.MinDNILength, domain.MaxDNILength)
	}
	return ""
}

// ValidateEmail проверяет email, пустое значение допустимо
func ValidateEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePhone проверяет телефон после удаления пробелов, дефисов и скобок
func ValidatePhone(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if !phonePattern.MatchString(NormalizePhone(value)) {
		return "Please enter a valid phone number (10-15 digits)"
	}
	return ""
}

// NormalizePhone удаляет из номера пробелы, дефисы и скобки
func NormalizePhone(value string) string {
	return phoneSeparators.ReplaceAllString(value, "")
}

// ValidatePassportNumber проверяет номер паспорта; required задает контекст основного пассажира
func ValidatePassportNumber(value string, required bool) string {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return "Passport number is required"
		}
		return ""
	}
	if n := utf8.RuneCountInString(value); n < domain.MinPassportLength || n > domain.MaxPassportLength {
		return fmt.Sprintf("Passport number must be between %d and %d characters",
			domain.MinPassportLength, domain.MaxPassportLength)
	}
	return ""
}

// ValidateNationality проверяет гражданство, пустое значение допустимо
func ValidateNationality(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !namePattern.MatchString(value) {
		return "Nationality can only contain letters, spaces, hyphens and apostrophes"
	}
	return ""
}

// ValidateGender проверяет пол, пустое значение допустимо
func ValidateGender(value string) string {
	value = strings.TrimSpace(value)
	switch domain.Gender(value) {
	case "", domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		return ""
	}
	return "Gender must be one of male, female or other"
}
