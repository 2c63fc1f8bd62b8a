package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "simple", value: "John", wantErr: false},
		{name: "hyphen and apostrophe", value: "O'Neil-Smith", wantErr: false},
		{name: "with spaces", value: "Mary Ann", wantErr: false},
		{name: "trimmed to valid", value: "  Jo  ", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "only spaces", value: "   ", wantErr: true},
		{name: "too short", value: "J", wantErr: true},
		{name: "digit", value: "John1", wantErr: true},
		{name: "symbol", value: "Jo#n", wantErr: true},
		{name: "dot", value: "J.R.", wantErr: true},
		{name: "underscore", value: "John_Doe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateName(tt.value, "First name")
			if tt.wantErr {
				assert.NotEmpty(t, msg)
				assert.True(t, strings.HasPrefix(msg, "First name"))
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateName_RejectsDigitsAndSymbols(t *testing.T) {
	for _, r := range "0123456789!@#$%^&*()_+=[]{};:\",.<>/?\\|`~" {
		value := "Ann" + string(r) + "e"
		assert.NotEmpty(t, ValidateName(value, "Last name"), "value %q should be rejected", value)
	}
}

func TestValidateDNI(t *testing.T) {
	assert.NotEmpty(t, ValidateDNI(""))
	assert.NotEmpty(t, ValidateDNI("123456"))
	assert.Empty(t, ValidateDNI("1234567"))
	assert.Empty(t, ValidateDNI(strings.Repeat("9", 20)))
	assert.NotEmpty(t, ValidateDNI(strings.Repeat("9", 21)))
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, ValidateEmail(""))
	assert.Empty(t, ValidateEmail("ops@agency.travel"))
	assert.NotEmpty(t, ValidateEmail("ops@agency"))
	assert.NotEmpty(t, ValidateEmail("ops agency@mail.com"))
	assert.NotEmpty(t, ValidateEmail("@mail.com"))
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "", wantErr: false},
		{value: "(555) 123-4567", wantErr: false},
		{value: "+1 555 123 4567", wantErr: false},
		{value: "+54 9 11 1234-5678", wantErr: false},
		{value: "0123456789", wantErr: true},
		{value: "12345", wantErr: true},
		{value: "1234567890123456", wantErr: true},
		{value: "555-CALL-NOW", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if tt.wantErr {
				assert.NotEmpty(t, ValidatePhone(tt.value))
			} else {
				assert.Empty(t, ValidatePhone(tt.value))
			}
		})
	}
}

func TestValidatePassportNumber(t *testing.T) {
	assert.NotEmpty(t, ValidatePassportNumber("", true))
	assert.Empty(t, ValidatePassportNumber("", false))
	assert.NotEmpty(t, ValidatePassportNumber("AB", false))
	assert.Empty(t, ValidatePassportNumber("AB1", true))
	assert.NotEmpty(t, ValidatePassportNumber(strings.Repeat("X", 21), false))
}

func TestValidateNationality(t *testing.T) {
	assert.Empty(t, ValidateNationality(""))
	assert.Empty(t, ValidateNationality("New Zealander"))
	assert.NotEmpty(t, ValidateNationality("AR1"))
}

func TestValidateGender(t *testing.T) {
	assert.Empty(t, ValidateGender(""))
	assert.Empty(t, ValidateGender("male"))
	assert.Empty(t, ValidateGender("female"))
	assert.Empty(t, ValidateGender("other"))
	assert.NotEmpty(t, ValidateGender("unknown"))
}
