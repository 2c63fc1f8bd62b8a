package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

var testNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso", value: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "us padded", value: "06/14/2024", want: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		{name: "us short", value: "6/4/2024", want: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)},
		{name: "trimmed", value: " 2024-01-01 ", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty", value: "", wantErr: true},
		{name: "day first", value: "14/06/2024", wantErr: true},
		{name: "impossible day", value: "2023-02-29", wantErr: true},
		{name: "garbage", value: "yesterday", wantErr: true},
		{name: "with time", value: "2024-01-01T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparsableDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestValidateDate_DateOfBirth(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "yesterday", value: "2024-06-14", wantErr: false},
		{name: "yesterday us format", value: "06/14/2024", wantErr: false},
		{name: "today", value: "2024-06-15", wantErr: true},
		{name: "tomorrow", value: "2024-06-16", wantErr: true},
		{name: "exactly 120 years", value: "1904-06-15", wantErr: false},
		{name: "120 years next day", value: "1904-06-16", wantErr: false},
		{name: "121 years", value: "1903-06-15", wantErr: true},
		{name: "unparsable", value: "15.06.1990", wantErr: true},
		{name: "empty is not checked", value: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateDate(tt.value, domain.LabelDateOfBirth, testNow)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateDate_DateOfBirthRange(t *testing.T) {
	// любая дата строго до сегодняшнего дня в пределах 120 лет валидна
	for d := testNow.AddDate(-120, 0, 0); d.Before(testNow.AddDate(0, 0, -1)); d = d.AddDate(0, 0, 97) {
		assert.Empty(t, ValidateDate(d.Format(domain.DateFormat), domain.LabelDateOfBirth, testNow), d.Format(domain.DateFormat))
	}
	// любая дата начиная с сегодняшнего дня невалидна
	for d := testNow; d.Before(testNow.AddDate(2, 0, 0)); d = d.AddDate(0, 0, 31) {
		assert.NotEmpty(t, ValidateDate(d.Format(domain.DateFormat), domain.LabelDateOfBirth, testNow), d.Format(domain.DateFormat))
	}
}

func TestValidateDate_PassportExpiration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "yesterday", value: "2024-06-14", wantErr: true},
		{name: "today", value: "2024-06-15", wantErr: true},
		{name: "tomorrow", value: "2024-06-16", wantErr: false},
		{name: "far future us format", value: "12/31/2034", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateDate(tt.value, domain.LabelPassportExpiration, testNow)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateDate_TodayIsCalendarDayOfNow(t *testing.T) {
	// поздний вечер в другом часовом поясе: "сегодня" определяется по локальной дате now
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2024, time.June, 15, 23, 0, 0, 0, loc)

	assert.NotEmpty(t, ValidateDate("2024-06-15", domain.LabelDateOfBirth, now))
	assert.Empty(t, ValidateDate("2024-06-16", domain.LabelPassportExpiration, now))
}
