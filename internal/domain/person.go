package domain

import (
	"sort"
	"time"
)

// Gender пол пассажира
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Ключи полей в карте ошибок валидации (совпадают с JSON-ключами записи)
const (
	FieldName            = "name"
	FieldSurname         = "surname"
	FieldDNI             = "dni"
	FieldDOB             = "dob"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassportNumber  = "passportNumber"
	FieldNationality     = "nationality"
	FieldExpirationDate  = "expirationDate"
	FieldGender          = "gender"
	FieldPassportImage   = "passportImage"
	FieldSpecialRequests = "specialRequests"
)

// PersonRecord данные пассажира или сопровождающего в том виде, в котором их ввел оператор
type PersonRecord struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	DNI             string `json:"dni"`
	DOB             string `json:"dob,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	PassportNumber  string `json:"passportNumber,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	ExpirationDate  string `json:"expirationDate,omitempty"`
	Gender          string `json:"gender,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	PassportImage   string `json:"passportImage,omitempty"`
}

// ValidationErrors ошибки валидации: поле -> сообщение
// Отсутствие ключа означает, что поле валидно
type ValidationErrors map[string]string

// IsEmpty возвращает true, если ошибок нет
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Compact возвращает копию без пустых сообщений
func (e ValidationErrors) Compact() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for field, msg := range e {
		if msg != "" {
			out[field] = msg
		}
	}
	return out
}

// Fields возвращает отсортированный список полей с ошибками
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Passenger сохраненный пассажир
// PrimaryID == nil - основной пассажир, иначе сопровождающий основного пассажира PrimaryID
type Passenger struct {
	ID        int64
	PrimaryID *int64
	Record    PersonRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompanion возвращает true, если пассажир привязан к основному пассажиру
func (p *Passenger) IsCompanion() bool {
	return p.PrimaryID != nil
}

// PassengerWithCompanions основной пассажир вместе с сопровождающими
type PassengerWithCompanions struct {
	Passenger  *Passenger
	Companions []*Passenger
}
