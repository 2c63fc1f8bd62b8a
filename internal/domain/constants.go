package domain

// Форматы дат
const (
	DateFormat   = "2006-01-02" // YYYY-MM-DD
	USDateFormat = "1/2/2006"   // MM/DD/YYYY, ведущие нули необязательны
)

// Ограничения полей пассажира
const (
	MinNameLength     = 2
	MinDNILength      = 7
	MaxDNILength      = 20
	MinPassportLength = 3
	MaxPassportLength = 20
	MaxAgeYears       = 120
)

// Значения по умолчанию для календаря cupos
const (
	DefaultMonthCellCap             = 3
	DefaultLowAvailabilityBelow     = 3
	DefaultLimitedAvailabilityBelow = 10
)

// Подписи полей дат, от которых зависят правила валидации
const (
	LabelDateOfBirth        = "Date of Birth"
	LabelPassportExpiration = "Passport Expiration Date"
)
