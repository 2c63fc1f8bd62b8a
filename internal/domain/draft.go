package domain

import "time"

// PassengerDraft незавершенная форма создания пассажира: основная запись и сопровождающие
// Живет до отправки или отмены формы
type PassengerDraft struct {
	ID         string         `json:"id"`
	Primary    PersonRecord   `json:"primary"`
	Companions *CompanionList `json:"companions"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
