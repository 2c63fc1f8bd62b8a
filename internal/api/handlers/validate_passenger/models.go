package validate_passenger

import "github.com/m04kA/SMC-TravelDesk/internal/domain"

// ValidateRequest HTTP request model
type ValidateRequest struct {
	Record  domain.PersonRecord `json:"record"`
	Primary bool                `json:"primary"` // контекст основного пассажира: номер паспорта обязателен
}

// ValidateResponse HTTP response model
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
