package create_passenger

import (
	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	createPassenger "github.com/m04kA/SMC-TravelDesk/internal/usecase/create_passenger"
)

// CreatePassengerRequest HTTP request model
type CreatePassengerRequest struct {
	Primary    domain.PersonRecord   `json:"primary"`
	Companions []domain.PersonRecord `json:"companions"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибки сопровождающих адресуются индексом в массиве
func (r *CreatePassengerRequest) ToUseCaseRequest() *createPassenger.Request {
	req := &createPassenger.Request{
		Primary:    r.Primary,
		Companions: make([]createPassenger.CompanionInput, 0, len(r.Companions)),
	}
	for _, c := range r.Companions {
		req.Companions = append(req.Companions, createPassenger.CompanionInput{Record: c})
	}
	return req
}
