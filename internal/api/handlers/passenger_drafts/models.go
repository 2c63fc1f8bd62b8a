package passenger_drafts

import (
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// DraftResponse HTTP модель черновика
type DraftResponse struct {
	ID         string              `json:"id"`
	Primary    domain.PersonRecord `json:"primary"`
	Companions []CompanionResponse `json:"companions"`
	CreatedAt  string              `json:"createdAt"`
	UpdatedAt  string              `json:"updatedAt"`
}

// CompanionResponse сопровождающий черновика с позицией в списке
type CompanionResponse struct {
	ID       string              `json:"id"`
	Position int                 `json:"position"`
	Record   domain.PersonRecord `json:"record"`
}

// SetPrimaryResponse черновик с текущими ошибками основной записи
type SetPrimaryResponse struct {
	Draft  *DraftResponse    `json:"draft"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// AddCompanionResponse черновик и id добавленного сопровождающего
type AddCompanionResponse struct {
	Draft       *DraftResponse `json:"draft"`
	CompanionID string         `json:"companionId"`
}

// FromDomainDraft конвертирует черновик в HTTP модель
func FromDomainDraft(d *domain.PassengerDraft) *DraftResponse {
	resp := &DraftResponse{
		ID:         d.ID,
		Primary:    d.Primary,
		Companions: make([]CompanionResponse, 0),
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
	if d.Companions == nil {
		return resp
	}

	for i, c := range d.Companions.Companions() {
		resp.Companions = append(resp.Companions, CompanionResponse{
			ID:       c.ID.String(),
			Position: i,
			Record:   c.Record,
		})
	}
	return resp
}
