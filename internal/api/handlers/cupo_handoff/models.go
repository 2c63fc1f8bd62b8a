package cupo_handoff

import "github.com/m04kA/SMC-TravelDesk/internal/api/handlers"

// HandoffResponse данные для перехода к оформлению продажи
type HandoffResponse struct {
	Cupo handlers.SlotResponse `json:"cupo"`
}
