package calendar

import "github.com/m04kA/SMC-TravelDesk/internal/domain"

// Handoff данные для передачи cupo в оформление продажи
type Handoff struct {
	Cupo domain.CupoSlot
}

// NewHandoff формирует передачу в продажу, если у cupo есть свободные места
// и он не завершен и не отменен
func NewHandoff(slot domain.CupoSlot) (*Handoff, error) {
	if !slot.IsReservable() {
		return nil, ErrSlotNotReservable
	}
	return &Handoff{Cupo: slot}, nil
}
