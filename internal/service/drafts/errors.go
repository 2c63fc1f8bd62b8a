package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("drafts: draft not found")

	// ErrCompanionNotFound возвращается, когда сопровождающего нет в черновике
	ErrCompanionNotFound = errors.New("drafts: companion not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
