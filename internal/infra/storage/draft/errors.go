package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("draft.storage: draft not found")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draft.storage: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации черновика
	ErrDecode = errors.New("draft.storage: failed to decode draft")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("draft.storage: storage error")
)
