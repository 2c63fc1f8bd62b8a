package create_passenger

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase (БД, файловый сервис)
	ErrInternal = errors.New("create_passenger: internal error")
)
