package fileservice

import "errors"

var (
	// ErrInvalidFilename возвращается при пустом имени или имени с разделителями пути
	ErrInvalidFilename = errors.New("fileservice client: invalid filename")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fileservice client: invalid response")
)
