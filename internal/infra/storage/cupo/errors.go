package cupo

import "errors"

var (
	// ErrCupoNotFound возвращается, когда cupo не найден
	ErrCupoNotFound = errors.New("cupo.repository: cupo not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cupo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cupo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cupo.repository: failed to scan row")
)
