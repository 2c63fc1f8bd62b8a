package passenger

import "errors"

var (
	// ErrPassengerNotFound возвращается, когда пассажир не найден
	ErrPassengerNotFound = errors.New("passenger.repository: passenger not found")

	// ErrNotCompanion возвращается при попытке повысить пассажира, который уже основной
	ErrNotCompanion = errors.New("passenger.repository: passenger is not a companion")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("passenger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("passenger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("passenger.repository: failed to scan row")
)
