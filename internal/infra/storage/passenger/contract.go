package passenger

import (
	"github.com/m04kA/SMC-TravelDesk/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
