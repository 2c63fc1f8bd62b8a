package create_passenger

import "github.com/m04kA/SMC-TravelDesk/internal/domain"

// CompanionInput сопровождающий в запросе создания
type CompanionInput struct {
	Key    string // ключ в карте ошибок: id из черновика или индекс, если пусто
	Record domain.PersonRecord
}

// Request модель запроса на создание пассажира с сопровождающими
type Request struct {
	Primary    domain.PersonRecord
	Companions []CompanionInput
}

// Response созданный пассажир с сопровождающими
type Response = domain.PassengerWithCompanions
