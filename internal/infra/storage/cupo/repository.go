package cupo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-TravelDesk/pkg/psqlbuilder"
)

const table = "cupos"

var columns = []string{
	"id",
	"service_id",
	"provider_id",
	"service_date",
	"total_seats",
	"reserved_seats",
	"status",
	"destination",
	"provider_name",
	"room_type",
	"flight_info",
	"flight_class",
	"value",
	"currency",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения cupos
// Cupos создаются и продаются во внешних системах, здесь только выборка и закрытие прошедших
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория cupos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRange получает cupos за период (границы включительно)
// Опционально фильтрует по услуге, поставщику и статусам
// Результат отсортирован по дате услуги, внутри дня по ID
func (r *Repository) GetByRange(ctx context.Context, filter domain.CupoFilter) ([]domain.CupoSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"service_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"service_date": filter.EndDate})

	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}

	query, args, err := selectBuilder.OrderBy("service_date ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.CupoSlot, 0)
	for rows.Next() {
		slot, err := scanCupo(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRange - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает cupo по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CupoSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanCupo(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCupoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cupo: %v", ErrScanRow, err)
	}

	return slot, nil
}

// CompletePast переводит в completed все открытые cupos с датой услуги раньше before
// Возвращает количество обновленных записей
func (r *Repository) CompletePast(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.CupoStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Lt{"service_date": before}).
		Where(squirrel.Eq{"status": statusStrings(domain.OpenCupoStatuses)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCupo сканирует одну строку в порядке columns
func scanCupo(row rowScanner) (*domain.CupoSlot, error) {
	var slot domain.CupoSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.ServiceID,
		&slot.ProviderID,
		&slot.Date,
		&slot.TotalSeats,
		&slot.ReservedSeats,
		&slot.Status,
		&slot.Metadata.Destination,
		&slot.Metadata.ProviderName,
		&slot.Metadata.RoomType,
		&slot.Metadata.FlightInfo,
		&slot.Metadata.FlightClass,
		&slot.Metadata.Value,
		&slot.Metadata.Currency,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func statusStrings(statuses []domain.CupoStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
