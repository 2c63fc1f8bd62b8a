package passenger

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

const table = "passengers"

var columns = []string{
	"id",
	"primary_id",
	"name",
	"surname",
	"dni",
	"dob",
	"email",
	"phone",
	"passport_number",
	"nationality",
	"expiration_date",
	"gender",
	"special_requests",
	"passport_image",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пассажирами и сопровождающими
// Сопровождающий - строка с заполненным primary_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пассажиров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет пассажира
// Если в контексте передана активная транзакция, использует её
// Даты записи ожидаются уже нормализованными в YYYY-MM-DD
func (r *Repository) Create(ctx context.Context, p *domain.Passenger) (*domain.Passenger, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dob, err := nullDate(p.Record.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - dob: %v", ErrBuildQuery, err)
	}
	expiration, err := nullDate(p.Record.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - expiration date: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[1 : len(columns)-2]...).
		Values(
			p.PrimaryID,
			p.Record.Name,
			p.Record.Surname,
			p.Record.DNI,
			dob,
			nullString(p.Record.Email),
			nullString(p.Record.Phone),
			nullString(p.Record.PassportNumber),
			nullString(p.Record.Nationality),
			expiration,
			nullString(p.Record.Gender),
			nullString(p.Record.SpecialRequests),
			nullString(p.Record.PassportImage),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает пассажира по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPassenger(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPassengerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan passenger: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListCompanions получает сопровождающих основного пассажира в порядке добавления
func (r *Repository) ListCompanions(ctx context.Context, primaryID int64) ([]*domain.Passenger, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"primary_id": primaryID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companions := make([]*domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCompanions - scan row: %v", ErrScanRow, err)
		}
		companions = append(companions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - rows error: %v", ErrScanRow, err)
	}

	return companions, nil
}

// Promote отвязывает сопровождающего от основного пассажира (primary_id = NULL)
func (r *Repository) Promote(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("primary_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"primary_id": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Promote - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Promote - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Promote - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotCompanion
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPassenger сканирует одну строку в порядке columns
func scanPassenger(row rowScanner) (*domain.Passenger, error) {
	var p domain.Passenger
	var primaryID sql.NullInt64
	var dob, expiration, createdAt, updatedAt sql.NullTime
	var email, phone, passport, nationality, gender, special, image sql.NullString

	err := row.Scan(
		&p.ID,
		&primaryID,
		&p.Record.Name,
		&p.Record.Surname,
		&p.Record.DNI,
		&dob,
		&email,
		&phone,
		&passport,
		&nationality,
		&expiration,
		&gender,
		&special,
		&image,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if primaryID.Valid {
		id := primaryID.Int64
		p.PrimaryID = &id
	}
	p.Record.DOB = formatDate(dob)
	p.Record.Email = email.String
	p.Record.Phone = phone.String
	p.Record.PassportNumber = passport.String
	p.Record.Nationality = nationality.String
	p.Record.ExpirationDate = formatDate(expiration)
	p.Record.Gender = gender.String
	p.Record.SpecialRequests = special.String
	p.Record.PassportImage = image.String
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDate(s string) (sql.NullTime, error) {
	if s == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(domain.DateFormat)
}
