package passenger

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-TravelDesk/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), db, mock
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO passengers (primary_id,name,surname,dni,dob,email,phone,passport_number,nationality,expiration_date,gender,special_requests,passport_image) VALUES")).
		WithArgs(int64(1), "Ann", "Lee", "1234567",
			time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC),
			nil, nil, nil, nil, nil, "female", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), &domain.Passenger{
		PrimaryID: ptr.Ptr(int64(1)),
		Record: domain.PersonRecord{
			Name:    "Ann",
			Surname: "Lee",
			DNI:     "1234567",
			DOB:     "1990-06-14",
			Gender:  "female",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.True(t, created.IsCompanion())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_InvalidDate(t *testing.T) {
	repo, _, mock := newMock(t)

	_, err := repo.Create(context.Background(), &domain.Passenger{
		Record: domain.PersonRecord{Name: "Ann", Surname: "Lee", DNI: "1234567", DOB: "06/14/1990"},
	})
	assert.ErrorIs(t, err, ErrBuildQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM passengers WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(7), nil, "John", "Doe", "30123456", time.Date(1985, 3, 20, 0, 0, 0, 0, time.UTC),
			"john@mail.com", nil, "AAB123", "Argentine", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			"male", nil, "passport-7.png", now, now,
		))

	p, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.False(t, p.IsCompanion())
	assert.Equal(t, "1985-03-20", p.Record.DOB)
	assert.Equal(t, "2030-01-01", p.Record.ExpirationDate)
	assert.Equal(t, "john@mail.com", p.Record.Email)
	assert.Empty(t, p.Record.Phone)
	assert.Equal(t, "passport-7.png", p.Record.PassportImage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM passengers WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 7)
	assert.ErrorIs(t, err, ErrPassengerNotFound)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListCompanions(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(int64(8), int64(7), "Ann", "Doe", "1234567", nil, nil, nil, nil, nil, nil, nil, nil, nil, now, now).
		AddRow(int64(9), int64(7), "Bob", "Doe", "7654321", nil, nil, nil, "X12", nil, nil, nil, "vegan", nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM passengers WHERE primary_id = $1 ORDER BY id ASC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	companions, err := repo.ListCompanions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, companions, 2)

	assert.Equal(t, "Ann", companions[0].Record.Name)
	assert.Equal(t, int64(7), *companions[1].PrimaryID)
	assert.Equal(t, "X12", companions[1].Record.PassportNumber)
	assert.Equal(t, "vegan", companions[1].Record.SpecialRequests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Promote(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE passengers SET primary_id = $1, updated_at = NOW() WHERE id = $2 AND primary_id IS NOT NULL")).
		WithArgs(nil, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Promote(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Promote_AlreadyPrimary(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE passengers")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Promote(context.Background(), 7), ErrNotCompanion)
	assert.NoError(t, mock.ExpectationsWereMet())
}
