package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "duration_minutes", "price_cents", "is_active", "created_at"})
}

func TestCreateAndGetService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO services (name, description, duration_minutes, price_cents) VALUES ($1, $2, $3, $4) RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at")).
		WithArgs("Haircut", "Classic cut", 30, int64(2500)).
		WillReturnRows(serviceRows().AddRow(1, "Haircut", "Classic cut", 30, int64(2500), true, now))

	s, err := repo.Create(ctx, "Haircut", "Classic cut", 30, 2500)
	require.NoError(t, err)
	require.Equal(t, 1, s.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, duration_minutes, price_cents, is_active, created_at FROM services WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(serviceRows().AddRow(1, "Haircut", "Classic cut", 30, int64(2500), true, now))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Haircut", got.Name)
}

func TestDeactivateService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET is_active = FALSE WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), 1)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET is_active = FALSE WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Deactivate(context.Background(), 99)
	require.Equal(t, ErrServiceNotFound, err)
}
