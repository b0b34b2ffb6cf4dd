package repository_test

import (
	"context"
	"errors"
	"testing"

	"hostel/infras/otel/mocks"
	"hostel/infras/postgres"
	"hostel/shared"
	"hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[item]("item", "items", "id", conn, mocks.NewOtel()), mock, sqlxDB
}

func TestRepository_Get(t *testing.T) {
	tests := []struct {
		name             string
		mockExpectations func(mock sqlmock.Sqlmock)
		expected         item
		expectedErr      bool
	}{
		{
			name: "found",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT items.id, items.name FROM items\s+WHERE \(items.id = \$1\)`).
					ExpectQuery().
					WithArgs("1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "soap"))
			},
			expected: item{ID: "1", Name: "soap"},
		},
		{
			name: "no rows returns zero value",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT (.+) FROM items`).
					ExpectQuery().
					WithArgs("1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			expected: item{},
		},
		{
			name: "query error",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT (.+) FROM items`).
					ExpectQuery().
					WithArgs("1").
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepository(t)
			tt.mockExpectations(mock)

			result, err := repo.Get(context.Background(), shared.FilterByID("1", "id", "items"))

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, mock, db := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT (.+) FROM items\s+WHERE \(items.id = \$1\)\s+FOR UPDATE`).
		ExpectQuery().
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "soap"))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	result, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID("1", "id", "items"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, "soap", result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdateTx_RequiresFilter(t *testing.T) {
	repo, mock, db := newRepository(t)

	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	_, err = repo.GetForUpdateTx(context.Background(), tx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_Insert(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind failure.Kind
	}{
		{name: "success"},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, expectedKind: failure.KindDuplicateKey},
		{name: "other error", err: errors.New("disk full"), expectedKind: failure.KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepository(t)

			exec := mock.ExpectExec(`INSERT INTO items \(id, name\) VALUES \(\$1, \$2\)`).WithArgs("1", "soap")
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.Insert(context.Background(), item{ID: "1", Name: "soap"})

			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, failure.GetKind(err))
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectExec(`UPDATE items SET name = \$1\s+WHERE \(items.id = \$2\)`).
		WithArgs("bleach", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"name": "bleach"}, shared.FilterByID("1", "id", "items"))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, _, _ := newRepository(t)

	err := repo.Update(context.Background(), map[string]any{"name": "bleach"}, dto.FilterGroup{})

	assert.Error(t, err)
}

func TestRepository_GetAll_IgnoresUnknownSortColumns(t *testing.T) {
	repo, mock, _ := newRepository(t)

	mock.ExpectPrepare(`SELECT items.id, items.name FROM items\s+ORDER BY items.name ASC, items.id ASC LIMIT \$1`).
		ExpectQuery().
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("1", "soap"))

	params := dto.QueryParams{Limit: 5, SortBy: "name, id, unknown; DROP TABLE items", SortDir: "asc"}

	result, err := repo.GetAll(context.Background(), params, dto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
