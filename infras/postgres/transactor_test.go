package postgres_test

import (
	"context"
	"errors"
	"testing"

	"hostel/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_WithTransaction(t *testing.T) {
	errAction := errors.New("room is not free")

	tests := []struct {
		name             string
		fn               postgres.TxFunc
		mockExpectations func(mock sqlmock.Sqlmock)
		expectedErr      error
	}{
		{
			name: "commit on success",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE rooms SET status = 'Dirty'")

				return err
			},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE rooms SET status").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback on error",
			fn: func(context.Context, *sqlx.Tx) error {
				return errAction
			},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectedErr: errAction,
		},
		{
			name: "begin failure",
			fn: func(context.Context, *sqlx.Tx) error {
				return nil
			},
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			expectedErr: errors.New("failed to begin transaction: too many connections"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)

			defer db.Close()

			tt.mockExpectations(mock)

			sqlxDB := sqlx.NewDb(db, "postgres")
			transactor := postgres.NewTransactor(&postgres.Connection{Read: sqlxDB, Write: sqlxDB})

			err = transactor.WithTransaction(context.Background(), tt.fn)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
