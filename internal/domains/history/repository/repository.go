package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/history/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/logger"
	gRepo "hostel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type History interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Entry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Entry) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	OpenEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) (model.Entry, error)
	CloseEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID, closedBy string, closedAt time.Time) error
	UpdateOpenEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, req map[string]any) error
	Stats(ctx context.Context, filter gDto.FilterGroup) (model.Stats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) History {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func openEntryFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckoutDate,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}
}

// OpenEntryTx returns the zero Entry when the room has no open episode.
func (r *repositoryImpl) OpenEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) (model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.OpenEntryTx")
	defer scope.End()

	return r.GetTx(ctx, sqltx, openEntryFilter(roomID)) //nolint:wrapcheck
}

// CloseEntryTx stamps the checkout date on the open episode, doing nothing when none is open.
func (r *repositoryImpl) CloseEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID, closedBy string, closedAt time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.CloseEntryTx")
	defer scope.End()

	fields := map[string]any{
		model.FieldCheckoutDate:  closedAt,
		constant.FieldModifiedAt: closedAt,
		constant.FieldModifiedBy: closedBy,
	}

	return r.UpdateTx(ctx, sqltx, fields, openEntryFilter(roomID)) //nolint:wrapcheck
}

// UpdateOpenEntryTx writes req onto the open episode of the room, doing nothing when none is open.
func (r *repositoryImpl) UpdateOpenEntryTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, req map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.UpdateOpenEntryTx")
	defer scope.End()

	return r.UpdateTx(ctx, sqltx, req, openEntryFilter(roomID)) //nolint:wrapcheck
}

func (r *repositoryImpl) Stats(ctx context.Context, filter gDto.FilterGroup) (model.Stats, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".history.Stats")
	defer scope.End()

	var stats model.Stats

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total_bookings,
		COALESCE(SUM(CASE WHEN guest2_name IS NOT NULL AND guest2_name <> '' THEN 2 ELSE 1 END), 0) AS total_guests,
		COUNT(checkout_date) AS completed_stays,
		COUNT(*) FILTER (WHERE checkout_date IS NULL) AS current_guests
		FROM %s %s`, model.TableName, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &stats, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get history stats: %w", err)
	}

	return stats, nil
}
