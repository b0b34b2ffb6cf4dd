package service

import (
	"context"
	"fmt"
	"time"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/history/model"
	"hostel/internal/domains/history/model/dto"
	"hostel/internal/domains/history/repository"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	defaultQueryLimit = 100
	maxQueryLimit     = 1000

	argStartDate = "start_date"
	argEndDate   = "end_date"
)

// sortNewestFirst matches the ledger view: latest first check-in first, then latest created.
var sortNewestFirst = gDto.QueryParams{
	SortBy:  model.FieldGuest1CheckinDate + "," + model.FieldCreatedAt,
	SortDir: gDto.SortDirDesc,
}

type History interface {
	Query(ctx context.Context, req dto.QueryRequest) (dto.GetEntriesResponse, error)
	Stats(ctx context.Context, req dto.RangeRequest) (dto.StatsResponse, error)
	Monthly(ctx context.Context, req dto.RangeRequest) (dto.MonthlyResponse, error)
	Entries(ctx context.Context, from, to time.Time) ([]model.Entry, error)
	Update(ctx context.Context, id string, req dto.UpdateEntryRequest) (dto.EntryResponse, error)
}

type serviceImpl struct {
	repo repository.History
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.History, cfg *config.Config, otel otel.Otel) History {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Query(ctx context.Context, req dto.QueryRequest) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Query")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := s.queryFilter(req)
	if err != nil {
		return res, err
	}

	params := sortNewestFirst
	params.Limit = s.limit(req.Limit)

	entries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to query history")

		return res, fmt.Errorf("failed to query history: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context, req dto.RangeRequest) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := s.queryFilter(dto.QueryRequest{StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return res, err
	}

	stats, err := s.repo.Stats(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history stats")

		return res, fmt.Errorf("failed to get history stats: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) Monthly(ctx context.Context, req dto.RangeRequest) (res dto.MonthlyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Monthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := s.queryFilter(dto.QueryRequest{StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return res, err
	}

	entries, err := s.repo.GetAll(ctx, sortNewestFirst, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly history")

		return res, fmt.Errorf("failed to get monthly history: %w", err)
	}

	res.FromModels(model.GroupByMonth(entries))

	return res, nil
}

// Entries returns every entry whose first check-in falls in [from, to], newest first.
func (s *serviceImpl) Entries(ctx context.Context, from, to time.Time) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Entries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	filter.Add(
		checkinFilter(argStartDate, gDto.FilterOperatorGreaterEq, from),
		checkinFilter(argEndDate, gDto.FilterOperatorLessEq, to),
	)

	res, err = s.repo.GetAll(ctx, sortNewestFirst, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history entries")

		return nil, fmt.Errorf("failed to get history entries: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateEntryRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".history.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound("history entry not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	entry, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get history entry")

		return res, fmt.Errorf("failed to get history entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, failure.NotFound("history entry not found") //nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))

	if req.CompanyName != nil && *req.CompanyName == constant.Empty {
		fields[model.FieldCompanyName] = nil
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update history entry")

		return res, fmt.Errorf("failed to update history entry: %w", err)
	}

	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if req.CompanyName != nil {
		entry.CompanyName = req.CompanyName
		if *req.CompanyName == constant.Empty {
			entry.CompanyName = nil
		}
	}

	entry.ModifiedBy = shared.Actor(ctx)
	entry.ModifiedAt = timezone.Now()

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) limit(requested int) int {
	defaultLimit := s.cfg.App.History.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultQueryLimit
	}

	maxLimit := s.cfg.App.History.MaxLimit
	if maxLimit <= 0 {
		maxLimit = maxQueryLimit
	}

	switch {
	case requested <= 0:
		return defaultLimit
	case requested > maxLimit:
		return maxLimit
	default:
		return requested
	}
}

func (s *serviceImpl) queryFilter(req dto.QueryRequest) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{}

	if req.RoomID != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldRoomID, Value: req.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.RoomNumber != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldRoomNumber, Value: req.RoomNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.StartDate != constant.Empty {
		start, err := timezone.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			return filter, failure.BadRequestFromString("start_date must be YYYY-MM-DD") //nolint:wrapcheck
		}

		filter.Add(checkinFilter(argStartDate, gDto.FilterOperatorGreaterEq, start))
	}

	if req.EndDate != constant.Empty {
		end, err := timezone.Parse(time.DateOnly, req.EndDate)
		if err != nil {
			return filter, failure.BadRequestFromString("end_date must be YYYY-MM-DD") //nolint:wrapcheck
		}

		filter.Add(checkinFilter(argEndDate, gDto.FilterOperatorLessEq, end))
	}

	if req.GuestName != constant.Empty {
		filter.Add(gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldGuest1Name, Value: req.GuestName, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{Field: model.FieldGuest2Name, Value: req.GuestName, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	if req.Company != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldCompanyName, Value: req.Company, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	return filter, nil
}

func checkinFilter(argName, operator string, value time.Time) gDto.Filter {
	return gDto.Filter{
		ArgName:  argName,
		Field:    model.FieldGuest1CheckinDate,
		Value:    value,
		Operator: operator,
		Table:    model.TableName,
	}
}
