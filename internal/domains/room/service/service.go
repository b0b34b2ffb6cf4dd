package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	historyModel "hostel/internal/domains/history/model"
	historyRepo "hostel/internal/domains/history/repository"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	// RoomListCacheKey holds the unfiltered room list, filters and sorting are applied on a copy.
	RoomListCacheKey = "rooms"
	roomListCache    = "room_list"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	List(ctx context.Context, req dto.ListRoomsRequest) (dto.GetRoomsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	transactor postgres.Transactor
	repo       repository.Room
	history    historyRepo.History
	rooms      cache.Snapshot[[]model.Room]
	metrics    metrics.Metrics
	otel       otel.Otel
}

func New(
	transactor postgres.Transactor,
	repo repository.Room,
	history historyRepo.History,
	rooms cache.Snapshot[[]model.Room],
	metrics metrics.Metrics,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		transactor: transactor,
		repo:       repo,
		history:    history,
		rooms:      rooms,
		metrics:    metrics,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, filterByNumber(req.Number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return res, failure.Duplicate("room number already exists") //nolint:wrapcheck
	}

	room := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Str("number", req.Number).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.rooms.Invalidate()

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListRoomsRequest) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, hit := s.rooms.Get(RoomListCacheKey)
	s.metrics.ObserveCache(roomListCache, hit)

	if !hit {
		rooms, err = s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return res, fmt.Errorf("failed to get rooms: %w", err)
		}

		s.rooms.Set(RoomListCacheKey, rooms)
	}

	selected := make([]model.Room, 0, len(rooms))

	for _, room := range rooms {
		if req.Status != constant.Empty && string(room.Status) != req.Status {
			continue
		}

		selected = append(selected, room)
	}

	SortByNumber(selected, req.Sort != dto.SortAsc)

	res.FromModels(selected)

	return res, nil
}

// Update locks the room row so the checks below cannot race a front desk transition.
// A company change on an occupied room is copied to its open history entry in the same transaction.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to lock room")

			return fmt.Errorf("failed to lock room: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		fields, err := s.updateFields(ctx, current, req)
		if err != nil {
			return err
		}

		if err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to update room")

			return fmt.Errorf("failed to update room: %w", err)
		}

		if req.Company == nil || current.Status != model.StatusOccupied {
			return nil
		}

		entryFields := map[string]any{
			historyModel.FieldCompanyName: fields[model.FieldCompany],
			constant.FieldModifiedAt:      timezone.Now(),
			constant.FieldModifiedBy:      shared.Actor(ctx),
		}

		if err = s.history.UpdateOpenEntryTx(ctx, tx, id, entryFields); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to update open history entry")

			return fmt.Errorf("failed to update open history entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.rooms.Invalidate()

	updated, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) updateFields(ctx context.Context, current model.Room, req dto.UpdateRoomRequest) (map[string]any, error) {
	if req.Number != nil && *req.Number != current.Number {
		exist, err := s.repo.Exist(ctx, filterByNumber(*req.Number))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room number")

			return nil, fmt.Errorf("failed to check room number: %w", err)
		}

		if exist {
			return nil, failure.Duplicate("room number already exists") //nolint:wrapcheck
		}
	}

	if req.Type != nil && req.Type.Capacity() < current.Occupants() {
		return nil, failure.Conflict("room has more guests than the new type allows") //nolint:wrapcheck
	}

	if req.Type != nil && *req.Type == model.TypeSingle && !current.Slots()[1].Empty() {
		return nil, failure.Conflict("room has a guest in the second slot") //nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))

	if req.Company != nil {
		switch {
		case *req.Company == constant.Empty:
			fields[model.FieldCompany] = nil
		case current.Status != model.StatusOccupied:
			return nil, failure.Conflict("company can only be set on an occupied room") //nolint:wrapcheck
		}
	}

	fields[model.FieldVersion] = current.Version + 1

	return fields, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.rooms.Invalidate()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	var stats model.Stats

	for _, count := range counts {
		stats.Total += count.Count

		switch count.Status {
		case model.StatusFree:
			stats.Free += count.Count
		case model.StatusOccupied:
			stats.Occupied += count.Count
		case model.StatusDirty:
			stats.Dirty += count.Count
		}
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Room, error) {
	if !shared.IsValidID(id) {
		return model.Room{}, failure.NotFound("room not found") //nolint:wrapcheck
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room, nil
}

func filterByNumber(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldNumber,
				Value:    number,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// SortByNumber orders rooms by the numeric value of their number. Numbers that
// do not parse always come last, compared as plain strings.
func SortByNumber(rooms []model.Room, desc bool) {
	slices.SortStableFunc(rooms, func(a, b model.Room) int {
		left, leftErr := strconv.Atoi(a.Number)
		right, rightErr := strconv.Atoi(b.Number)

		switch {
		case leftErr == nil && rightErr == nil:
			if desc {
				return cmp.Compare(right, left)
			}

			return cmp.Compare(left, right)
		case leftErr == nil:
			return -1
		case rightErr == nil:
			return 1
		default:
			return strings.Compare(a.Number, b.Number)
		}
	})
}
