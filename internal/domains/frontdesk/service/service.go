package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/frontdesk/engine"
	"hostel/internal/domains/frontdesk/event"
	"hostel/internal/domains/frontdesk/model/dto"
	historyModel "hostel/internal/domains/history/model"
	historyRepo "hostel/internal/domains/history/repository"
	roomModel "hostel/internal/domains/room/model"
	roomDto "hostel/internal/domains/room/model/dto"
	roomRepo "hostel/internal/domains/room/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	OperationCheckIn             = "check_in"
	OperationCheckInSecondGuest  = "check_in_second_guest"
	OperationCheckoutFirstGuest  = "checkout_first_guest"
	OperationCheckoutSecondGuest = "checkout_second_guest"
	OperationCheckoutRoom        = "checkout_room"
	OperationMarkClean           = "mark_clean"
	OperationUpdateStatus        = "update_status"
)

type FrontDesk interface {
	CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest) (roomDto.RoomResponse, error)
	CheckInSecondGuest(ctx context.Context, roomID string, req dto.SecondGuestRequest) (roomDto.RoomResponse, error)
	CheckoutFirstGuest(ctx context.Context, roomID string) (roomDto.RoomResponse, error)
	CheckoutSecondGuest(ctx context.Context, roomID string) (roomDto.RoomResponse, error)
	CheckoutRoom(ctx context.Context, roomID string) (roomDto.RoomResponse, error)
	MarkClean(ctx context.Context, roomID string) (roomDto.RoomResponse, error)
	UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateStatusRequest) (roomDto.RoomResponse, error)
}

type serviceImpl struct {
	transactor postgres.Transactor
	rooms      roomRepo.Room
	history    historyRepo.History
	roomList   cache.Snapshot[[]roomModel.Room]
	publisher  event.Publisher
	metrics    metrics.Metrics
	otel       otel.Otel
}

func New(
	transactor postgres.Transactor,
	rooms roomRepo.Room,
	history historyRepo.History,
	roomList cache.Snapshot[[]roomModel.Room],
	publisher event.Publisher,
	metrics metrics.Metrics,
	otel otel.Otel,
) FrontDesk {
	return &serviceImpl{
		transactor: transactor,
		rooms:      rooms,
		history:    history,
		roomList:   roomList,
		publisher:  publisher,
		metrics:    metrics,
		otel:       otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest) (roomDto.RoomResponse, error) {
	checkIn, err := req.ToCheckIn()
	if err != nil {
		return roomDto.RoomResponse{}, err
	}

	return s.transition(ctx, OperationCheckIn, roomID, func(room roomModel.Room) (engine.Result, error) {
		return engine.ApplyCheckIn(room, checkIn, timezone.Today())
	})
}

func (s *serviceImpl) CheckInSecondGuest(ctx context.Context, roomID string, req dto.SecondGuestRequest) (roomDto.RoomResponse, error) {
	guest, err := req.ToGuest()
	if err != nil {
		return roomDto.RoomResponse{}, err
	}

	return s.transition(ctx, OperationCheckInSecondGuest, roomID, func(room roomModel.Room) (engine.Result, error) {
		return engine.ApplyCheckInSecondGuest(room, guest)
	})
}

func (s *serviceImpl) CheckoutFirstGuest(ctx context.Context, roomID string) (roomDto.RoomResponse, error) {
	return s.transition(ctx, OperationCheckoutFirstGuest, roomID, func(room roomModel.Room) (engine.Result, error) {
		return engine.ApplyCheckoutGuest(room, engine.SlotFirst)
	})
}

func (s *serviceImpl) CheckoutSecondGuest(ctx context.Context, roomID string) (roomDto.RoomResponse, error) {
	return s.transition(ctx, OperationCheckoutSecondGuest, roomID, func(room roomModel.Room) (engine.Result, error) {
		return engine.ApplyCheckoutGuest(room, engine.SlotSecond)
	})
}

func (s *serviceImpl) CheckoutRoom(ctx context.Context, roomID string) (roomDto.RoomResponse, error) {
	return s.transition(ctx, OperationCheckoutRoom, roomID, engine.ApplyCheckoutRoom)
}

func (s *serviceImpl) MarkClean(ctx context.Context, roomID string) (roomDto.RoomResponse, error) {
	return s.transition(ctx, OperationMarkClean, roomID, engine.ApplyMarkClean)
}

func (s *serviceImpl) UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateStatusRequest) (roomDto.RoomResponse, error) {
	return s.transition(ctx, OperationUpdateStatus, roomID, func(room roomModel.Room) (engine.Result, error) {
		return engine.ApplyStatus(room, req.Status)
	})
}

// transition locks the room row, runs apply on it and persists the room together
// with the history effect in one transaction. The room list snapshot is dropped
// and an event is published only after the commit succeeds.
func (s *serviceImpl) transition(
	ctx context.Context,
	operation, roomID string,
	apply func(roomModel.Room) (engine.Result, error),
) (res roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(roomID) {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	actor := shared.Actor(ctx)
	now := timezone.Now()
	filter := shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)

	var result engine.Result

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.rooms.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		result, err = apply(room)
		if err != nil {
			return err
		}

		if !result.Changed {
			return nil
		}

		fields := result.Room.Fields()
		fields[roomModel.FieldVersion] = result.Room.Version
		fields[constant.FieldModifiedAt] = now
		fields[constant.FieldModifiedBy] = actor

		if err = s.rooms.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		return s.applyEffect(ctx, tx, result, actor, now)
	})

	s.metrics.ObserveTransition(operation, outcome(err))

	if err != nil {
		if failure.Is(err, failure.KindStorage) {
			log.Error().Err(err).Str("operation", operation).Str("room_id", roomID).Msg("failed to apply front desk transition")
		}

		return res, err
	}

	if result.Changed {
		s.roomList.Invalidate()

		roomEvent := event.NewRoomEvent(operation, result.Room, result.Effect.String(), actor, now)
		if err := s.publisher.Publish(ctx, roomEvent); err != nil {
			log.Warn().Err(err).Str("operation", operation).Str("room_id", roomID).Msg("failed to publish room event")
		}
	}

	res.FromModel(result.Room)

	return res, nil
}

func (s *serviceImpl) applyEffect(ctx context.Context, tx *sqlx.Tx, result engine.Result, actor string, now time.Time) error {
	room := result.Room

	switch result.Effect {
	case engine.EffectOpen:
		// a Free room should never have an open entry, close leftovers so the new one is the only one
		if err := s.history.CloseEntryTx(ctx, tx, room.ID, actor, now); err != nil {
			return fmt.Errorf("failed to close stale history entry: %w", err)
		}

		if err := s.history.InsertTx(ctx, tx, newEntry(room, actor, now)); err != nil {
			return fmt.Errorf("failed to open history entry: %w", err)
		}
	case engine.EffectUpdateGuest2:
		open, err := s.history.OpenEntryTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to get open history entry: %w", err)
		}

		if open.ID == constant.Empty {
			log.Warn().Str("room_id", room.ID).Msg("occupied room had no open history entry, creating one")

			if err = s.history.InsertTx(ctx, tx, newEntry(room, actor, now)); err != nil {
				return fmt.Errorf("failed to open history entry: %w", err)
			}

			return nil
		}

		second := room.Slots()[engine.SlotSecond]
		fields := map[string]any{
			historyModel.FieldGuest2Name:        second.Name,
			historyModel.FieldGuest2Phone:       optional(second.Phone),
			historyModel.FieldGuest2CheckinDate: second.CheckinDate,
			constant.FieldModifiedAt:            now,
			constant.FieldModifiedBy:            actor,
		}

		if err = s.history.UpdateTx(ctx, tx, fields, shared.FilterByID(open.ID, historyModel.FieldID, historyModel.TableName)); err != nil {
			return fmt.Errorf("failed to update history entry: %w", err)
		}
	case engine.EffectGuestLeft:
		open, err := s.history.OpenEntryTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to get open history entry: %w", err)
		}

		if open.ID == constant.Empty {
			return nil
		}

		column := historyModel.FieldGuest1CheckoutDate
		if result.Slot == engine.SlotSecond {
			column = historyModel.FieldGuest2CheckoutDate
		}

		fields := map[string]any{
			column:                   now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor,
		}

		if err = s.history.UpdateTx(ctx, tx, fields, shared.FilterByID(open.ID, historyModel.FieldID, historyModel.TableName)); err != nil {
			return fmt.Errorf("failed to update history entry: %w", err)
		}
	case engine.EffectClose:
		if err := s.history.CloseEntryTx(ctx, tx, room.ID, actor, now); err != nil {
			return fmt.Errorf("failed to close history entry: %w", err)
		}
	case engine.EffectNone:
	}

	return nil
}

// newEntry snapshots the occupied room into a fresh open history entry.
func newEntry(room roomModel.Room, actor string, now time.Time) historyModel.Entry {
	slots := room.Slots()
	first := slots[engine.SlotFirst]
	second := slots[engine.SlotSecond]

	entry := historyModel.Entry{
		ID:                uuid.NewString(),
		RoomID:            room.ID,
		RoomNumber:        room.Number,
		RoomType:          string(room.Type),
		CompanyName:       room.Company,
		Guest1Name:        first.Name,
		Guest1Phone:       optional(first.Phone),
		Guest1CheckinDate: first.CheckinDate,
	}

	if !second.Empty() {
		entry.Guest2Name = &second.Name
		entry.Guest2Phone = optional(second.Phone)
		entry.Guest2CheckinDate = &second.CheckinDate
	}

	entry.CreatedAt = now
	entry.ModifiedAt = now
	entry.CreatedBy = actor
	entry.ModifiedBy = actor

	return entry
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case failure.Is(err, failure.KindStorage):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}
