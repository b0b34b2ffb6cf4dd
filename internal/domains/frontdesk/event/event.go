package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/internal/domains/room/model"
	"hostel/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RoomEvent is published after a front desk transition commits.
type RoomEvent struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Status     string    `json:"status"`
	Occupants  int       `json:"occupants"`
	Version    int       `json:"version"`
	History    string    `json:"history"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewRoomEvent(operation string, room model.Room, history, actor string, at time.Time) RoomEvent {
	return RoomEvent{
		ID:         uuid.NewString(),
		Operation:  operation,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Status:     string(room.Status),
		Occupants:  room.Occupants(),
		Version:    room.Version,
		History:    history,
		Actor:      actor,
		OccurredAt: at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event RoomEvent) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// New returns a Kafka backed publisher, or one that drops events when Kafka is disabled.
func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable || client == nil {
		log.Info().Msg("Kafka disabled, room events will not be published")

		return NewNoop()
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.TopicRoomEvents,
		otel:   otel,
	}
}

// Publish keys messages by room id so events of one room stay ordered on a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event RoomEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".room.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.RoomID, Value: event})
	if err != nil {
		return fmt.Errorf("failed to publish room event: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, RoomEvent) error {
	return nil
}
