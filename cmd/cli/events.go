package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/internal/domains/frontdesk/event"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

func eventsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail room transition events until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()

			client := kafka.New(cfg)
			defer func() {
				if err := client.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close kafka client")
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client.Consume(ctx, group, cfg.Kafka.TopicRoomEvents, func(message kafkaGo.Message) {
				roomEvent, err := kafka.DecodeKafkaMessage[event.RoomEvent](message)
				if err != nil {
					log.Warn().Err(err).Msg("failed to decode room event")

					return
				}

				cmd.Printf("%s room=%s status=%s occupants=%d by=%s\n",
					roomEvent.OccurredAt.Format(time.RFC3339),
					roomEvent.RoomNumber, roomEvent.Status, roomEvent.Occupants, roomEvent.Actor)
			})

			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "consumer group, defaults to the configured one")

	return cmd
}
