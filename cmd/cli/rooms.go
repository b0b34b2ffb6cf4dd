package main

import (
	"context"
	"fmt"
	"strconv"

	"hostel/di"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/shared/failure"
	"hostel/shared/validator"

	"github.com/spf13/cobra"
)

func seedRoomsCmd() *cobra.Command {
	var (
		from     int
		to       int
		roomType string
	)

	cmd := &cobra.Command{
		Use:   "seed-rooms",
		Short: "Create a range of numbered rooms, skipping numbers that already exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from <= 0 || to < from {
				return fmt.Errorf("invalid range %d..%d", from, to)
			}

			service := di.InitializeRoomService()
			ctx := context.Background()

			created := 0

			for number := from; number <= to; number++ {
				req := dto.CreateRoomRequest{
					Number: strconv.Itoa(number),
					Type:   model.Type(roomType),
				}

				if err := validator.ValidateStruct(&req); err != nil {
					return fmt.Errorf("invalid room %d: %w", number, err)
				}

				if _, err := service.Create(ctx, req); err != nil {
					if failure.GetKind(err) == failure.KindDuplicateKey {
						cmd.Printf("room %d exists, skipped\n", number)

						continue
					}

					return fmt.Errorf("create room %d: %w", number, err)
				}

				created++
			}

			cmd.Printf("%d rooms created\n", created)

			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "first room number")
	cmd.Flags().IntVar(&to, "to", 1, "last room number")
	cmd.Flags().StringVar(&roomType, "type", string(model.TypeSingle), "room type, single or double")

	return cmd
}
