package main

import (
	"context"
	"fmt"

	"hostel/di"
	"hostel/internal/domains/user/model/dto"
	"hostel/shared/constant"
	"hostel/shared/validator"

	"github.com/spf13/cobra"
)

// createAdminCmd provisions the first account, which cannot sign up through the API as Admin.
func createAdminCmd() *cobra.Command {
	req := dto.CreateUserRequest{Role: constant.RoleAdmin}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an approved admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid admin: %w", err)
			}

			user, err := di.InitializeUserService().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			cmd.Printf("admin %s created with id %s\n", user.Email, user.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password, at least 8 characters")
	cmd.Flags().StringVar(&req.FullName, "name", "Administrator", "admin full name")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
