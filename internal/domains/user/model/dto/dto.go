package dto

import (
	"strings"

	"hostel/internal/domains/user/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

type UpdateRoleRequest struct {
	Role string `db:"role" json:"role" validate:"required,oneof=Admin Worker Pending"`
}

type UpdateActiveRequest struct {
	Active *bool `db:"active" json:"active" validate:"required"`
}

type ListUsersRequest struct {
	Role   string `json:"role"   validate:"omitempty,oneof=Admin Worker Pending"`
	Search string `json:"search" validate:"omitempty,max=100"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.FullName = user.FullName
	r.Role = user.Role
	r.Active = user.Active
	r.LastLogin = nil

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	Total     int            `json:"total"`
	TotalPage int            `json:"total_page"`
}

func (r *GetUsersResponse) FromModels(users []model.User, total, totalPage int) {
	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}

	r.Total = total
	r.TotalPage = totalPage
}

// CreateUserRequest is used by operators to provision accounts with a role up front.
type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Role     string `json:"role"      validate:"required,oneof=Admin Worker Pending"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) model.User {
	now := timezone.Now()

	return model.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		FullName: strings.TrimSpace(r.FullName),
		Role:     r.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}
