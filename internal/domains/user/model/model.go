package model

import (
	"time"

	"hostel/shared/constant"
	"hostel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  string     `db:"full_name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

func (u *User) IsPending() bool {
	return u.Role == constant.RolePending
}

// ValidRole reports whether role is one an administrator may assign.
func ValidRole(role string) bool {
	switch role {
	case constant.RoleAdmin, constant.RoleWorker, constant.RolePending:
		return true
	default:
		return false
	}
}
