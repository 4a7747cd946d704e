package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid username or password")
)

type Role string

const (
	RoleStaff    Role = "STAFF"
	RolePimpinan Role = "PIMPINAN"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RolePimpinan, RoleAdmin:
		return true
	}
	return false
}

// Supervisor roles may view, review and delete any report.
func (r Role) Supervisor() bool { return r == RolePimpinan || r == RoleAdmin }

type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;size:64;not null;uniqueIndex:ux_users_username" json:"username"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null" json:"-"`
	FullName     string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Role         Role      `gorm:"column:role;size:16;not null;default:'STAFF'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
