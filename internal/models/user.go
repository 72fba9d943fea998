package models

import "time"

// UserRole is the account-level role.
type UserRole string

const (
	RolePlayer    UserRole = "player"
	RoleOrganizer UserRole = "organizer"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// CanOrganize reports whether the role may create matches.
func (r UserRole) CanOrganize() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
