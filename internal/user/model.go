package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}

// Identity is the resolved caller passed explicitly into services that act
// on behalf of a user. A zero Identity means no authenticated session.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  *string
	AvatarURL *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
