package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     *string   `json:"full_name" db:"full_name"`
	Handle       *string   `json:"handle" db:"handle"`
	University   *string   `json:"university" db:"university"`
	Bio          *string   `json:"bio" db:"bio"`
	Role         *string   `json:"role" db:"role"`
	FieldOfStudy *string   `json:"field_of_study" db:"field_of_study"`
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateUserInput carries the profile fields a user may change. Nil fields
// are left untouched.
type UpdateUserInput struct {
	FullName   *string `json:"full_name"`
	Handle     *string `json:"handle"`
	University *string `json:"university"`
	Bio        *string `json:"bio"`
}

// ProfileStats are computed from the follow edge set on every read, never
// stored denormalized.
type ProfileStats struct {
	Followers int32 `json:"followers"`
	Following int32 `json:"following"`
}

type Profile struct {
	User
	Stats ProfileStats `json:"stats"`
}

// NetworkUser is a view row for the network listing.
type NetworkUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Following bool      `json:"following"`
}
