package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProfileTable = "profiles"

	RoleUser = "user"
)

// Profile mirrors the auth identity into a queryable row, keyed by the
// identity id. Created on first sign-in; only last_login is merged afterwards.
type Profile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	PhotoURL  string    `db:"photo_url" json:"photo_url"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	LastLogin time.Time `db:"last_login" json:"last_login"`
}
