package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID
	Username      string
	Email         string
	IsPremium     bool
	IsDeactivated bool
	CreatedAt     time.Time
}

// AccountFlags is what the rest of the system is allowed to know about an
// account: whether it pays and whether it may still write.
type AccountFlags struct {
	IsPremium     bool
	IsDeactivated bool
}
