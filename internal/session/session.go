package session

import (
	"context"
	"errors"
	"time"

	"github.com/lernia/console-backend/internal/model"
)

// Store errors.
var (
	ErrNotFound = errors.New("session not found")
)

// Session is one authenticated admin sitting at the console. Exactly two
// things are persisted per session, and always together: the upstream token
// and the serialized admin profile.
type Session struct {
	ID      string
	Token   string
	Profile model.AdminProfile
}

// Store persists sessions. Save's TTL bounds how long an idle console
// session survives; Load returns ErrNotFound for unknown or lapsed IDs.
type Store interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
