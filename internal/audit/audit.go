package audit

import (
	"context"
	"time"
)

// Entry is one recorded console mutation. Reads are not audited.
type Entry struct {
	ID         int64     `json:"id"`
	AdminID    string    `json:"admin_id"`
	AdminEmail string    `json:"admin_email"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	RequestID  string    `json:"request_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recorder persists audit entries. Recording happens after the platform
// accepted the mutation; a recorder failure must never fail the request.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// NopRecorder discards everything. Used when no audit database is
// configured and in tests.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, e Entry) error { return nil }

func (NopRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) { return nil, nil }
