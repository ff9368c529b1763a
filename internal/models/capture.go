package models

import (
	"time"

	"github.com/google/uuid"
)

// Capture is a raw note captured by a user.
type Capture struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	RawText      string     `json:"rawText" db:"raw_text"`
	MigratedDate *time.Time `json:"migratedDate" db:"migrated_date"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// CaptureUpdate is a partial update of a capture, nil fields are left untouched.
type CaptureUpdate struct {
	ID           uuid.UUID
	UserID       *uuid.UUID
	RawText      *string
	MigratedDate *time.Time
}

// Capture event operations published to the message broker.
const (
	CaptureCreated = "capture.created"
	CaptureUpdated = "capture.updated"
	CaptureDeleted = "capture.deleted"
)

// CaptureEvent describes a change of a capture.
type CaptureEvent struct {
	EventID   string `json:"eventId"`   // Unique identifier of the event
	Operation string `json:"operation"` // One of capture.created, capture.updated, capture.deleted
	CaptureID string `json:"captureId"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
