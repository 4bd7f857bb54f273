package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Kind labels which reading an entry came from.
type Kind string

const (
	KindNumerology    Kind = "numerology"
	KindZodiac        Kind = "zodiac"
	KindCompatibility Kind = "compatibility"
	KindDream         Kind = "dream"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindNumerology, KindZodiac, KindCompatibility, KindDream:
		return true
	}
	return false
}

// Config holds runtime knobs for the journal service.
type Config struct {
	ListLimit int
}

// Entry is a saved reading.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Owner     string          `json:"owner"`
	Kind      Kind            `json:"kind"`
	Title     string          `json:"title"`
	Summary   string          `json:"summary"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SaveRequest is the input for Save.
type SaveRequest struct {
	Owner   string          `json:"owner" validate:"required,max=128"`
	Kind    Kind            `json:"kind" validate:"required,oneof=numerology zodiac compatibility dream"`
	Title   string          `json:"title" validate:"required,max=200"`
	Summary string          `json:"summary" validate:"max=2000"`
	Payload json.RawMessage `json:"payload"`
}

// ExportResult describes an archived export.
type ExportResult struct {
	Key        string    `json:"key"`
	Entries    int       `json:"entries"`
	Size       int64     `json:"size"`
	ExportedAt time.Time `json:"exportedAt"`
}

type exportDocument struct {
	Owner      string    `json:"owner"`
	ExportedAt time.Time `json:"exportedAt"`
	Entries    []Entry   `json:"entries"`
}
