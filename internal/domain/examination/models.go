package examination

import (
	"time"

	"pulse/internal/domain/survey"
)

const TypeEngagement = "ENGAGEMENT"

const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
	StatusFailed    = "FAILED"
)

// Examination is one uploaded survey: metadata plus the extracted raw rows
// the report pipeline consumes.
type Examination struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	SourceFileName   string             `json:"sourceFileName,omitempty"`
	Headers          []string           `json:"headers"`
	Rows             []survey.ParsedRow `json:"rows"`
	RespondentsCount int                `json:"respondentsCount"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}
