package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a stored analysis run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	ResumeHash  string     `json:"resume_hash"`
	JobHash     string     `json:"job_hash"`
	JobURL      string     `json:"job_url,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
