package storage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Candidate is a talent-bank member together with its skill set.
type Candidate struct {
	ID      int64     `json:"id"`
	EntryID int64     `json:"entryId"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Skills  []string  `json:"skills"`
	Notes   string    `json:"notes"`
	AddedAt time.Time `json:"addedAt"`
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// JobRequisition is read-only here; it is owned by job CRUD.
type JobRequisition struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Status         JobStatus `json:"status"`
	RequiredSkills []string  `json:"requiredSkills"`
}

type SuggestionState string

const (
	StatePending   SuggestionState = "pending"
	StateViewed    SuggestionState = "viewed"
	StateApplied   SuggestionState = "applied"
	StateDiscarded SuggestionState = "discarded"
)

// Suggestion records that a recruiter recommended a job to a candidate.
// Only State and the delivery flags change after creation.
type Suggestion struct {
	ID               uuid.UUID       `json:"id"`
	CandidateID      int64           `json:"candidateId"`
	JobID            int64           `json:"jobId"`
	State            SuggestionState `json:"state"`
	SuggestedBy      string          `json:"suggestedBy"`
	Notes            string          `json:"notes,omitempty"`
	EmailRequested   bool            `json:"emailRequested"`
	NotificationSent bool            `json:"notificationSent"`
	EmailSent        bool            `json:"emailSent"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Notification is an in-app message addressed to a candidate.
type Notification struct {
	ID          uuid.UUID       `json:"id"`
	CandidateID int64           `json:"candidateId"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data,omitempty"`
	IsRead      bool            `json:"isRead"`
	CreatedAt   time.Time       `json:"createdAt"`
}
