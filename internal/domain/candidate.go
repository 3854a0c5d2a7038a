package domain

import (
	"context"
	"time"
)

// Candidate status values
const (
	CandidateStatusActive   = "Active"
	CandidateStatusInactive = "Inactive"
)

type Candidate struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateProfile is the extended, free-text CV data attached 1:1 to a
// candidate.
type CandidateProfile struct {
	ID              int64      `json:"id"`
	CandidateID     int64      `json:"candidate_id"`
	JobCategoryID   *int64     `json:"job_category_id,omitempty"`
	ExperienceLevel *string    `json:"experience_level,omitempty"`
	ExpectedSalary  *string    `json:"expected_salary,omitempty"`
	AboutMe         *string    `json:"about_me,omitempty"`
	CareerObjective *string    `json:"career_objective,omitempty"`
	Experience      *string    `json:"experience,omitempty"`
	Education       *string    `json:"education,omitempty"`
	Skills          []string   `json:"skills"`
	Languages       []string   `json:"languages"`
	ReferenceText   *string    `json:"reference_text,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CandidateWithProfile is the /candidates/me response shape.
type CandidateWithProfile struct {
	Candidate
	Profile *CandidateProfile `json:"profile,omitempty"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) (bool, error)
	GetProfile(ctx context.Context, candidateID int64) (*CandidateProfile, error)
	UpsertProfile(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	// Upsert creates the caller's candidate row on first use, then updates
	// it and its extended profile on later calls.
	Upsert(ctx context.Context, userID int64, candidate *Candidate, profile *CandidateProfile) (*Candidate, error)
	GetMine(ctx context.Context, userID int64) (*CandidateWithProfile, error)
	// RequireByUser resolves the caller's candidate row; callers without one
	// are forbidden from candidate-scoped operations.
	RequireByUser(ctx context.Context, userID int64) (*Candidate, error)
	Get(ctx context.Context, id int64) (*Candidate, error)
	Delete(ctx context.Context, userID int64, candidateID int64) error
}
