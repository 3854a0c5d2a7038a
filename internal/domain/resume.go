package domain

import (
	"context"
	"time"
)

// Resume types
const (
	ResumeTypeText   = "Text"
	ResumeTypeUpload = "Upload"
)

func ValidResumeType(s string) bool {
	return s == ResumeTypeText || s == ResumeTypeUpload
}

type Resume struct {
	ID                   int64      `json:"id"`
	CandidateID          int64      `json:"candidate_id"`
	Type                 string     `json:"resume_type"`
	File                 *string    `json:"resume_file,omitempty"`
	Content              *string    `json:"resume_content,omitempty"`
	RecommendationLetter *string    `json:"recommendation_letter,omitempty"`
	IsPrimary            bool       `json:"is_primary"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Resume, error)
	GetPrimary(ctx context.Context, candidateID int64) (*Resume, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id int64) (bool, error)
	// SetPrimary marks the given resume primary and clears the flag on every
	// other resume of the same candidate, atomically.
	SetPrimary(ctx context.Context, candidateID, resumeID int64) (bool, error)
}

type ResumeUsecase interface {
	Create(ctx context.Context, candidateID int64, resume *Resume) error
	ListMine(ctx context.Context, candidateID int64) ([]Resume, error)
	Update(ctx context.Context, candidateID int64, resumeID int64, resume *Resume) (*Resume, error)
	Delete(ctx context.Context, candidateID int64, resumeID int64) error
	SetPrimary(ctx context.Context, candidateID int64, resumeID int64) error
}
