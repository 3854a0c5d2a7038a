package domain

import (
	"context"
	"time"
)

// Application status values
const (
	ApplicationStatusPending     = "Pending"
	ApplicationStatusShortlisted = "Shortlisted"
	ApplicationStatusRejected    = "Rejected"
	ApplicationStatusAccepted    = "Accepted"
)

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	ResumeID    *int64    `json:"resume_id,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*Application, error)
	ListByJob(ctx context.Context, jobID int64, offset, limit int) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Apply rejects closed/draft jobs and duplicate (job, candidate) pairs,
	// and falls back to the candidate's primary resume when none is given.
	Apply(ctx context.Context, candidateID int64, jobID int64, resumeID *int64) (*Application, error)
	ListForJob(ctx context.Context, userID int64, jobID int64, offset, limit int) ([]Application, error)
	UpdateStatus(ctx context.Context, userID int64, applicationID int64, status string) (*Application, error)
	MyStatus(ctx context.Context, candidateID int64, jobID int64) (*Application, error)
}
