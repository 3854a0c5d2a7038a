package domain

import (
	"context"
	"time"
)

// Job status values; only Open jobs accept applications.
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
	JobStatusDraft  = "Draft"
)

// Job types
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
)

// Job levels
const (
	JobLevelEntry   = "Entry Level"
	JobLevelJunior  = "Junior"
	JobLevelMid     = "Mid Level"
	JobLevelSenior  = "Senior"
	JobLevelLead    = "Lead"
	JobLevelManager = "Manager"
)

func ValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed || s == JobStatusDraft
}

func ValidJobType(s string) bool {
	return s == JobTypeFullTime || s == JobTypePartTime || s == JobTypeInternship
}

func ValidJobLevel(s string) bool {
	switch s {
	case JobLevelEntry, JobLevelJunior, JobLevelMid, JobLevelSenior, JobLevelLead, JobLevelManager:
		return true
	}
	return false
}

type Job struct {
	ID                 int64      `json:"id"`
	EmployerID         int64      `json:"employer_id"`
	Title              string     `json:"title"`
	Type               string     `json:"job_type"`
	Level              string     `json:"level"`
	PositionNumber     *int       `json:"position_number,omitempty"`
	SalaryRange        *string    `json:"salary_range,omitempty"`
	Location           *string    `json:"location,omitempty"`
	Description        string     `json:"description"`
	ExperienceRequired string     `json:"experience_required"`
	PostingDate        time.Time  `json:"posting_date"`
	ClosingDate        *time.Time `json:"closing_date,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	Categories         []Category `json:"categories"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job, categoryIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	ListOpen(ctx context.Context, offset, limit int) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID int64, offset, limit int) ([]Job, error)
	Update(ctx context.Context, job *Job, categoryIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	Create(ctx context.Context, userID int64, job *Job, categoryIDs []int64) error
	Get(ctx context.Context, id int64) (*Job, error)
	ListOpen(ctx context.Context, offset, limit int) ([]Job, error)
	ListMine(ctx context.Context, userID int64, offset, limit int) ([]Job, error)
	Update(ctx context.Context, userID int64, jobID int64, job *Job, categoryIDs []int64) (*Job, error)
	Delete(ctx context.Context, userID int64, jobID int64) error
}
