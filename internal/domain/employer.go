package domain

import (
	"context"
	"time"
)

type Employer struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyEmail       *string   `json:"company_email,omitempty"`
	CompanyLogo        *string   `json:"company_logo,omitempty"`
	CompanyContact     *string   `json:"company_contact,omitempty"`
	CompanyAddress     *string   `json:"company_address,omitempty"`
	CompanyDescription *string   `json:"company_description,omitempty"`
	CompanyWebsite     *string   `json:"company_website,omitempty"`
	Active             bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type EmployerRepository interface {
	Create(ctx context.Context, employer *Employer) error
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetByUserID(ctx context.Context, userID int64) (*Employer, error)
	List(ctx context.Context, offset, limit int) ([]Employer, error)
	Update(ctx context.Context, employer *Employer) error
	Deactivate(ctx context.Context, id int64) (bool, error)
}

type EmployerUsecase interface {
	List(ctx context.Context, offset, limit int) ([]Employer, error)
	Get(ctx context.Context, id int64) (*Employer, error)
	GetByUser(ctx context.Context, userID int64) (*Employer, error)
	// Update applies explicit field-by-field changes; only the owning user
	// or an admin may modify an employer.
	Update(ctx context.Context, userID int64, role string, employer *Employer) (*Employer, error)
	SetLogo(ctx context.Context, userID int64, role string, employerID int64, filename string) error
	Deactivate(ctx context.Context, userID int64, role string, id int64) error
}
