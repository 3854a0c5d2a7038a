package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleCandidate = "candidate"
)

type User struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // bcrypt digest, never serialized
	Role        string     `json:"role"`
	Gender      *string    `json:"gender,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user row and, depending on role, exactly
	// one Employer or Candidate row in the same transaction.
	CreateWithProfile(ctx context.Context, user *User, employer *Employer, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Deactivate(ctx context.Context, ids []int64) (int64, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) error
	Login(ctx context.Context, email, password, clientAddress string) (string, *User, error)
	Logout(ctx context.Context, token string) bool
	// VerifyToken implements the renew-on-check behavior: a live session is
	// extended by the configured renewal window.
	VerifyToken(ctx context.Context, token string) (bool, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	// UpsertUser is the admin path: creates a new user (with its role
	// profile) or updates an existing one, reconciling a missing profile row.
	UpsertUser(ctx context.Context, user *User, password string) (*User, error)
	DeactivateUsers(ctx context.Context, ids []int64) error
}
