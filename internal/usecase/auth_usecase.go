package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	sessionUC domain.SessionUsecase
	hasher    *auth.PasswordHasher
	issuer    *auth.TokenIssuer
	tokenTTL  time.Duration
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	sessionUC domain.SessionUsecase,
	hasher *auth.PasswordHasher,
	issuer *auth.TokenIssuer,
	tokenTTL time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		sessionUC: sessionUC,
		hasher:    hasher,
		issuer:    issuer,
		tokenTTL:  tokenTTL,
	}
}

// Register creates the user together with its role profile in one
// transaction: employers get an employer row with company_name defaulted
// from the user's name, candidates get an active candidate row.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) error {
	if user.Role != domain.RoleEmployer && user.Role != domain.RoleCandidate && user.Role != domain.RoleAdmin {
		return apperror.BadRequest("Invalid role")
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return apperror.Internal(err)
	}
	user.Password = digest
	user.Active = true
	user.CreatedAt = time.Now()

	var employer *domain.Employer
	var candidate *domain.Candidate
	switch user.Role {
	case domain.RoleEmployer:
		employer = &domain.Employer{
			CompanyName: user.Name,
			Active:      true,
		}
	case domain.RoleCandidate:
		candidate = &domain.Candidate{
			Status: domain.CandidateStatusActive,
		}
	}

	return u.userRepo.CreateWithProfile(ctx, user, employer, candidate)
}

func (u *authUsecase) Login(ctx context.Context, email, password, clientAddress string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	if user == nil {
		return "", nil, apperror.NotFound("Email not found")
	}
	if !user.Active {
		return "", nil, apperror.Unauthorized("Account is deactivated")
	}

	if !u.hasher.Verify(password, user.Password) {
		return "", nil, apperror.BadRequest("Invalid password")
	}

	token, err := u.issuer.Issue(user.ID, u.tokenTTL)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	if _, err := u.sessionUC.Create(ctx, user.ID, token, clientAddress); err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) bool {
	return u.sessionUC.Revoke(ctx, token)
}

// VerifyToken checks signature and session liveness, extending a live
// session by the renewal window as a side effect.
func (u *authUsecase) VerifyToken(ctx context.Context, token string) (bool, error) {
	if _, err := u.issuer.Decode(token); err != nil {
		return false, nil
	}
	return u.sessionUC.Renew(ctx, token)
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if !u.hasher.Verify(oldPassword, user.Password) {
		return apperror.BadRequest("Invalid password")
	}

	digest, err := u.hasher.Hash(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePassword(ctx, userID, digest)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
