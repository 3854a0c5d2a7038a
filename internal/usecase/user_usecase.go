package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
)

type userUsecase struct {
	userRepo      domain.UserRepository
	employerRepo  domain.EmployerRepository
	candidateRepo domain.CandidateRepository
	hasher        *auth.PasswordHasher
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	employerRepo domain.EmployerRepository,
	candidateRepo domain.CandidateRepository,
	hasher *auth.PasswordHasher,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:      userRepo,
		employerRepo:  employerRepo,
		candidateRepo: candidateRepo,
		hasher:        hasher,
	}
}

func requireAdmin(ctx context.Context) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can manage users")
	}
	return nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.userRepo.List(ctx)
}

// UpsertUser creates a user (with its role profile) or updates the one
// matching the email. Existing users with a missing role profile get the
// profile row reconciled here.
func (u *userUsecase) UpsertUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if existing == nil {
		if password == "" {
			return nil, apperror.BadRequest("Password is required for new users")
		}
		digest, err := u.hasher.Hash(password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.Password = digest
		user.Active = true
		user.CreatedAt = time.Now()

		var employer *domain.Employer
		var candidate *domain.Candidate
		switch user.Role {
		case domain.RoleEmployer:
			employer = &domain.Employer{CompanyName: user.Name, Active: true}
		case domain.RoleCandidate:
			candidate = &domain.Candidate{Status: domain.CandidateStatusActive}
		}
		if err := u.userRepo.CreateWithProfile(ctx, user, employer, candidate); err != nil {
			return nil, err
		}
		return user, nil
	}

	existing.Name = user.Name
	existing.Role = user.Role
	existing.Gender = user.Gender
	existing.Phone = user.Phone
	existing.DateOfBirth = user.DateOfBirth
	existing.Address = user.Address
	if err := u.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := u.reconcileProfile(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// reconcileProfile backfills the role profile row when an existing user is
// missing it, keeping the one-profile-per-role-user invariant.
func (u *userUsecase) reconcileProfile(ctx context.Context, user *domain.User) error {
	switch user.Role {
	case domain.RoleEmployer:
		employer, err := u.employerRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if employer == nil {
			return u.employerRepo.Create(ctx, &domain.Employer{
				UserID:      user.ID,
				CompanyName: user.Name,
				Active:      true,
			})
		}
	case domain.RoleCandidate:
		candidate, err := u.candidateRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if candidate == nil {
			return u.candidateRepo.Create(ctx, &domain.Candidate{
				UserID: user.ID,
				Status: domain.CandidateStatusActive,
			})
		}
	}
	return nil
}

func (u *userUsecase) DeactivateUsers(ctx context.Context, ids []int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperror.BadRequest("No IDs provided for deletion")
	}
	affected, err := u.userRepo.Deactivate(ctx, ids)
	if err != nil {
		return apperror.Internal(err)
	}
	if affected == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
