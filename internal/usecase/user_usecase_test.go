package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserAdminGate(t *testing.T) {
	uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockEmployerRepo), new(MockCandidateRepo), auth.NewPasswordHasher())

	t.Run("Should forbid non-admin roles", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleCandidate)
		_, err := uc.ListUsers(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can manage users")
	})

	t.Run("Should fail safely when the role is missing from the context", func(t *testing.T) {
		_, err := uc.ListUsers(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can manage users")
	})

	t.Run("Should forbid deactivation for non-admins", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		err := uc.DeactivateUsers(ctx, []int64{1, 2})
		assert.Error(t, err)
	})
}

func TestUpsertUser(t *testing.T) {
	adminCtx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)

	t.Run("Should require a password for new users", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockEmployerRepo), new(MockCandidateRepo), auth.NewPasswordHasher())

		userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)

		_, err := uc.UpsertUser(adminCtx, &domain.User{Email: "new@example.com", Role: domain.RoleCandidate}, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Password is required")
		userRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should create a new employer user together with its company profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockEmployerRepo), new(MockCandidateRepo), auth.NewPasswordHasher())

		userRepo.On("GetByEmail", mock.Anything, "acme@example.com").Return(nil, nil)
		userRepo.On("CreateWithProfile", mock.Anything,
			mock.MatchedBy(func(u *domain.User) bool {
				return u.Active && u.Password != "" && u.Password != "s3cret!"
			}),
			mock.MatchedBy(func(e *domain.Employer) bool {
				return e != nil && e.CompanyName == "Acme Corp" && e.Active
			}),
			mock.Anything).Return(nil)

		created, err := uc.UpsertUser(adminCtx, &domain.User{
			Name:  "Acme Corp",
			Email: "acme@example.com",
			Role:  domain.RoleEmployer,
		}, "s3cret!")
		assert.NoError(t, err)
		assert.NotNil(t, created)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should backfill the candidate profile for an existing user missing one", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockEmployerRepo), candidateRepo, auth.NewPasswordHasher())

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(&domain.User{ID: 7, Email: "jane@example.com", Role: domain.RoleCandidate}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 7 && u.Name == "Jane Doe"
		})).Return(nil)
		candidateRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
		candidateRepo.On("Create", mock.Anything, mock.MatchedBy(func(cand *domain.Candidate) bool {
			return cand.UserID == 7 && cand.Status == domain.CandidateStatusActive
		})).Return(nil)

		updated, err := uc.UpsertUser(adminCtx, &domain.User{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Role:  domain.RoleCandidate,
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), updated.ID)
		candidateRepo.AssertExpectations(t)
	})

	t.Run("Should not create a second profile when the existing user already has one", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewUserUsecase(userRepo, employerRepo, new(MockCandidateRepo), auth.NewPasswordHasher())

		userRepo.On("GetByEmail", mock.Anything, "acme@example.com").
			Return(&domain.User{ID: 3, Email: "acme@example.com", Role: domain.RoleEmployer}, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		employerRepo.On("GetByUserID", mock.Anything, int64(3)).
			Return(&domain.Employer{ID: 12, UserID: 3, CompanyName: "Acme Corp"}, nil)

		_, err := uc.UpsertUser(adminCtx, &domain.User{
			Name:  "Acme Corp",
			Email: "acme@example.com",
			Role:  domain.RoleEmployer,
		}, "")
		assert.NoError(t, err)
		employerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDeactivateUsers(t *testing.T) {
	adminCtx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)

	t.Run("Should reject an empty id list", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockEmployerRepo), new(MockCandidateRepo), auth.NewPasswordHasher())
		err := uc.DeactivateUsers(adminCtx, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No IDs provided")
	})
}
