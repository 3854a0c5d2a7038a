package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJobOwnership(t *testing.T) {
	owner := &domain.Employer{ID: 1, UserID: 10, CompanyName: "Acme"}
	stranger := &domain.Employer{ID: 2, UserID: 20, CompanyName: "Rival"}
	storedJob := func() *domain.Job {
		return &domain.Job{
			ID:         100,
			EmployerID: 1,
			Title:      "Backend Engineer",
			Type:       domain.JobTypeFullTime,
			Level:      domain.JobLevelMid,
			Status:     domain.JobStatusOpen,
		}
	}

	t.Run("Should forbid updating someone else's job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		employerRepo.On("GetByUserID", mock.Anything, int64(20)).Return(stranger, nil)
		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(storedJob(), nil)

		_, err := uc.Update(context.Background(), 20, 100, storedJob(), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only update your own jobs")
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid deleting someone else's job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		employerRepo.On("GetByUserID", mock.Anything, int64(20)).Return(stranger, nil)
		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(storedJob(), nil)

		err := uc.Delete(context.Background(), 20, 100)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should forbid users without an employer profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		employerRepo.On("GetByUserID", mock.Anything, int64(30)).Return(nil, nil)

		err := uc.Create(context.Background(), 30, storedJob(), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Employer profile required")
	})

	t.Run("Should never let an update reassign the employer", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		incoming := storedJob()
		incoming.EmployerID = 999
		incoming.Title = "Renamed"

		employerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(owner, nil)
		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(storedJob(), nil)
		jobRepo.On("Update", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.EmployerID == 1 && j.Title == "Renamed"
		}), mock.Anything).Return(nil)

		_, err := uc.Update(context.Background(), 10, 100, incoming, nil)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestJobValidation(t *testing.T) {
	employer := &domain.Employer{ID: 1, UserID: 10}

	newUC := func(employerRepo *MockEmployerRepo, jobRepo *MockJobRepo) domain.JobUsecase {
		employerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(employer, nil)
		return usecase.NewJobUsecase(jobRepo, employerRepo)
	}

	t.Run("Should reject an unknown job type", func(t *testing.T) {
		uc := newUC(new(MockEmployerRepo), new(MockJobRepo))

		job := &domain.Job{Title: "X", Type: "Gig", Description: "d", ExperienceRequired: "none"}
		err := uc.Create(context.Background(), 10, job, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job type")
	})

	t.Run("Should default level and status for new jobs", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := newUC(new(MockEmployerRepo), jobRepo)

		jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.Level == domain.JobLevelMid && j.Status == domain.JobStatusDraft && j.EmployerID == 1
		}), mock.Anything).Return(nil)

		job := &domain.Job{Title: "X", Type: domain.JobTypeFullTime, Description: "d", ExperienceRequired: "none"}
		err := uc.Create(context.Background(), 10, job, nil)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}
