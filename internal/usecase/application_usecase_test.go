package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	openJob := func() *domain.Job {
		return &domain.Job{ID: 100, EmployerID: 1, Status: domain.JobStatusOpen}
	}

	newUC := func(appRepo *MockApplicationRepo, jobRepo *MockJobRepo, resumeRepo *MockResumeRepo) domain.ApplicationUsecase {
		return usecase.NewApplicationUsecase(appRepo, jobRepo, resumeRepo, new(MockEmployerRepo))
	}

	t.Run("Should reject a job that is not open", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := newUC(new(MockApplicationRepo), jobRepo, new(MockResumeRepo))

		job := openJob()
		job.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(job, nil)

		_, err := uc.Apply(context.Background(), 5, 100, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting applications")
	})

	t.Run("Should reject a duplicate application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := newUC(appRepo, jobRepo, new(MockResumeRepo))

		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(openJob(), nil)
		appRepo.On("FindByJobAndCandidate", mock.Anything, int64(100), int64(5)).
			Return(&domain.Application{ID: 1}, nil)

		_, err := uc.Apply(context.Background(), 5, 100, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should reject a resume owned by another candidate", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		resumeRepo := new(MockResumeRepo)
		uc := newUC(appRepo, jobRepo, resumeRepo)

		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(openJob(), nil)
		appRepo.On("FindByJobAndCandidate", mock.Anything, int64(100), int64(5)).Return(nil, nil)
		resumeRepo.On("GetByID", mock.Anything, int64(9)).
			Return(&domain.Resume{ID: 9, CandidateID: 77}, nil)

		resumeID := int64(9)
		_, err := uc.Apply(context.Background(), 5, 100, &resumeID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized resume")
	})

	t.Run("Should fall back to the primary resume", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		resumeRepo := new(MockResumeRepo)
		uc := newUC(appRepo, jobRepo, resumeRepo)

		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(openJob(), nil)
		appRepo.On("FindByJobAndCandidate", mock.Anything, int64(100), int64(5)).Return(nil, nil)
		resumeRepo.On("GetPrimary", mock.Anything, int64(5)).
			Return(&domain.Resume{ID: 42, CandidateID: 5, IsPrimary: true}, nil)
		appRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.ResumeID != nil && *a.ResumeID == 42 && a.Status == domain.ApplicationStatusPending
		})).Return(nil)

		app, err := uc.Apply(context.Background(), 5, 100, nil)
		require.NoError(t, err)
		require.NotNil(t, app.ResumeID)
		assert.Equal(t, int64(42), *app.ResumeID)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should fail when no resume is given and none is primary", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		resumeRepo := new(MockResumeRepo)
		uc := newUC(appRepo, jobRepo, resumeRepo)

		jobRepo.On("GetByID", mock.Anything, int64(100)).Return(openJob(), nil)
		appRepo.On("FindByJobAndCandidate", mock.Anything, int64(100), int64(5)).Return(nil, nil)
		resumeRepo.On("GetPrimary", mock.Anything, int64(5)).Return(nil, nil)

		_, err := uc.Apply(context.Background(), 5, 100, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No primary resume found")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("Should reject an unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockResumeRepo), new(MockEmployerRepo))

		_, err := uc.UpdateStatus(context.Background(), 10, 1, "OnHold")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should forbid managing applications for another employer's job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockResumeRepo), employerRepo)

		appRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Application{ID: 1, JobID: 100, Status: domain.ApplicationStatusPending}, nil)
		employerRepo.On("GetByUserID", mock.Anything, int64(20)).
			Return(&domain.Employer{ID: 2, UserID: 20}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(100)).
			Return(&domain.Job{ID: 100, EmployerID: 1}, nil)

		_, err := uc.UpdateStatus(context.Background(), 20, 1, domain.ApplicationStatusShortlisted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should update the status for the owning employer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockResumeRepo), employerRepo)

		appRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Application{ID: 1, JobID: 100, Status: domain.ApplicationStatusPending}, nil)
		employerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&domain.Employer{ID: 1, UserID: 10}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(100)).
			Return(&domain.Job{ID: 100, EmployerID: 1}, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(1), domain.ApplicationStatusAccepted).Return(nil)

		app, err := uc.UpdateStatus(context.Background(), 10, 1, domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
	})
}
