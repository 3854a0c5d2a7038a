package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	resumeRepo      domain.ResumeRepository
	employerRepo    domain.EmployerRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	resumeRepo domain.ResumeRepository,
	employerRepo domain.EmployerRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		resumeRepo:      resumeRepo,
		employerRepo:    employerRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, candidateID int64, jobID int64, resumeID *int64) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	existing, err := u.applicationRepo.FindByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	// Validate the given resume, or fall back to the primary one
	if resumeID != nil {
		resume, err := u.resumeRepo.GetByID(ctx, *resumeID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if resume == nil || resume.CandidateID != candidateID {
			return nil, apperror.BadRequest("Invalid or unauthorized resume")
		}
	} else {
		primary, err := u.resumeRepo.GetPrimary(ctx, candidateID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if primary == nil {
			return nil, apperror.BadRequest("No primary resume found. Please set one or select a resume.")
		}
		resumeID = &primary.ID
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeID:    resumeID,
		Status:      domain.ApplicationStatusPending,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// ownJob checks that the caller's employer profile owns the job.
func (u *applicationUsecase) ownJob(ctx context.Context, userID, jobID int64) (*domain.Job, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.Forbidden("Employer profile required")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job == nil || job.EmployerID != employer.ID {
		return nil, apperror.NotFound("Job not found or you do not own this job")
	}
	return job, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, userID int64, jobID int64, offset, limit int) ([]domain.Application, error) {
	if _, err := u.ownJob(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return u.applicationRepo.ListByJob(ctx, jobID, offset, limit)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID int64, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Allowed: Pending, Shortlisted, Rejected, Accepted")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if app == nil {
		return nil, apperror.NotFound("Application not found")
	}

	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.Forbidden("Employer profile required")
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job == nil || job.EmployerID != employer.ID {
		return nil, apperror.Forbidden("You can only manage applications for your own jobs")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = status
	return app, nil
}

func (u *applicationUsecase) MyStatus(ctx context.Context, candidateID int64, jobID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.FindByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}
