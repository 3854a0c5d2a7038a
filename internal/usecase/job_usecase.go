package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, employerRepo: employerRepo}
}

// employerFor resolves the caller's employer profile; callers without one
// cannot touch job postings.
func (u *jobUsecase) employerFor(ctx context.Context, userID int64) (*domain.Employer, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.Forbidden("Employer profile required")
	}
	return employer, nil
}

func (u *jobUsecase) Create(ctx context.Context, userID int64, job *domain.Job, categoryIDs []int64) error {
	employer, err := u.employerFor(ctx, userID)
	if err != nil {
		return err
	}

	if !domain.ValidJobType(job.Type) {
		return apperror.BadRequest("Invalid job type")
	}
	if job.Level == "" {
		job.Level = domain.JobLevelMid
	}
	if !domain.ValidJobLevel(job.Level) {
		return apperror.BadRequest("Invalid job level")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Invalid job status")
	}

	job.EmployerID = employer.ID
	return u.jobRepo.Create(ctx, job, categoryIDs)
}

func (u *jobUsecase) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	return u.jobRepo.ListOpen(ctx, offset, limit)
}

func (u *jobUsecase) ListMine(ctx context.Context, userID int64, offset, limit int) ([]domain.Job, error) {
	employer, err := u.employerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.jobRepo.ListByEmployer(ctx, employer.ID, offset, limit)
}

// Update replaces the mutable job fields after the ownership check. Fields
// are mapped explicitly; the stored employer id never changes.
func (u *jobUsecase) Update(ctx context.Context, userID int64, jobID int64, job *domain.Job, categoryIDs []int64) (*domain.Job, error) {
	employer, err := u.employerFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing == nil {
		return nil, apperror.NotFound("Job not found")
	}
	if existing.EmployerID != employer.ID {
		return nil, apperror.Forbidden("You can only update your own jobs")
	}

	if !domain.ValidJobType(job.Type) {
		return nil, apperror.BadRequest("Invalid job type")
	}
	if !domain.ValidJobLevel(job.Level) {
		return nil, apperror.BadRequest("Invalid job level")
	}
	if !domain.ValidJobStatus(job.Status) {
		return nil, apperror.BadRequest("Invalid job status")
	}

	existing.Title = job.Title
	existing.Type = job.Type
	existing.Level = job.Level
	existing.PositionNumber = job.PositionNumber
	existing.SalaryRange = job.SalaryRange
	existing.Location = job.Location
	existing.Description = job.Description
	existing.ExperienceRequired = job.ExperienceRequired
	existing.ClosingDate = job.ClosingDate
	existing.Status = job.Status

	if err := u.jobRepo.Update(ctx, existing, categoryIDs); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.jobRepo.GetByID(ctx, jobID)
}

func (u *jobUsecase) Delete(ctx context.Context, userID int64, jobID int64) error {
	employer, err := u.employerFor(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}
	if existing.EmployerID != employer.ID {
		return apperror.Forbidden("You can only delete your own jobs")
	}
	return u.jobRepo.Delete(ctx, jobID)
}
