package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) Create(ctx context.Context, candidateID int64, resume *domain.Resume) error {
	if !domain.ValidResumeType(resume.Type) {
		return apperror.BadRequest("resume_type must be 'Text' or 'Upload'")
	}
	resume.CandidateID = candidateID
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return apperror.Internal(err)
	}
	if resume.IsPrimary {
		if _, err := u.resumeRepo.SetPrimary(ctx, candidateID, resume.ID); err != nil {
			return apperror.Internal(err)
		}
	}
	return nil
}

func (u *resumeUsecase) ListMine(ctx context.Context, candidateID int64) ([]domain.Resume, error) {
	return u.resumeRepo.ListByCandidate(ctx, candidateID)
}

// owned fetches a resume and enforces that it belongs to the caller. A
// foreign resume reads as not-found so ids cannot be probed.
func (u *resumeUsecase) owned(ctx context.Context, candidateID, resumeID int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if resume == nil || resume.CandidateID != candidateID {
		return nil, apperror.NotFound("Resume not found or not yours")
	}
	return resume, nil
}

func (u *resumeUsecase) Update(ctx context.Context, candidateID int64, resumeID int64, resume *domain.Resume) (*domain.Resume, error) {
	existing, err := u.owned(ctx, candidateID, resumeID)
	if err != nil {
		return nil, err
	}

	if resume.Type != "" {
		if !domain.ValidResumeType(resume.Type) {
			return nil, apperror.BadRequest("resume_type must be 'Text' or 'Upload'")
		}
		existing.Type = resume.Type
	}
	if resume.Content != nil {
		existing.Content = resume.Content
	}
	if resume.RecommendationLetter != nil {
		existing.RecommendationLetter = resume.RecommendationLetter
	}
	if resume.File != nil {
		existing.File = resume.File
	}

	if err := u.resumeRepo.Update(ctx, existing); err != nil {
		return nil, apperror.Internal(err)
	}

	if resume.IsPrimary && !existing.IsPrimary {
		if _, err := u.resumeRepo.SetPrimary(ctx, candidateID, resumeID); err != nil {
			return nil, apperror.Internal(err)
		}
		existing.IsPrimary = true
	}
	return existing, nil
}

func (u *resumeUsecase) Delete(ctx context.Context, candidateID int64, resumeID int64) error {
	if _, err := u.owned(ctx, candidateID, resumeID); err != nil {
		return err
	}
	if _, err := u.resumeRepo.Delete(ctx, resumeID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *resumeUsecase) SetPrimary(ctx context.Context, candidateID int64, resumeID int64) error {
	ok, err := u.resumeRepo.SetPrimary(ctx, candidateID, resumeID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Resume not found or not yours")
	}
	return nil
}
