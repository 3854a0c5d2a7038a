package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

// Upsert creates or updates the caller's own candidate row; the user id
// always comes from the authenticated context, never the payload.
func (u *candidateUsecase) Upsert(ctx context.Context, userID int64, candidate *domain.Candidate, profile *domain.CandidateProfile) (*domain.Candidate, error) {
	existing, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if existing == nil {
		candidate.UserID = userID
		if candidate.Status == "" {
			candidate.Status = domain.CandidateStatusActive
		}
		if err := u.candidateRepo.Create(ctx, candidate); err != nil {
			return nil, apperror.Internal(err)
		}
		existing = candidate
	} else {
		if candidate.Status != "" {
			existing.Status = candidate.Status
		}
		if candidate.Description != nil {
			existing.Description = candidate.Description
		}
		if err := u.candidateRepo.Update(ctx, existing); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if profile != nil {
		profile.CandidateID = existing.ID
		if err := u.candidateRepo.UpsertProfile(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return existing, nil
}

func (u *candidateUsecase) GetMine(ctx context.Context, userID int64) (*domain.CandidateWithProfile, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	profile, err := u.candidateRepo.GetProfile(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.CandidateWithProfile{Candidate: *candidate, Profile: profile}, nil
}

func (u *candidateUsecase) RequireByUser(ctx context.Context, userID int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.Forbidden("You need to create a candidate profile first")
	}
	return candidate, nil
}

func (u *candidateUsecase) Get(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, userID int64, candidateID int64) error {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate profile not found")
	}
	if candidate.UserID != userID {
		return apperror.Forbidden("You can only delete your own candidate profile")
	}
	if _, err := u.candidateRepo.Delete(ctx, candidateID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
