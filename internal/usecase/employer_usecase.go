package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
}

func NewEmployerUsecase(employerRepo domain.EmployerRepository) domain.EmployerUsecase {
	return &employerUsecase{employerRepo: employerRepo}
}

func (u *employerUsecase) List(ctx context.Context, offset, limit int) ([]domain.Employer, error) {
	return u.employerRepo.List(ctx, offset, limit)
}

func (u *employerUsecase) Get(ctx context.Context, id int64) (*domain.Employer, error) {
	employer, err := u.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.NotFound("Employer not found")
	}
	return employer, nil
}

func (u *employerUsecase) GetByUser(ctx context.Context, userID int64) (*domain.Employer, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employer == nil {
		return nil, apperror.NotFound("Employer not found")
	}
	return employer, nil
}

// mayManage allows the owning user and admins through.
func mayManage(employer *domain.Employer, userID int64, role string) bool {
	return employer.UserID == userID || role == domain.RoleAdmin
}

func (u *employerUsecase) Update(ctx context.Context, userID int64, role string, employer *domain.Employer) (*domain.Employer, error) {
	existing, err := u.Get(ctx, employer.ID)
	if err != nil {
		return nil, err
	}
	if !mayManage(existing, userID, role) {
		return nil, apperror.Forbidden("You can only update your own employer profile")
	}

	existing.CompanyName = employer.CompanyName
	existing.CompanyEmail = employer.CompanyEmail
	existing.CompanyContact = employer.CompanyContact
	existing.CompanyAddress = employer.CompanyAddress
	existing.CompanyDescription = employer.CompanyDescription
	existing.CompanyWebsite = employer.CompanyWebsite

	if err := u.employerRepo.Update(ctx, existing); err != nil {
		return nil, apperror.Internal(err)
	}
	return existing, nil
}

func (u *employerUsecase) SetLogo(ctx context.Context, userID int64, role string, employerID int64, filename string) error {
	existing, err := u.Get(ctx, employerID)
	if err != nil {
		return err
	}
	if !mayManage(existing, userID, role) {
		return apperror.Forbidden("You can only update your own employer profile")
	}
	existing.CompanyLogo = &filename
	if err := u.employerRepo.Update(ctx, existing); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *employerUsecase) Deactivate(ctx context.Context, userID int64, role string, id int64) error {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if !mayManage(existing, userID, role) {
		return apperror.Forbidden("You can only deactivate your own employer profile")
	}
	ok, err := u.employerRepo.Deactivate(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Employer not found")
	}
	return nil
}
