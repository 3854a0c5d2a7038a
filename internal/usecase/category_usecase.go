package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
)

type categoryUsecase struct {
	categoryRepo domain.CategoryRepository
}

func NewCategoryUsecase(categoryRepo domain.CategoryRepository) domain.CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) List(ctx context.Context) ([]domain.Category, error) {
	return u.categoryRepo.List(ctx)
}
