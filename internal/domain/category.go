package domain

import "context"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
}

type CategoryUsecase interface {
	List(ctx context.Context) ([]Category, error)
}
