package service

import (
	"context"
	"errors"

	"backend/internal/repository"

	"gorm.io/gorm"
)

// ErrNotFound reports that an identifier does not resolve in the target
// collection
var ErrNotFound = errors.New("not found")

// ResourceService wraps the generic repository and translates storage errors
// into the service-level taxonomy. One instance serves one collection.
type ResourceService[T any] struct {
	repo *repository.ResourceRepository[T]
}

func NewResourceService[T any](repo *repository.ResourceRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo}
}

func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService[T]) Create(ctx context.Context, item *T) error {
	return s.repo.Create(ctx, item)
}

func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, id string, changes map[string]any) (*T, error) {
	item, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
