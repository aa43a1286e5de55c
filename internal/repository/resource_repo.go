package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxListLimit caps how many documents a list query returns. Tunable safety
// limit, not a product requirement.
const maxListLimit = 1000

// ResourceRepository is the uniform data-access contract shared by every
// CRUD-managed collection (clients, chantiers, documents, fiches, calculs).
// Rows are addressed by their application-generated UUID, never by any
// storage-native key.
type ResourceRepository[T any] struct {
	db *gorm.DB
}

func NewResourceRepository[T any](db *gorm.DB) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db}
}

// List returns the collection ordered by creation time, newest first
func (r *ResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(maxListLimit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts the document; the identifier and both timestamps are
// stamped during the insert
func (r *ResourceRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ResourceRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	// A non-UUID id can never match a row; skip the query so postgres
	// does not reject the literal with a type error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges only the supplied columns, refreshes updated_at and returns
// the re-read merged document. Absent keys are never touched; the caller's
// map is not modified.
func (r *ResourceRepository[T]) Update(ctx context.Context, id string, changes map[string]any) (*T, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	updates := make(map[string]any, len(changes)+1)
	for column, value := range changes {
		updates[column] = value
	}
	updates["updated_at"] = time.Now().UTC()
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes exactly one document; zero rows affected reports not-found
func (r *ResourceRepository[T]) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
