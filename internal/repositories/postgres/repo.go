package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

// crudRepo carries the operations shared by every entity table so the
// per-entity repositories only add their own queries on top.
type crudRepo[T any] struct {
	db    *gorm.DB
	order string // applied to List; empty means insertion order
}

func (r *crudRepo[T]) List(ctx context.Context) ([]T, error) {
	q := r.db.WithContext(ctx)
	if r.order != "" {
		q = q.Order(r.order)
	}
	var rows []T
	err := q.Find(&rows).Error
	return rows, err
}

func (r *crudRepo[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *crudRepo[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Save writes the full record back. The caller loads it first, so a
// vanished row is still reported as not found via GetByID.
func (r *crudRepo[T]) Save(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *crudRepo[T]) Delete(ctx context.Context, id uint) error {
	var row T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
