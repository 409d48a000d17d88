package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) error
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type contactMessageRepo struct {
	crudRepo[models.ContactMessage]
}

func NewContactMessageRepo(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepo{crudRepo[models.ContactMessage]{db: db, order: "created_at"}}
}

func (r *contactMessageRepo) MarkRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
