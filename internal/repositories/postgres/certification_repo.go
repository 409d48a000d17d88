package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type CertificationRepository interface {
	List(ctx context.Context) ([]models.Certification, error)
	GetByID(ctx context.Context, id uint) (*models.Certification, error)
	Create(ctx context.Context, c *models.Certification) error
	Save(ctx context.Context, c *models.Certification) error
	Delete(ctx context.Context, id uint) error
}

type certificationRepo struct {
	crudRepo[models.Certification]
}

func NewCertificationRepo(db *gorm.DB) CertificationRepository {
	return &certificationRepo{crudRepo[models.Certification]{db: db, order: "year"}}
}
