package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id uint) (*models.Education, error)
	Create(ctx context.Context, e *models.Education) error
	Save(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, id uint) error
}

type educationRepo struct {
	crudRepo[models.Education]
}

func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{crudRepo[models.Education]{db: db, order: "year"}}
}
