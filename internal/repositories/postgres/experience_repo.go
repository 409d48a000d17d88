package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Save(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

type experienceRepo struct {
	crudRepo[models.Experience]
}

func NewExperienceRepo(db *gorm.DB) ExperienceRepository {
	return &experienceRepo{crudRepo[models.Experience]{db: db, order: "start_date"}}
}
