package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	GetByID(ctx context.Context, id uint) (*models.Activity, error)
	Create(ctx context.Context, a *models.Activity) error
	Save(ctx context.Context, a *models.Activity) error
	Delete(ctx context.Context, id uint) error
}

type activityRepo struct {
	crudRepo[models.Activity]
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{crudRepo[models.Activity]{db: db}}
}
