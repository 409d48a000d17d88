package postgres

import (
	"context"

	"github.com/yoockh/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) error
	Save(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

type skillRepo struct {
	crudRepo[models.Skill]
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{crudRepo[models.Skill]{db: db, order: "proficiency"}}
}
