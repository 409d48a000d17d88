package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

// ProfileRepository manages the singleton profile row.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).Order("id").Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save creates the row on first write and replaces it in place afterwards.
func (r *profileRepo) Save(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
