package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	ListPublished(ctx context.Context) ([]models.Article, error)
	ListFeatured(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, a *models.Article) error
	Save(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepo struct {
	crudRepo[models.Article]
}

func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{crudRepo[models.Article]{db: db, order: "created_at"}}
}

func (r *articleRepo) ListPublished(ctx context.Context) ([]models.Article, error) {
	var rows []models.Article
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

// ListFeatured returns articles that are both featured and published;
// an unpublished article is never featured publicly.
func (r *articleRepo) ListFeatured(ctx context.Context) ([]models.Article, error) {
	var rows []models.Article
	err := r.db.WithContext(ctx).
		Where("featured = ? AND published = ?", true, true).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var row models.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *articleRepo) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
