package services

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const (
	articlesPublishedCacheKey = "articles:published"
	articlesFeaturedCacheKey  = "articles:featured"
)

type ArticleService interface {
	List(ctx context.Context) ([]models.Article, error)
	ListPublished(ctx context.Context) ([]models.Article, error)
	ListFeatured(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleService struct {
	articles pgrepo.ArticleRepository
	cache    cache.Cache
}

func NewArticleService(articles pgrepo.ArticleRepository, c cache.Cache) ArticleService {
	return &articleService{articles: articles, cache: c}
}

func validateArticle(a *models.Article, op string) error {
	if a.Title == "" || a.Excerpt == "" || a.Content == "" || a.Category == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title, excerpt, content, and category are required", nil)
	}
	if a.ReadTime <= 0 {
		return utils.E(utils.CodeInvalidArgument, op, "readTime must be a positive number of minutes", nil)
	}
	return nil
}

// ensureSlug derives the slug from the title when it was not supplied and
// enforces uniqueness across all articles.
func (s *articleService) ensureSlug(ctx context.Context, a *models.Article, op string) error {
	if a.Slug == "" {
		a.Slug = utils.Slugify(a.Title)
	}
	if a.Slug == "" {
		return utils.E(utils.CodeInvalidArgument, op, "slug could not be derived from title", nil)
	}

	exists, err := s.articles.SlugExists(ctx, a.Slug, a.ID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check slug", err)
	}
	if exists {
		return utils.E(utils.CodeConflict, op, "an article with this slug already exists", nil)
	}
	return nil
}

func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	const op = "ArticleService.List"

	// admin view, uncached
	rows, err := s.articles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list articles", err)
	}
	return rows, nil
}

func (s *articleService) ListPublished(ctx context.Context) ([]models.Article, error) {
	const op = "ArticleService.ListPublished"

	var cached []models.Article
	if hit, err := s.cache.GetJSON(ctx, articlesPublishedCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.articles.ListPublished(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list published articles", err)
	}
	_ = s.cache.SetJSON(ctx, articlesPublishedCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *articleService) ListFeatured(ctx context.Context) ([]models.Article, error) {
	const op = "ArticleService.ListFeatured"

	var cached []models.Article
	if hit, err := s.cache.GetJSON(ctx, articlesFeaturedCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.articles.ListFeatured(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list featured articles", err)
	}
	_ = s.cache.SetJSON(ctx, articlesFeaturedCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *articleService) Get(ctx context.Context, id uint) (*models.Article, error) {
	const op = "ArticleService.Get"

	row, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Article not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get article", err)
	}
	return row, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "ArticleService.GetBySlug"

	if slug == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "slug is required", nil)
	}
	row, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Article not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get article", err)
	}
	return row, nil
}

func (s *articleService) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const op = "ArticleService.Create"

	if err := validateArticle(a, op); err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, a, op); err != nil {
		return nil, err
	}
	if err := s.articles.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create article", err)
	}
	_ = s.cache.Del(ctx, articlesPublishedCacheKey, articlesFeaturedCacheKey)
	return a, nil
}

func (s *articleService) Update(ctx context.Context, a *models.Article) (*models.Article, error) {
	const op = "ArticleService.Update"

	if err := validateArticle(a, op); err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, a, op); err != nil {
		return nil, err
	}
	if err := s.articles.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update article", err)
	}
	_ = s.cache.Del(ctx, articlesPublishedCacheKey, articlesFeaturedCacheKey)
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	const op = "ArticleService.Delete"

	if err := s.articles.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Article not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete article", err)
	}
	_ = s.cache.Del(ctx, articlesPublishedCacheKey, articlesFeaturedCacheKey)
	return nil
}
