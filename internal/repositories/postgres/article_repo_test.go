package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

func newArticle(slug string, published, featured bool) *models.Article {
	return &models.Article{
		Title:     "Title " + slug,
		Slug:      slug,
		Excerpt:   "excerpt",
		Content:   "content",
		Category:  "Engineering",
		ReadTime:  5,
		Published: published,
		Featured:  featured,
	}
}

func TestArticleRepoFilteredViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newArticle("draft", false, false)))
	require.NoError(t, repo.Create(ctx, newArticle("published", true, false)))
	require.NoError(t, repo.Create(ctx, newArticle("featured-published", true, true)))
	// featured but not published must stay out of the featured view
	require.NoError(t, repo.Create(ctx, newArticle("featured-draft", false, true)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	for _, a := range published {
		assert.True(t, a.Published)
	}

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "featured-published", featured[0].Slug)
}

func TestArticleRepoGetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newArticle("hello-world", true, false)))

	got, err := repo.GetBySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "Title hello-world", got.Title)

	_, err = repo.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestArticleRepoSlugUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newArticle("dup", true, false)))

	err := repo.Create(ctx, newArticle("dup", false, false))
	assert.Error(t, err)
}

func TestArticleRepoSlugExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)
	ctx := context.Background()

	a := newArticle("taken", true, false)
	require.NoError(t, repo.Create(ctx, a))

	exists, err := repo.SlugExists(ctx, "taken", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// the row itself is excluded when updating
	exists, err = repo.SlugExists(ctx, "taken", a.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SlugExists(ctx, "free", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}
