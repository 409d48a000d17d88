package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
)

func TestExperienceRepoImagesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepo(db)
	ctx := context.Background()

	created := &models.Experience{
		Title:        "Backend Engineer",
		Company:      "Acme",
		StartDate:    "2022-01",
		Technologies: "Go,PostgreSQL,Redis",
		Images:       []string{"/uploads/a.png", "/uploads/b.png"},
	}
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	// order must survive the round trip
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png"}, []string(got.Images))
	assert.Nil(t, got.EndDate)

	got.Images = append(got.Images, "/uploads/c.png")
	end := "2024-06"
	got.EndDate = &end
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, again.Images, 3)
	require.NotNil(t, again.EndDate)
	assert.Equal(t, "2024-06", *again.EndDate)
}

func TestExperienceRepoListOrdersByStartDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Experience{Title: "Second", Company: "B", StartDate: "2023-05"}))
	require.NoError(t, repo.Create(ctx, &models.Experience{Title: "First", Company: "A", StartDate: "2020-01"}))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[0].Title)
	assert.Equal(t, "Second", rows[1].Title)
}
