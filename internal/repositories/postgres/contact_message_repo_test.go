package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

func TestContactMessageRepoMarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepo(db)
	ctx := context.Background()

	msg := &models.ContactMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
	}
	require.NoError(t, repo.Create(ctx, msg))

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)

	require.NoError(t, repo.MarkRead(ctx, msg.ID))

	got, err = repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestContactMessageRepoMarkReadMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactMessageRepo(db)

	err := repo.MarkRead(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
