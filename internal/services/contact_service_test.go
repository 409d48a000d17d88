package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

type recordingNotifier struct {
	mu       sync.Mutex
	notified []models.ContactMessage
}

func (n *recordingNotifier) Notify(msg models.ContactMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = append(n.notified, msg)
}

func validMessage() *models.ContactMessage {
	return &models.ContactMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "Hello",
		Message:   "Hi there",
	}
}

func TestContactServiceCreatePersistsBeforeNotify(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewContactMessageService(pgrepo.NewContactMessageRepo(db), notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, validMessage())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.IsRead)

	// the notifier sees the persisted row, id included
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, created.ID, notifier.notified[0].ID)
	assert.Equal(t, "jane@example.com", notifier.notified[0].Email)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsRead)
}

func TestContactServiceCreateValidates(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewContactMessageService(pgrepo.NewContactMessageRepo(db), notifier)
	ctx := context.Background()

	bad := validMessage()
	bad.Email = "not-an-email"
	_, err := svc.Create(ctx, bad)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	empty := validMessage()
	empty.Message = ""
	_, err = svc.Create(ctx, empty)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	// nothing was persisted or notified
	rows, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, notifier.notified)
}

func TestContactServiceNilNotifier(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactMessageService(pgrepo.NewContactMessageRepo(db), nil)

	_, err := svc.Create(context.Background(), validMessage())
	assert.NoError(t, err)
}

func TestContactServiceMarkReadAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactMessageService(pgrepo.NewContactMessageRepo(db), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validMessage())
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, created.ID))

	err = svc.MarkRead(ctx, 999)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	require.NoError(t, svc.Delete(ctx, created.ID))
	err = svc.Delete(ctx, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
