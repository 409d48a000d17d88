package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

// ContactNotifier schedules the follow-up mails for a new message.
// Implementations must not block.
type ContactNotifier interface {
	Notify(msg models.ContactMessage)
}

type ContactMessageService interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type contactMessageService struct {
	messages pgrepo.ContactMessageRepository
	notifier ContactNotifier // nil disables notifications
}

func NewContactMessageService(messages pgrepo.ContactMessageRepository, notifier ContactNotifier) ContactMessageService {
	return &contactMessageService{messages: messages, notifier: notifier}
}

func (s *contactMessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "ContactMessageService.List"

	rows, err := s.messages.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list contact messages", err)
	}
	return rows, nil
}

// Create persists the message and schedules the notification mails.
// Scheduling is fire-and-forget, so the caller's response never waits on
// SMTP.
func (s *contactMessageService) Create(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	const op = "ContactMessageService.Create"

	if m.FirstName == "" || m.LastName == "" || m.Subject == "" || m.Message == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "firstName, lastName, subject, and message are required", nil)
	}
	if m.Email == "" || !strings.Contains(m.Email, "@") {
		return nil, utils.E(utils.CodeInvalidArgument, op, "a valid email is required", nil)
	}

	m.IsRead = false
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save contact message", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(*m)
	}
	return m, nil
}

func (s *contactMessageService) MarkRead(ctx context.Context, id uint) error {
	const op = "ContactMessageService.MarkRead"

	if err := s.messages.MarkRead(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Message not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to mark message as read", err)
	}
	return nil
}

func (s *contactMessageService) Delete(ctx context.Context, id uint) error {
	const op = "ContactMessageService.Delete"

	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Message not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete message", err)
	}
	return nil
}
