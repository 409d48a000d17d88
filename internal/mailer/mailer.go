package mailer

import "github.com/yoockh/portfolio-backend/internal/models"

// Mailer delivers the two mails triggered by a contact submission: the
// owner notification and the acknowledgment back to the sender.
type Mailer interface {
	SendContactNotification(msg *models.ContactMessage) error
	SendAutoReply(toEmail, senderName string) error
}
