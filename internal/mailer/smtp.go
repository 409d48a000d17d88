package mailer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/yoockh/portfolio-backend/internal/models"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	owner  string // receives contact notifications
}

// NewSMTPMailerFromEnv returns nil when SMTP is not configured; mail is
// then skipped entirely, it never blocks the contact flow.
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	if host == "" || user == "" {
		return nil
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	owner := os.Getenv("CONTACT_EMAIL")
	if owner == "" {
		owner = user
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		owner:  owner,
	}
}

func (m *SMTPMailer) SendContactNotification(msg *models.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.owner)
	mail.SetHeader("Subject", fmt.Sprintf("[Portfolio Contact] %s", msg.Subject))
	mail.SetBody("text/html", fmt.Sprintf(
		`<h2>New Message from Portfolio Website</h2>
<p><strong>Name:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<h3>Message:</h3>
<p>%s</p>
<hr>
<p>This message was sent from your portfolio website contact form.</p>
<p>Time: %s</p>`,
		msg.FirstName, msg.LastName, msg.Email, msg.Subject, msg.Message,
		time.Now().UTC().Format(time.RFC1123),
	))
	return m.dialer.DialAndSend(mail)
}

func (m *SMTPMailer) SendAutoReply(toEmail, senderName string) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", toEmail)
	mail.SetHeader("Subject", "Thank you for your message - Portfolio Website")
	mail.SetBody("text/html", fmt.Sprintf(
		`<h2>Thank You For Your Message</h2>
<p>Dear %s,</p>
<p>Thank you for contacting me through my portfolio website. I have received your message and will respond soon.</p>
<p>I usually respond within 24-48 business hours.</p>`,
		senderName,
	))
	return m.dialer.DialAndSend(mail)
}
