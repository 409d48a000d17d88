package workers

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/portfolio-backend/internal/mailer"
	"github.com/yoockh/portfolio-backend/internal/models"
)

const (
	JobContactNotification = "contact_notification"
	JobAutoReply           = "auto_reply"
)

type MailJob struct {
	Kind    string
	Message models.ContactMessage
}

// MailWorkerPool drains a bounded in-process queue of mail jobs. Delivery
// is best-effort: a failed send is logged and dropped, never retried and
// never surfaced to the request that enqueued it.
type MailWorkerPool struct {
	Mailer     mailer.Mailer // nil means mail is not configured
	Logger     *logrus.Logger
	NumWorkers int
	QueueSize  int

	jobs chan MailJob
}

func (p *MailWorkerPool) Start(ctx context.Context) error {
	if p.Logger == nil {
		return errors.New("MailWorkerPool missing dependency: Logger must be set")
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.QueueSize <= 0 {
		p.QueueSize = 64
	}
	p.jobs = make(chan MailJob, p.QueueSize)

	for i := 0; i < p.NumWorkers; i++ {
		go p.run(ctx)
	}
	return nil
}

// Enqueue never blocks; when the queue is full the job is dropped with a
// warning, keeping the contact response independent of mail throughput.
func (p *MailWorkerPool) Enqueue(job MailJob) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		p.Logger.WithField("kind", job.Kind).Warn("mail queue full, dropping job")
		return false
	}
}

// Notify schedules both mails for a new contact message.
func (p *MailWorkerPool) Notify(msg models.ContactMessage) {
	p.Enqueue(MailJob{Kind: JobContactNotification, Message: msg})
	p.Enqueue(MailJob{Kind: JobAutoReply, Message: msg})
}

func (p *MailWorkerPool) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			p.handle(job)
		}
	}
}

func (p *MailWorkerPool) handle(job MailJob) {
	entry := p.Logger.WithFields(logrus.Fields{
		"kind":       job.Kind,
		"message_id": job.Message.ID,
	})

	if p.Mailer == nil {
		entry.Debug("mail not configured, skipping")
		return
	}

	var err error
	switch job.Kind {
	case JobContactNotification:
		err = p.Mailer.SendContactNotification(&job.Message)
	case JobAutoReply:
		err = p.Mailer.SendAutoReply(job.Message.Email, job.Message.FirstName)
	default:
		entry.Warn("unknown mail job kind")
		return
	}

	if err != nil {
		entry.WithError(err).Error("mail delivery failed")
		return
	}
	entry.Info("mail delivered")
}
