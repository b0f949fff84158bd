package service

import (
	"time"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

const defaultSender = "user@company.com"

type MailboxService struct {
	emails *store.Collection[domain.Email]
	now    func() time.Time
}

func NewMailboxService(emails *store.Collection[domain.Email]) *MailboxService {
	return &MailboxService{emails: emails, now: time.Now}
}

func (s *MailboxService) ListEmails() ([]domain.Email, int) {
	emails := s.emails.List()
	unread := 0
	for _, e := range emails {
		if !e.Read {
			unread++
		}
	}
	return emails, unread
}

func (s *MailboxService) GetEmail(id int) (domain.Email, error) {
	email, ok := s.emails.Get(id)
	if !ok {
		return domain.Email{}, domain.ErrEmailNotFound
	}
	return email, nil
}

func (s *MailboxService) UnreadEmails() []domain.Email {
	return s.emails.Filter(func(e domain.Email) bool { return !e.Read })
}

func (s *MailboxService) ImportantEmails() []domain.Email {
	return s.emails.Filter(func(e domain.Email) bool { return e.Important })
}

// SendEmail appends the outgoing mail to the mailbox with a sent timestamp and
// status instead of the received/read fields seeded records carry.
func (s *MailboxService) SendEmail(from, to, subject, body string) domain.Email {
	if from == "" {
		from = defaultSender
	}
	sent := s.now().UTC().Format(time.RFC3339)
	return s.emails.Append(func(id int) domain.Email {
		return domain.Email{
			ID:      id,
			From:    from,
			To:      to,
			Subject: subject,
			Body:    body,
			Sent:    sent,
			Status:  "sent",
		}
	})
}

func (s *MailboxService) Stats() domain.MailboxStats {
	emails := s.emails.List()

	stats := domain.MailboxStats{TotalEmails: len(emails)}
	for _, e := range emails {
		if !e.Read {
			stats.UnreadEmails++
		}
		if e.Important {
			stats.ImportantEmails++
		}
	}
	stats.ReadEmails = stats.TotalEmails - stats.UnreadEmails
	return stats
}
