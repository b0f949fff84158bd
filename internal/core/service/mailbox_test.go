package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

type MailboxServiceSuite struct {
	suite.Suite
	mailbox *MailboxService
}

func TestMailboxService(t *testing.T) {
	suite.Run(t, new(MailboxServiceSuite))
}

func (suite *MailboxServiceSuite) SetupTest() {
	emails := store.NewCollection(domain.SeedEmails(), func(e domain.Email) int { return e.ID })
	suite.mailbox = NewMailboxService(emails)
}

func (suite *MailboxServiceSuite) TestListEmails() {
	emails, unread := suite.mailbox.ListEmails()

	assert.Len(suite.T(), emails, 3)
	assert.Equal(suite.T(), 2, unread)
}

func (suite *MailboxServiceSuite) TestUnreadEmails() {
	emails := suite.mailbox.UnreadEmails()

	assert.Len(suite.T(), emails, 2)
	for _, e := range emails {
		assert.False(suite.T(), e.Read)
	}
}

func (suite *MailboxServiceSuite) TestImportantEmails() {
	emails := suite.mailbox.ImportantEmails()

	assert.Len(suite.T(), emails, 1)
	assert.Equal(suite.T(), "Project Update Required", emails[0].Subject)
}

func (suite *MailboxServiceSuite) TestGetEmail_NotFound() {
	_, err := suite.mailbox.GetEmail(999)

	assert.ErrorIs(suite.T(), err, domain.ErrEmailNotFound)
}

func (suite *MailboxServiceSuite) TestSendEmail_Defaults() {
	suite.mailbox.now = func() time.Time {
		return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	}

	email := suite.mailbox.SendEmail("", "jane.smith@company.com", "Hello", "")

	assert.Equal(suite.T(), 4, email.ID)
	assert.Equal(suite.T(), "user@company.com", email.From)
	assert.Equal(suite.T(), "sent", email.Status)
	assert.Equal(suite.T(), "2024-09-01T12:00:00Z", email.Sent)
	assert.Empty(suite.T(), email.Received)

	emails, _ := suite.mailbox.ListEmails()
	assert.Len(suite.T(), emails, 4)
}

func (suite *MailboxServiceSuite) TestSendEmail_IDsIncrease() {
	first := suite.mailbox.SendEmail("a@b.c", "x@y.z", "One", "")
	second := suite.mailbox.SendEmail("a@b.c", "x@y.z", "One", "")

	assert.Equal(suite.T(), first.ID+1, second.ID)
}

func (suite *MailboxServiceSuite) TestStats() {
	stats := suite.mailbox.Stats()

	assert.Equal(suite.T(), domain.MailboxStats{
		TotalEmails:     3,
		UnreadEmails:    2,
		ImportantEmails: 1,
		ReadEmails:      1,
	}, stats)
}
