package port

import "contoso.com/officemock/internal/core/domain"

type Directory interface {
	ListUsers() []domain.User
	GetUser(id int) (domain.User, error)
	CreateUser(name, email, role string) domain.User
}

type Calendar interface {
	ListEvents() []domain.Event
	GetEvent(id int) (domain.Event, error)
	TodayEvents() (events []domain.Event, date string)
	CreateEvent(title, start, end string, attendees []string) domain.Event
}

type Mailbox interface {
	ListEmails() (emails []domain.Email, unread int)
	GetEmail(id int) (domain.Email, error)
	UnreadEmails() []domain.Email
	ImportantEmails() []domain.Email
	SendEmail(from, to, subject, body string) domain.Email
	Stats() domain.MailboxStats
}

type Teams interface {
	ListTeams() []domain.Team
	GetTeam(id int) (domain.Team, error)
	TeamMessages(teamID int) []domain.Message
	PostMessage(teamID int, from, message string) (domain.Message, error)
	ListMeetings() []domain.Meeting
	Stats() domain.TeamsStats
}

type Drive interface {
	ListFiles() []domain.File
	GetFile(id int) (domain.File, error)
	ListFolders() []domain.Folder
	SharedFiles() []domain.File
	StorageInfo() domain.StorageInfo
}
