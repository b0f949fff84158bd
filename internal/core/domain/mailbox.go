package domain

// Email covers both received mailbox records and sent mail. Received records
// carry received/read/important; sent records carry sent/status instead.
type Email struct {
	ID        int    `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Received  string `json:"received,omitempty"`
	Read      bool   `json:"read"`
	Important bool   `json:"important"`
	Sent      string `json:"sent,omitempty"`
	Status    string `json:"status,omitempty"`
}

type MailboxStats struct {
	TotalEmails     int `json:"total_emails"`
	UnreadEmails    int `json:"unread_emails"`
	ImportantEmails int `json:"important_emails"`
	ReadEmails      int `json:"read_emails"`
}

// SeedEmails returns the fixed sample mailbox loaded at startup.
func SeedEmails() []Email {
	return []Email{
		{
			ID:        1,
			From:      "client@example.com",
			To:        "john.doe@company.com",
			Subject:   "Project Update Required",
			Body:      "Please provide an update on the current project status.",
			Received:  "2024-08-21T09:15:00Z",
			Read:      false,
			Important: true,
		},
		{
			ID:        2,
			From:      "hr@company.com",
			To:        "all@company.com",
			Subject:   "Team Building Event Next Week",
			Body:      "Don't forget about our team building event scheduled for next Friday.",
			Received:  "2024-08-21T11:30:00Z",
			Read:      true,
			Important: false,
		},
		{
			ID:        3,
			From:      "vendor@supplier.com",
			To:        "alice.brown@company.com",
			Subject:   "Invoice #12345",
			Body:      "Please find attached invoice for your recent order.",
			Received:  "2024-08-21T14:20:00Z",
			Read:      false,
			Important: false,
		},
	}
}
