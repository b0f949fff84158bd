package domain

type Event struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Attendees []string `json:"attendees"`
}

// SeedEvents returns the fixed sample calendar loaded at startup.
func SeedEvents() []Event {
	return []Event{
		{
			ID:        1,
			Title:     "Team Meeting",
			Start:     "2024-08-22T09:00:00Z",
			End:       "2024-08-22T10:00:00Z",
			Attendees: []string{"john.doe@company.com", "jane.smith@company.com"},
		},
		{
			ID:        2,
			Title:     "Project Review",
			Start:     "2024-08-22T14:00:00Z",
			End:       "2024-08-22T15:30:00Z",
			Attendees: []string{"alice.brown@company.com", "bob.johnson@company.com"},
		},
		{
			ID:        3,
			Title:     "Client Presentation",
			Start:     "2024-08-23T11:00:00Z",
			End:       "2024-08-23T12:00:00Z",
			Attendees: []string{"john.doe@company.com", "alice.brown@company.com"},
		},
	}
}
