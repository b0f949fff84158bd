package domain

type Team struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Created string   `json:"created"`
}

type Message struct {
	ID        int    `json:"id"`
	TeamID    int    `json:"team_id"`
	From      string `json:"from"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

type Meeting struct {
	ID           int      `json:"id"`
	TeamID       int      `json:"team_id"`
	Title        string   `json:"title"`
	Start        string   `json:"start"`
	Duration     int      `json:"duration"`
	Participants []string `json:"participants"`
}

type TeamsStats struct {
	TotalTeams    int `json:"total_teams"`
	TotalMessages int `json:"total_messages"`
	TotalMeetings int `json:"total_meetings"`
	UniqueMembers int `json:"unique_members"`
	ActiveTeams   int `json:"active_teams"`
}

func SeedTeams() []Team {
	return []Team{
		{
			ID:      1,
			Name:    "Development Team",
			Members: []string{"john.doe@company.com", "jane.smith@company.com", "bob.johnson@company.com"},
			Created: "2024-01-15T10:00:00Z",
		},
		{
			ID:      2,
			Name:    "Marketing Team",
			Members: []string{"alice.brown@company.com", "jane.smith@company.com"},
			Created: "2024-02-01T14:30:00Z",
		},
	}
}

func SeedMessages() []Message {
	return []Message{
		{
			ID:        1,
			TeamID:    1,
			From:      "john.doe@company.com",
			Message:   "Good morning everyone! Ready for today's sprint review?",
			Timestamp: "2024-08-21T08:30:00Z",
			Type:      "text",
		},
		{
			ID:        2,
			TeamID:    1,
			From:      "jane.smith@company.com",
			Message:   "Yes! I've prepared the demo for the new features.",
			Timestamp: "2024-08-21T08:32:00Z",
			Type:      "text",
		},
		{
			ID:        3,
			TeamID:    2,
			From:      "alice.brown@company.com",
			Message:   "The new campaign metrics look promising!",
			Timestamp: "2024-08-21T10:15:00Z",
			Type:      "text",
		},
	}
}

func SeedMeetings() []Meeting {
	return []Meeting{
		{
			ID:           1,
			TeamID:       1,
			Title:        "Daily Standup",
			Start:        "2024-08-22T09:00:00Z",
			Duration:     30,
			Participants: []string{"john.doe@company.com", "jane.smith@company.com"},
		},
	}
}
