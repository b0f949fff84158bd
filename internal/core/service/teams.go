package service

import (
	"time"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

type TeamsService struct {
	teams    *store.Collection[domain.Team]
	messages *store.Collection[domain.Message]
	meetings *store.Collection[domain.Meeting]
	now      func() time.Time
}

func NewTeamsService(
	teams *store.Collection[domain.Team],
	messages *store.Collection[domain.Message],
	meetings *store.Collection[domain.Meeting],
) *TeamsService {
	return &TeamsService{
		teams:    teams,
		messages: messages,
		meetings: meetings,
		now:      time.Now,
	}
}

func (s *TeamsService) ListTeams() []domain.Team {
	return s.teams.List()
}

func (s *TeamsService) GetTeam(id int) (domain.Team, error) {
	team, ok := s.teams.Get(id)
	if !ok {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	return team, nil
}

func (s *TeamsService) TeamMessages(teamID int) []domain.Message {
	return s.messages.Filter(func(m domain.Message) bool { return m.TeamID == teamID })
}

// PostMessage appends a message to the team channel. The team must exist; this
// is the only cross-collection check in the suite.
func (s *TeamsService) PostMessage(teamID int, from, message string) (domain.Message, error) {
	if _, ok := s.teams.Get(teamID); !ok {
		return domain.Message{}, domain.ErrTeamNotFound
	}

	if from == "" {
		from = defaultSender
	}
	timestamp := s.now().UTC().Format(time.RFC3339)

	return s.messages.Append(func(id int) domain.Message {
		return domain.Message{
			ID:        id,
			TeamID:    teamID,
			From:      from,
			Message:   message,
			Timestamp: timestamp,
			Type:      "text",
		}
	}), nil
}

func (s *TeamsService) ListMeetings() []domain.Meeting {
	return s.meetings.List()
}

func (s *TeamsService) Stats() domain.TeamsStats {
	teams := s.teams.List()

	members := make(map[string]struct{})
	for _, t := range teams {
		for _, m := range t.Members {
			members[m] = struct{}{}
		}
	}

	return domain.TeamsStats{
		TotalTeams:    len(teams),
		TotalMessages: s.messages.Len(),
		TotalMeetings: s.meetings.Len(),
		UniqueMembers: len(members),
		// Every team counts as active for the mock.
		ActiveTeams: len(teams),
	}
}
