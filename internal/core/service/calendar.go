package service

import (
	"strings"
	"time"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

// eventStartLayout only accepts an explicit numeric offset; a literal Z suffix
// is rewritten to +00:00 before parsing. The comparison in TodayEvents then
// uses the parsed wall-clock date against the server's local date, with no
// reconciliation between the two zones. Known limitation, kept on purpose.
const eventStartLayout = "2006-01-02T15:04:05-07:00"

type CalendarService struct {
	events *store.Collection[domain.Event]
	now    func() time.Time
}

func NewCalendarService(events *store.Collection[domain.Event]) *CalendarService {
	return &CalendarService{events: events, now: time.Now}
}

func (s *CalendarService) ListEvents() []domain.Event {
	return s.events.List()
}

func (s *CalendarService) GetEvent(id int) (domain.Event, error) {
	event, ok := s.events.Get(id)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

// TodayEvents returns the events whose start date matches the current local
// date, along with that date as YYYY-MM-DD. Events with an unparseable start
// are skipped.
func (s *CalendarService) TodayEvents() ([]domain.Event, string) {
	today := s.now()
	y, m, d := today.Date()

	events := s.events.Filter(func(e domain.Event) bool {
		start := strings.Replace(e.Start, "Z", "+00:00", 1)
		t, err := time.Parse(eventStartLayout, start)
		if err != nil {
			return false
		}
		ey, em, ed := t.Date()
		return ey == y && em == m && ed == d
	})

	return events, today.Format("2006-01-02")
}

func (s *CalendarService) CreateEvent(title, start, end string, attendees []string) domain.Event {
	if end == "" {
		end = start
	}
	if attendees == nil {
		attendees = []string{}
	}
	return s.events.Append(func(id int) domain.Event {
		return domain.Event{ID: id, Title: title, Start: start, End: end, Attendees: attendees}
	})
}
