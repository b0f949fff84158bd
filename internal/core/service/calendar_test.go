package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

type CalendarServiceSuite struct {
	suite.Suite
	calendar *CalendarService
}

func TestCalendarService(t *testing.T) {
	suite.Run(t, new(CalendarServiceSuite))
}

func (suite *CalendarServiceSuite) SetupTest() {
	events := store.NewCollection(domain.SeedEvents(), func(e domain.Event) int { return e.ID })
	suite.calendar = NewCalendarService(events)
}

func (suite *CalendarServiceSuite) TestTodayEvents_SampleDate() {
	suite.calendar.now = func() time.Time {
		return time.Date(2024, 8, 22, 15, 0, 0, 0, time.Local)
	}

	events, date := suite.calendar.TodayEvents()

	assert.Equal(suite.T(), "2024-08-22", date)
	assert.Len(suite.T(), events, 2)
	assert.Equal(suite.T(), "Team Meeting", events[0].Title)
	assert.Equal(suite.T(), "Project Review", events[1].Title)
}

func (suite *CalendarServiceSuite) TestTodayEvents_NoMatches() {
	suite.calendar.now = func() time.Time {
		return time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	}

	events, date := suite.calendar.TodayEvents()

	assert.Equal(suite.T(), "2025-01-10", date)
	assert.NotNil(suite.T(), events)
	assert.Empty(suite.T(), events)
}

func (suite *CalendarServiceSuite) TestTodayEvents_ExplicitOffset() {
	suite.calendar.CreateEvent("Offsite", "2024-12-01T10:00:00+02:00", "", nil)
	suite.calendar.now = func() time.Time {
		return time.Date(2024, 12, 1, 23, 0, 0, 0, time.Local)
	}

	events, _ := suite.calendar.TodayEvents()

	assert.Len(suite.T(), events, 1)
	assert.Equal(suite.T(), "Offsite", events[0].Title)
}

func (suite *CalendarServiceSuite) TestTodayEvents_SkipsMalformedStart() {
	suite.calendar.CreateEvent("Broken", "not-a-timestamp", "", nil)
	suite.calendar.now = func() time.Time {
		return time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	}

	events, _ := suite.calendar.TodayEvents()

	assert.Empty(suite.T(), events)
}

func (suite *CalendarServiceSuite) TestCreateEvent_Defaults() {
	event := suite.calendar.CreateEvent("Sync", "2024-09-01T10:00:00Z", "", nil)

	assert.Equal(suite.T(), 4, event.ID)
	assert.Equal(suite.T(), "2024-09-01T10:00:00Z", event.End)
	assert.NotNil(suite.T(), event.Attendees)
	assert.Empty(suite.T(), event.Attendees)
}

func (suite *CalendarServiceSuite) TestGetEvent_NotFound() {
	_, err := suite.calendar.GetEvent(999)

	assert.ErrorIs(suite.T(), err, domain.ErrEventNotFound)
}
