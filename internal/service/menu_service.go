package service

import (
	"context"
	"time"

	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/menu"
	"github.com/vgu-mess/mess-portal/internal/observability"
)

// MenuView is what the menu page shows for the session's current day.
type MenuView struct {
	Day          string
	Today        time.Time
	Meals        domain.Meals
	Announcement string
}

// MenuService renders menu lookups for a session.
type MenuService struct {
	provider *menu.Provider
	sessions *SessionService
	events   events.Dispatcher
	metrics  *observability.Metrics
}

// NewMenuService builds the service.
func NewMenuService(provider *menu.Provider, sessions *SessionService, dispatcher events.Dispatcher, metrics *observability.Metrics) *MenuService {
	return &MenuService{provider: provider, sessions: sessions, events: dispatcher, metrics: metrics}
}

// Current returns the menu for the session's selected day, defaulting to today.
func (s *MenuService) Current(ctx context.Context, session *domain.Session) (*MenuView, error) {
	day := s.sessions.CurrentDay(session)
	meals, err := s.provider.Menu(day)
	if err != nil {
		return nil, err
	}
	announcement, err := s.provider.Announcement(day)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMenuView(day)
	if s.events != nil {
		_ = s.events.Publish(ctx, events.Event{
			Type:         events.EventMenuViewed,
			UserEmail:    session.UserEmail,
			Announcement: announcement,
			Payload:      events.MenuViewedPayload{Day: day},
		})
	}

	return &MenuView{
		Day:          day,
		Today:        s.sessions.Now(),
		Meals:        meals,
		Announcement: announcement,
	}, nil
}

// Day returns the meals for a named day.
func (s *MenuService) Day(day string) (domain.Meals, error) {
	return s.provider.Menu(day)
}

// Week returns the weekly overview in Monday..Sunday order.
func (s *MenuService) Week() []domain.DayMenu {
	return s.provider.Week()
}
