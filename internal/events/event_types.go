package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserSignedUp    EventType = "user_signed_up"
	EventUserLoggedIn    EventType = "user_logged_in"
	EventUserLoggedOut   EventType = "user_logged_out"
	EventProfileUpdated  EventType = "profile_updated"
	EventReviewSubmitted EventType = "review_submitted"
	EventMenuViewed      EventType = "menu_viewed"
)

// AllEventTypes lists every type in declaration order.
var AllEventTypes = []EventType{
	EventUserSignedUp,
	EventUserLoggedIn,
	EventUserLoggedOut,
	EventProfileUpdated,
	EventReviewSubmitted,
	EventMenuViewed,
}

// Event represents a domain event emitted by services. Announcement is the
// feedback sentence shown or read out to the user.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	UserEmail    string      `json:"user_email,omitempty"`
	Announcement string      `json:"announcement"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload,omitempty"`
}

// ReviewSubmittedPayload payload.
type ReviewSubmittedPayload struct {
	ReviewID string `json:"review_id"`
	MenuDay  string `json:"menu_day"`
	Rating   int    `json:"rating"`
}

// MenuViewedPayload payload.
type MenuViewedPayload struct {
	Day string `json:"day"`
}
