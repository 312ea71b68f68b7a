package dto

import "github.com/vgu-mess/mess-portal/internal/domain"

// SelectDayRequest picks the menu day for the session.
type SelectDayRequest struct {
	Day string `json:"day" form:"day"`
}

// MenuResponse is the menu for one day.
type MenuResponse struct {
	Day          string       `json:"day"`
	Date         string       `json:"date,omitempty"`
	Meals        domain.Meals `json:"meals"`
	Announcement string       `json:"announcement,omitempty"`
}
