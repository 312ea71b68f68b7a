// Package menu serves the static weekly mess menu.
package menu

import (
	"fmt"
	"time"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

// Days lists the weekday names in canonical week order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var weekly = map[string]domain.Meals{
	"Monday":    {Breakfast: "Poha + Tea", Lunch: "Rajma Chawal", Dinner: "Roti + Aloo Matar"},
	"Tuesday":   {Breakfast: "Upma", Lunch: "Kadhi Chawal", Dinner: "Roti + Mix Veg"},
	"Wednesday": {Breakfast: "Idli Sambhar", Lunch: "Chole Bhature", Dinner: "Paneer + Roti"},
	"Thursday":  {Breakfast: "Bread Butter", Lunch: "Dal Tadka", Dinner: "Poori + Aloo"},
	"Friday":    {Breakfast: "Aloo Paratha", Lunch: "Kadhi Pakoda", Dinner: "Veg Biryani"},
	"Saturday":  {Breakfast: "Chole Kulche", Lunch: "Fried Rice", Dinner: "Khichdi"},
	"Sunday":    {Breakfast: "Halwa Puri", Lunch: "Special Thali", Dinner: "Pulao"},
}

// Provider is a read-only lookup over the weekly menu.
type Provider struct{}

// NewProvider returns the menu provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Menu returns the meals for an exact weekday name.
func (p *Provider) Menu(day string) (domain.Meals, error) {
	meals, ok := weekly[day]
	if !ok {
		return domain.Meals{}, domain.ErrUnknownDay
	}
	return meals, nil
}

// Week returns every day in Monday..Sunday order.
func (p *Provider) Week() []domain.DayMenu {
	out := make([]domain.DayMenu, 0, len(Days))
	for _, day := range Days {
		out = append(out, domain.DayMenu{Day: day, Meals: weekly[day]})
	}
	return out
}

// IsDay reports whether day is one of the seven recognized names.
func (p *Provider) IsDay(day string) bool {
	_, ok := weekly[day]
	return ok
}

// Announcement is the sentence read out when a day's menu is displayed.
func (p *Provider) Announcement(day string) (string, error) {
	meals, err := p.Menu(day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Today's menu is %s. Breakfast: %s, Lunch: %s, Dinner: %s",
		day, meals.Breakfast, meals.Lunch, meals.Dinner), nil
}

// DayOf returns the weekday name used as a menu key for t.
func DayOf(t time.Time) string {
	return t.Weekday().String()
}
