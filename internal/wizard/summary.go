package wizard

import (
	"fmt"
	"strings"
	"time"
)

type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const summaryDateLayout = "January 2, 2006"

// Summary assembles the human-readable review shown on the final step. This
// is a presentation transform only; nothing here is stored.
func (w *Wizard) Summary() []SummaryRow {
	f := w.Form

	dates := "—"
	switch {
	case f.KnowsExactDates && f.StartDate != nil && f.EndDate != nil:
		dates = fmt.Sprintf("%s – %s",
			f.StartDate.Format(summaryDateLayout),
			f.EndDate.Format(summaryDateLayout))
	case !f.KnowsExactDates && f.EstimatedDepartureDate != nil:
		duration := "—"
		if f.EstimatedDurationDays >= 1 {
			duration = fmt.Sprintf("%d %s", f.EstimatedDurationDays, pluralize(f.EstimatedDurationDays, "day", "days"))
		}
		dates = fmt.Sprintf("Around %s for ~%s", f.EstimatedDepartureDate.Format(summaryDateLayout), duration)
	}

	tripType := "—"
	if label, ok := TripTypeLabels[f.TripType]; ok {
		tripType = label
	}

	return []SummaryRow{
		{"Destination", orDash(f.Location)},
		{"Dates", dates},
		{"Trip type", tripType},
		{"Travelers", w.Travelers()},
		{"Budget", "€" + groupThousands(f.BudgetAmount)},
		{"Experiences", joinOrDash(f.Experiences, "")},
		{"Flights", joinOrDash(f.FlightPrefs, companySuffix("Airline", f.FlightCompany))},
		{"Accommodations", joinOrDash(f.AccommodationPrefs, companySuffix("Hotel", f.AccommodationCompany))},
		{"Notes", orDash(f.OtherDetails)},
		{"Contact email", orDash(strings.TrimSpace(f.ContactEmail))},
	}
}

// Travelers renders the party with the correct singular/plural noun forms,
// e.g. "2 adults, 1 child".
func (w *Wizard) Travelers() string {
	f := w.Form
	out := fmt.Sprintf("%d %s", f.Adults, pluralize(f.Adults, "adult", "adults"))
	if f.Children > 0 {
		out += fmt.Sprintf(", %d %s", f.Children, pluralize(f.Children, "child", "children"))
	}
	if f.Infants > 0 {
		out += fmt.Sprintf(", %d %s", f.Infants, pluralize(f.Infants, "infant", "infants"))
	}
	return out
}

// FormatDateRange renders a date pair the way the itinerary step displays it.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format(summaryDateLayout), end.Format(summaryDateLayout))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func joinOrDash(values []string, suffix string) string {
	if len(values) == 0 {
		return "—"
	}
	return strings.Join(values, ", ") + suffix
}

func companySuffix(kind, company string) string {
	if strings.TrimSpace(company) == "" {
		return ""
	}
	return fmt.Sprintf(" (%s: %s)", kind, strings.TrimSpace(company))
}

func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
