package services

import (
	"fmt"
	"strings"

	"mcstudio/internal/models/db_models"
	"mcstudio/internal/wizard"
)

const emailDateLayout = "January 2, 2006"

// summaryText renders a field-by-field plain-text summary of a submitted
// response, embedded verbatim in both notification emails.
func summaryText(r *db_models.QuestionnaireResponse) string {
	lines := []string{
		"Destination: " + r.Location,
		"Dates: " + dateLine(r),
		"Trip type: " + tripTypeLabel(r.TripType),
		"Travelers: " + travelersLine(r),
		fmt.Sprintf("Budget: €%d", r.BudgetAmount),
		"Experiences: " + listLine(r.Experiences, "", ""),
		"Flights: " + listLine(r.FlightPrefs, "Airline", deref(r.FlightCompany)),
		"Accommodations: " + listLine(r.AccommodationPrefs, "Hotel", deref(r.AccommodationCompany)),
		"Notes: " + orNone(deref(r.OtherDetails)),
		"Name: " + r.ContactName,
		"Email: " + r.ContactEmail,
		"Phone: " + orNone(deref(r.ContactPhone)),
	}
	return strings.Join(lines, "\n")
}

func operatorEmail(r *db_models.QuestionnaireResponse, summary string) (subject, body string) {
	subject = fmt.Sprintf("New trip request from %s: %s to %s",
		r.ContactName, tripTypeLabel(r.TripType), r.Location)
	body = fmt.Sprintf("A new trip request was submitted.\n\n%s\n\nResponse ID: %s", summary, r.ID)
	return subject, body
}

func customerEmail(r *db_models.QuestionnaireResponse, summary, appName string) (subject, body string) {
	subject = fmt.Sprintf("We received your trip request to %s", r.Location)
	body = fmt.Sprintf(
		"Hi %s,\n\nThank you for your request. We'll craft a personalized trip proposal and get back to you shortly.\n\nHere is what you told us:\n\n%s\n\n%s",
		r.ContactName, summary, appName)
	return subject, body
}

func dateLine(r *db_models.QuestionnaireResponse) string {
	if r.KnowsExactDates && r.StartDate != nil && r.EndDate != nil {
		return fmt.Sprintf("%s to %s",
			r.StartDate.Format(emailDateLayout), r.EndDate.Format(emailDateLayout))
	}
	if r.EstimatedDepartureDate != nil && r.EstimatedDurationDays != nil {
		unit := "days"
		if *r.EstimatedDurationDays == 1 {
			unit = "day"
		}
		return fmt.Sprintf("around %s for ~%d %s",
			r.EstimatedDepartureDate.Format(emailDateLayout), *r.EstimatedDurationDays, unit)
	}
	return "not specified"
}

func travelersLine(r *db_models.QuestionnaireResponse) string {
	out := fmt.Sprintf("%d %s", r.Adults, plural(r.Adults, "adult", "adults"))
	if r.Children > 0 {
		out += fmt.Sprintf(", %d %s", r.Children, plural(r.Children, "child", "children"))
	}
	if r.Infants > 0 {
		out += fmt.Sprintf(", %d %s", r.Infants, plural(r.Infants, "infant", "infants"))
	}
	return out
}

func tripTypeLabel(tripType string) string {
	if label, ok := wizard.TripTypeLabels[wizard.TripType(tripType)]; ok {
		return label
	}
	return tripType
}

func listLine(values []string, kind, company string) string {
	if len(values) == 0 {
		return "none"
	}
	line := strings.Join(values, ", ")
	if company != "" {
		line += fmt.Sprintf(" (%s: %s)", kind, company)
	}
	return line
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
