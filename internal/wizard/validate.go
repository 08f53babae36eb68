package wizard

import (
	"errors"
	"regexp"
	"strings"
)

// Option lists offered on the budget and preferences steps. The server never
// enforces these; free strings are accepted end to end.
var (
	ExperienceOptions = []string{
		"Nature and landscapes",
		"Food and wine",
		"Relax",
		"Culture and city",
		"Adventure",
	}

	FlightOptions = []string{
		"Avoid early / late flights",
		"Minimize stopovers",
		OptSpecificAirline,
	}

	AccommodationOptions = []string{
		"Convenient hours",
		"Minimize stopovers",
		OptSpecificHotelBrand,
	}
)

// Selecting either of these implies a required companion free-text field.
const (
	OptSpecificAirline    = "Specific airline"
	OptSpecificHotelBrand = "Specific hotel brand"
)

var (
	ErrUnknownStep      = errors.New("unknown wizard step")
	ErrStepNotCompleted = errors.New("step not completed yet")
	ErrAlreadySubmitted = errors.New("questionnaire already submitted")
	ErrSubmitInFlight   = errors.New("a submission is already pending")
	ErrNotOnFinalStep   = errors.New("submit is only reachable from the final step")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRegex = regexp.MustCompile("^[\\w.!#$%&'*+/=?^`{|}~-]+@[\\w-]+(\\.[\\w-]+)+$")
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// ValidateStep runs the pure per-step predicate. Steps without constraints
// (Budget, Submit) always pass.
func (w *Wizard) ValidateStep(step int) []FieldError {
	f := w.Form
	var errs []FieldError

	switch step {
	case StepBasics:
		if strings.TrimSpace(f.Location) == "" {
			errs = append(errs, FieldError{"location", "Please select a destination"})
		}
		if f.TripType == "" {
			errs = append(errs, FieldError{"tripType", "Please select a trip type"})
		}

	case StepItinerary:
		if f.KnowsExactDates {
			if f.StartDate == nil {
				errs = append(errs, FieldError{"startDate", "Please select a start date"})
			}
			if f.EndDate == nil {
				errs = append(errs, FieldError{"endDate", "Please select an end date"})
			} else if w.datesOutOfOrder() {
				errs = append(errs, FieldError{"endDate", "End date must be after the start date"})
			}
		} else {
			if f.EstimatedDepartureDate == nil {
				errs = append(errs, FieldError{"estimatedDepartureDate", "Please select an estimated departure"})
			}
			if f.EstimatedDurationDays < 1 {
				errs = append(errs, FieldError{"estimatedDurationDays", "Please enter a duration of at least 1 day"})
			}
		}
		if f.Adults < 1 {
			errs = append(errs, FieldError{"adults", "At least 1 adult is required"})
		}

	case StepPreferences:
		if contains(f.FlightPrefs, OptSpecificAirline) && strings.TrimSpace(f.FlightCompany) == "" {
			errs = append(errs, FieldError{"flightCompany", "Please provide the airline"})
		}
		if contains(f.AccommodationPrefs, OptSpecificHotelBrand) && strings.TrimSpace(f.AccommodationCompany) == "" {
			errs = append(errs, FieldError{"accommodationCompany", "Please provide the hotel or brand"})
		}

	case StepContact:
		if w.SignedIn() {
			return nil
		}
		name := strings.TrimSpace(f.ContactName)
		email := strings.TrimSpace(f.ContactEmail)
		phone := strings.TrimSpace(f.ContactPhone)
		if name == "" {
			errs = append(errs, FieldError{"contactName", "Your name is required"})
		}
		if email == "" {
			errs = append(errs, FieldError{"contactEmail", "Email is required"})
		} else if !emailRegex.MatchString(email) {
			errs = append(errs, FieldError{"contactEmail", "Please enter a valid email"})
		}
		if phone != "" && !phoneRegex.MatchString(phone) {
			errs = append(errs, FieldError{"contactPhone", "Please enter a valid phone number"})
		}
	}

	return errs
}

// datesOutOfOrder reports an exact-date pair where the end is not strictly
// after the start.
func (w *Wizard) datesOutOfOrder() bool {
	f := w.Form
	return f.KnowsExactDates && f.StartDate != nil && f.EndDate != nil && !f.EndDate.After(*f.StartDate)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
