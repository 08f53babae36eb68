package request_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateQuestionnaireRequest is the wizard's final submission payload.
// Dates arrive as RFC 3339 strings; numeric and boolean fields are coerced
// from strings or numbers so direct API callers get the same treatment as
// the wizard.
type CreateQuestionnaireRequest struct {
	Location        string   `json:"location"`
	KnowsExactDates FlexBool `json:"knowsExactDates"`

	StartDate              *time.Time `json:"startDate"`
	EndDate                *time.Time `json:"endDate"`
	EstimatedDepartureDate *time.Time `json:"estimatedDepartureDate"`
	EstimatedDurationDays  *FlexInt   `json:"estimatedDurationDays"`

	TripType string  `json:"tripType"`
	Adults   FlexInt `json:"adults"`
	Children FlexInt `json:"children"`
	Infants  FlexInt `json:"infants"`

	BudgetAmount FlexInt `json:"budgetAmount"`

	Experiences          []string `json:"experiences"`
	FlightPrefs          []string `json:"flightPrefs"`
	FlightCompany        *string  `json:"flightCompany"`
	AccommodationPrefs   []string `json:"accommodationPrefs"`
	AccommodationCompany *string  `json:"accommodationCompany"`

	OtherDetails *string `json:"otherDetails"`

	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`

	UserID *uuid.UUID `json:"userId"`
}

// Normalize trims string fields and turns blank optional strings into nulls
// before the payload is validated and stored.
func (r *CreateQuestionnaireRequest) Normalize() {
	r.Location = strings.TrimSpace(r.Location)
	r.TripType = strings.TrimSpace(r.TripType)
	r.ContactName = strings.TrimSpace(r.ContactName)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)

	r.FlightCompany = trimToNil(r.FlightCompany)
	r.AccommodationCompany = trimToNil(r.AccommodationCompany)
	r.OtherDetails = trimToNil(r.OtherDetails)
	r.ContactPhone = trimToNil(r.ContactPhone)

	if r.Experiences == nil {
		r.Experiences = []string{}
	}
	if r.FlightPrefs == nil {
		r.FlightPrefs = []string{}
	}
	if r.AccommodationPrefs == nil {
		r.AccommodationPrefs = []string{}
	}

	// Null out the inactive date branch so exactly one mode is stored.
	if bool(r.KnowsExactDates) {
		r.EstimatedDepartureDate = nil
		r.EstimatedDurationDays = nil
	} else {
		r.StartDate = nil
		r.EndDate = nil
	}
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
