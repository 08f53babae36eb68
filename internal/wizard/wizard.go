package wizard

import (
	"time"

	"github.com/google/uuid"

	"mcstudio/internal/models/request_models"
)

// TripType is the shape of the traveling party.
type TripType string

const (
	TripIndividual TripType = "individual"
	TripCouple     TripType = "couple"
	TripFamily     TripType = "family"
	TripGroup      TripType = "group"
)

// TripTypeLabels maps trip types to their display labels, in the order they
// are offered.
var TripTypeLabels = map[TripType]string{
	TripIndividual: "Individual travel",
	TripCouple:     "Couple's trip",
	TripFamily:     "Family trip",
	TripGroup:      "Group trip",
}

func IsTripType(value string) bool {
	_, ok := TripTypeLabels[TripType(value)]
	return ok
}

// The six wizard steps, in order.
const (
	StepBasics = iota + 1
	StepItinerary
	StepBudget
	StepPreferences
	StepContact
	StepSubmit

	TotalSteps = StepSubmit
)

var stepLabels = map[int]string{
	StepBasics:      "Basics",
	StepItinerary:   "Itinerary",
	StepBudget:      "Budget",
	StepPreferences: "Preferences",
	StepContact:     "Contact",
	StepSubmit:      "Submit",
}

func StepLabel(step int) string {
	if label, ok := stepLabels[step]; ok {
		return label
	}
	return "Details"
}

// Form holds every field collected across the six steps.
type Form struct {
	Location string `json:"location"`

	KnowsExactDates        bool       `json:"knowsExactDates"`
	StartDate              *time.Time `json:"startDate"`
	EndDate                *time.Time `json:"endDate"`
	EstimatedDepartureDate *time.Time `json:"estimatedDepartureDate"`
	EstimatedDurationDays  int        `json:"estimatedDurationDays"`

	TripType TripType `json:"tripType"`
	Adults   int      `json:"adults"`
	Children int      `json:"children"`
	Infants  int      `json:"infants"`

	BudgetAmount int `json:"budgetAmount"`

	Experiences          []string `json:"experiences"`
	FlightPrefs          []string `json:"flightPrefs"`
	FlightCompany        string   `json:"flightCompany"`
	AccommodationPrefs   []string `json:"accommodationPrefs"`
	AccommodationCompany string   `json:"accommodationCompany"`

	OtherDetails string `json:"otherDetails"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// Wizard is the questionnaire state machine. All transitions are synchronous;
// the only asynchronous edge is the final submission, gated by the session.
type Wizard struct {
	Step      int   `json:"step"`
	Form      Form  `json:"form"`
	Submitted bool  `json:"submitted"`

	ShowErrors       bool `json:"showErrors"`
	ShowSubmitErrors bool `json:"showSubmitErrors"`

	// UserID is set when the host application authenticated the visitor.
	// A signed-in visitor skips contact-detail collection.
	UserID *uuid.UUID `json:"userId,omitempty"`
}

// Seed carries the query parameters the questionnaire page accepts.
type Seed struct {
	Location  string
	TripType  string
	StartDate *time.Time
	EndDate   *time.Time
	UserID    *uuid.UUID
}

// New builds a wizard from the seed. When both destination and a valid trip
// type arrive pre-filled, the wizard opens at step 2.
func New(seed Seed) *Wizard {
	tripType := TripType("")
	if IsTripType(seed.TripType) {
		tripType = TripType(seed.TripType)
	}

	adults := 2
	children := 0
	switch tripType {
	case TripIndividual:
		adults = 1
	case TripCouple:
		adults = 2
	case TripFamily:
		adults = 2
		children = 1
	case TripGroup:
		adults = 3
	}

	step := StepBasics
	if seed.Location != "" && tripType != "" {
		step = StepItinerary
	}

	return &Wizard{
		Step: step,
		Form: Form{
			Location:              seed.Location,
			KnowsExactDates:       true,
			StartDate:             seed.StartDate,
			EndDate:               seed.EndDate,
			EstimatedDurationDays: 7,
			TripType:              tripType,
			Adults:                adults,
			Children:              children,
			BudgetAmount:          1500,
			Experiences:           []string{},
			FlightPrefs:           []string{},
			AccommodationPrefs:    []string{},
		},
		UserID: seed.UserID,
	}
}

func (w *Wizard) SignedIn() bool {
	return w.UserID != nil
}

// Next validates the current step. On failure the wizard stays put and the
// error flags light up; on success it advances and clears them.
func (w *Wizard) Next() []FieldError {
	w.clearErrorFlags()
	if errs := w.ValidateStep(w.Step); len(errs) > 0 {
		if w.Step == StepContact {
			w.ShowSubmitErrors = true
		}
		w.ShowErrors = true
		return errs
	}
	if w.Step < TotalSteps {
		w.Step++
	}
	return nil
}

// Back never validates.
func (w *Wizard) Back() {
	w.clearErrorFlags()
	if w.Step > StepBasics {
		w.Step--
	}
}

// GoTo jumps directly to an already-completed step. Forward jumps are not
// allowed; only the step indicator's completed markers are clickable.
func (w *Wizard) GoTo(step int) error {
	if step < StepBasics || step > TotalSteps {
		return ErrUnknownStep
	}
	if step >= w.Step {
		return ErrStepNotCompleted
	}
	w.clearErrorFlags()
	w.Step = step
	return nil
}

func (w *Wizard) clearErrorFlags() {
	w.ShowErrors = false
	w.ShowSubmitErrors = false
}

// Title is the page headline derived from the current selections.
func (w *Wizard) Title() string {
	descriptor := "custom trip"
	if label, ok := TripTypeLabels[w.Form.TripType]; ok {
		descriptor = lowerFirst(label)
	}
	if w.Form.Location != "" {
		return "Your " + descriptor + " to " + w.Form.Location
	}
	return "Plan your " + descriptor
}

// Payload builds the normalized submission payload. It re-checks the cross-
// step requirements so a payload can never leave the wizard with neither
// date branch populated.
func (w *Wizard) Payload() (*request_models.CreateQuestionnaireRequest, []FieldError) {
	f := w.Form
	hasExact := f.KnowsExactDates && f.StartDate != nil && f.EndDate != nil
	hasEstimated := !f.KnowsExactDates && f.EstimatedDepartureDate != nil && f.EstimatedDurationDays >= 1

	if (!hasExact && !hasEstimated) || f.TripType == "" || w.datesOutOfOrder() {
		w.ShowErrors = true
		w.ShowSubmitErrors = true
		return nil, w.ValidateStep(StepItinerary)
	}

	req := &request_models.CreateQuestionnaireRequest{
		Location:        f.Location,
		KnowsExactDates: request_models.FlexBool(f.KnowsExactDates),
		TripType:        string(f.TripType),
		Adults:          request_models.FlexInt(f.Adults),
		Children:        request_models.FlexInt(f.Children),
		Infants:         request_models.FlexInt(f.Infants),
		BudgetAmount:    request_models.FlexInt(f.BudgetAmount),
		Experiences:     append([]string{}, f.Experiences...),
		FlightPrefs:     append([]string{}, f.FlightPrefs...),

		AccommodationPrefs: append([]string{}, f.AccommodationPrefs...),

		ContactName:  trimmed(f.ContactName),
		ContactEmail: trimmed(f.ContactEmail),
		UserID:       w.UserID,
	}

	if hasExact {
		req.StartDate = f.StartDate
		req.EndDate = f.EndDate
	} else {
		req.EstimatedDepartureDate = f.EstimatedDepartureDate
		duration := request_models.FlexInt(f.EstimatedDurationDays)
		req.EstimatedDurationDays = &duration
	}

	req.FlightCompany = optional(f.FlightCompany)
	req.AccommodationCompany = optional(f.AccommodationCompany)
	req.OtherDetails = optional(f.OtherDetails)
	req.ContactPhone = optional(f.ContactPhone)

	return req, nil
}
