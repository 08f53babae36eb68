package wizard

import (
	"sync"
	"time"

	"mcstudio/internal/models/request_models"
)

// Session wraps a wizard with the mutual-exclusion gate for submission.
// All mutations go through the session so a pending submit can never race a
// second one.
type Session struct {
	ID string

	mu            sync.Mutex
	wizard        *Wizard
	submitPending bool
	submitError   string
}

func NewSession(id string, w *Wizard) *Session {
	return &Session{ID: id, wizard: w}
}

// Snapshot returns a copy of the wizard state plus the pending/error flags.
func (s *Session) Snapshot() (Wizard, bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.wizard, s.submitPending, s.submitError
}

func (s *Session) Next() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Next()
}

func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard.Back()
}

func (s *Session) GoTo(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.GoTo(step)
}

// Update applies partial field changes. Returning to an earlier step and
// forward again revalidates against whatever is current, so no data is lost.
func (s *Session) Update(req *request_models.UpdateWizardRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &s.wizard.Form
	if req.Location != nil {
		f.Location = *req.Location
	}
	if req.KnowsExactDates != nil {
		f.KnowsExactDates = *req.KnowsExactDates
	}
	if req.StartDate != nil {
		f.StartDate = parseDate(*req.StartDate)
	}
	if req.EndDate != nil {
		f.EndDate = parseDate(*req.EndDate)
	}
	if req.EstimatedDepartureDate != nil {
		f.EstimatedDepartureDate = parseDate(*req.EstimatedDepartureDate)
	}
	if req.EstimatedDurationDays != nil {
		f.EstimatedDurationDays = *req.EstimatedDurationDays
	}
	if req.TripType != nil && IsTripType(*req.TripType) {
		f.TripType = TripType(*req.TripType)
	}
	if req.Adults != nil {
		f.Adults = *req.Adults
	}
	if req.Children != nil {
		f.Children = *req.Children
	}
	if req.Infants != nil {
		f.Infants = *req.Infants
	}
	if req.BudgetAmount != nil {
		f.BudgetAmount = *req.BudgetAmount
	}
	if req.Experiences != nil {
		f.Experiences = req.Experiences
	}
	if req.FlightPrefs != nil {
		f.FlightPrefs = req.FlightPrefs
	}
	if req.FlightCompany != nil {
		f.FlightCompany = *req.FlightCompany
	}
	if req.AccommodationPrefs != nil {
		f.AccommodationPrefs = req.AccommodationPrefs
	}
	if req.AccommodationCompany != nil {
		f.AccommodationCompany = *req.AccommodationCompany
	}
	if req.OtherDetails != nil {
		f.OtherDetails = *req.OtherDetails
	}
	if req.ContactName != nil {
		f.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		f.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		f.ContactPhone = *req.ContactPhone
	}
}

// BeginSubmit validates and claims the submit gate, returning the payload to
// send. FinishSubmit must be called with the outcome of the remote call.
func (s *Session) BeginSubmit() (*request_models.CreateQuestionnaireRequest, []FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wizard.Submitted {
		return nil, nil, ErrAlreadySubmitted
	}
	if s.submitPending {
		return nil, nil, ErrSubmitInFlight
	}
	if s.wizard.Step != StepSubmit {
		return nil, nil, ErrNotOnFinalStep
	}

	s.wizard.clearErrorFlags()
	s.submitError = ""
	payload, fieldErrs := s.wizard.Payload()
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	s.submitPending = true
	return payload, nil, nil
}

// FinishSubmit releases the gate. On success the wizard reaches its terminal
// state; on failure the state is left intact so the user may resubmit.
func (s *Session) FinishSubmit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitPending = false
	if err != nil {
		s.submitError = "We couldn't submit your request. Please try again."
		return
	}
	s.submitError = ""
	s.wizard.Submitted = true
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
