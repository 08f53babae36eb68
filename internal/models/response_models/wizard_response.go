package response_models

import (
	"mcstudio/internal/wizard"
)

// WizardStateResponse is the wizard session as seen by the page: current
// step, form values, error flags and, on the final step, the review summary.
type WizardStateResponse struct {
	SessionID  string `json:"sessionId"`
	Step       int    `json:"step"`
	StepLabel  string `json:"stepLabel"`
	TotalSteps int    `json:"totalSteps"`
	Title      string `json:"title"`

	Submitted     bool   `json:"submitted"`
	SubmitPending bool   `json:"submitPending"`
	SubmitError   string `json:"submitError,omitempty"`

	ShowErrors       bool `json:"showErrors"`
	ShowSubmitErrors bool `json:"showSubmitErrors"`
	SignedIn         bool `json:"signedIn"`

	Form    wizard.Form         `json:"form"`
	Errors  []wizard.FieldError `json:"errors,omitempty"`
	Summary []wizard.SummaryRow `json:"summary,omitempty"`
}
