package request_models

// UpdateWizardRequest carries partial field updates for a wizard session.
// Only non-nil fields are applied, so every input stays controlled by the
// caller without clobbering the rest of the form.
type UpdateWizardRequest struct {
	Location        *string `json:"location"`
	KnowsExactDates *bool   `json:"knowsExactDates"`

	StartDate              *string `json:"startDate"`
	EndDate                *string `json:"endDate"`
	EstimatedDepartureDate *string `json:"estimatedDepartureDate"`
	EstimatedDurationDays  *int    `json:"estimatedDurationDays"`

	TripType *string `json:"tripType"`
	Adults   *int    `json:"adults"`
	Children *int    `json:"children"`
	Infants  *int    `json:"infants"`

	BudgetAmount *int `json:"budgetAmount"`

	Experiences          []string `json:"experiences"`
	FlightPrefs          []string `json:"flightPrefs"`
	FlightCompany        *string  `json:"flightCompany"`
	AccommodationPrefs   []string `json:"accommodationPrefs"`
	AccommodationCompany *string  `json:"accommodationCompany"`

	OtherDetails *string `json:"otherDetails"`

	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required"`
}
