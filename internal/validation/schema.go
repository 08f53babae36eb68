package validation

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"mcstudio/internal/models/request_models"
)

// The endpoint never trusts the wizard's client-side checks: the payload is
// re-validated here against its own schema before anything is persisted.
// This is deliberately a second, independent copy of the rules the wizard
// enforces step by step.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

const createSchema = `{
	"type": "object",
	"required": [
		"location", "knowsExactDates", "tripType",
		"adults", "children", "infants", "budgetAmount",
		"experiences", "flightPrefs", "accommodationPrefs",
		"contactName", "contactEmail"
	],
	"properties": {
		"location":        {"type": "string", "minLength": 1},
		"knowsExactDates": {"type": "boolean"},
		"startDate":              {"type": ["string", "null"]},
		"endDate":                {"type": ["string", "null"]},
		"estimatedDepartureDate": {"type": ["string", "null"]},
		"estimatedDurationDays":  {"type": ["integer", "null"], "minimum": 1},
		"tripType": {"type": "string", "minLength": 1},
		"adults":   {"type": "integer", "minimum": 1},
		"children": {"type": "integer", "minimum": 0},
		"infants":  {"type": "integer", "minimum": 0},
		"budgetAmount": {"type": "integer", "minimum": 0},
		"experiences":        {"type": "array", "items": {"type": "string"}},
		"flightPrefs":        {"type": "array", "items": {"type": "string"}},
		"accommodationPrefs": {"type": "array", "items": {"type": "string"}},
		"flightCompany":        {"type": ["string", "null"]},
		"accommodationCompany": {"type": ["string", "null"]},
		"otherDetails":         {"type": ["string", "null"]},
		"contactName":  {"type": "string", "minLength": 1},
		"contactEmail": {"type": "string", "format": "email", "minLength": 1},
		"contactPhone": {"type": ["string", "null"]},
		"userId":       {"type": ["string", "null"]}
	}
}`

var createSchemaLoader = gojsonschema.NewStringLoader(createSchema)

// ValidateCreatePayload checks the normalized payload's shape against the
// schema, then enforces the conditional date-mode requirement: exact dates
// need a start and an end, flexible dates need a departure and a duration.
func ValidateCreatePayload(req *request_models.CreateQuestionnaireRequest) *Result {
	errs := validateShape(req)
	errs = append(errs, validateDateMode(req)...)
	return &Result{Valid: len(errs) == 0, Errors: errs}
}

func validateShape(req *request_models.CreateQuestionnaireRequest) []FieldError {
	raw, err := json.Marshal(req)
	if err != nil {
		return []FieldError{{Field: "payload", Message: "payload is not valid JSON"}}
	}

	result, err := gojsonschema.Validate(createSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return []FieldError{{Field: "payload", Message: err.Error()}}
	}

	var errs []FieldError
	for _, resultErr := range result.Errors() {
		field := resultErr.Field()
		if field == "(root)" {
			if property, ok := resultErr.Details()["property"].(string); ok {
				field = property
			}
		}
		errs = append(errs, FieldError{Field: field, Message: resultErr.Description()})
	}
	return errs
}

func validateDateMode(req *request_models.CreateQuestionnaireRequest) []FieldError {
	var errs []FieldError
	if bool(req.KnowsExactDates) {
		if req.StartDate == nil {
			errs = append(errs, FieldError{"startDate", "Start date is required when you know your dates."})
		}
		if req.EndDate == nil {
			errs = append(errs, FieldError{"endDate", "End date is required when you know your dates."})
		}
		return errs
	}
	if req.EstimatedDepartureDate == nil {
		errs = append(errs, FieldError{"estimatedDepartureDate", "Estimated departure date is required when dates are flexible."})
	}
	if req.EstimatedDurationDays == nil || *req.EstimatedDurationDays < 1 {
		errs = append(errs, FieldError{"estimatedDurationDays", "Estimated duration is required when dates are flexible."})
	}
	return errs
}
