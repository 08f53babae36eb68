package request_models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestFlexBool_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "boolean true", input: "true", want: true},
		{name: "boolean false", input: "false", want: false},
		{name: "string true", input: `"true"`, want: true},
		{name: "string false", input: `"false"`, want: false},
		{name: "numeric one", input: "1", want: true},
		{name: "numeric zero", input: "0", want: false},
		{name: "null is false", input: "null", want: false},
		{name: "garbage rejected", input: `"maybe"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain integer", input: "7", want: 7},
		{name: "whole float", input: "7.0", want: 7},
		{name: "quoted integer", input: `"7"`, want: 7},
		{name: "negative", input: "-3", want: -3},
		{name: "fractional rejected", input: "7.5", wantErr: true},
		{name: "null rejected", input: "null", wantErr: true},
		{name: "text rejected", input: `"seven"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i FlexInt
			err := json.Unmarshal([]byte(tt.input), &i)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(i))
		})
	}
}

func TestFlexTypes_MarshalCanonical(t *testing.T) {
	out, err := json.Marshal(struct {
		Knows  FlexBool `json:"knows"`
		Adults FlexInt  `json:"adults"`
	}{Knows: true, Adults: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"knows": true, "adults": 2}`, string(out))
}

func TestNormalize(t *testing.T) {
	blank := "  "
	phone := " +49 30 123456 "
	req := &CreateQuestionnaireRequest{
		Location:        "  Japan ",
		KnowsExactDates: false,
		TripType:        " couple ",
		ContactName:     " Ada ",
		ContactEmail:    " ada@example.com ",
		FlightCompany:   &blank,
		ContactPhone:    &phone,
	}

	req.Normalize()

	assert.Equal(t, "Japan", req.Location)
	assert.Equal(t, "couple", req.TripType)
	assert.Equal(t, "Ada", req.ContactName)
	assert.Equal(t, "ada@example.com", req.ContactEmail)
	assert.Nil(t, req.FlightCompany)
	require.NotNil(t, req.ContactPhone)
	assert.Equal(t, "+49 30 123456", *req.ContactPhone)
	assert.NotNil(t, req.Experiences)
	assert.NotNil(t, req.FlightPrefs)
	assert.NotNil(t, req.AccommodationPrefs)
}

func TestNormalize_NullsInactiveDateBranch(t *testing.T) {
	start := mustTime(t, "2025-06-01")
	departure := mustTime(t, "2025-07-15")
	duration := FlexInt(10)

	exact := &CreateQuestionnaireRequest{
		KnowsExactDates:        true,
		StartDate:              start,
		EndDate:                start,
		EstimatedDepartureDate: departure,
		EstimatedDurationDays:  &duration,
	}
	exact.Normalize()
	assert.NotNil(t, exact.StartDate)
	assert.Nil(t, exact.EstimatedDepartureDate)
	assert.Nil(t, exact.EstimatedDurationDays)

	flexible := &CreateQuestionnaireRequest{
		KnowsExactDates:        false,
		StartDate:              start,
		EndDate:                start,
		EstimatedDepartureDate: departure,
		EstimatedDurationDays:  &duration,
	}
	flexible.Normalize()
	assert.Nil(t, flexible.StartDate)
	assert.Nil(t, flexible.EndDate)
	assert.NotNil(t, flexible.EstimatedDepartureDate)
}
