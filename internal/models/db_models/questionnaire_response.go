package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// QuestionnaireResponse is the single durable entity: one row per submitted
// trip request. Exactly one of the date branches is populated, selected by
// KnowsExactDates; the inactive branch stays null.
type QuestionnaireResponse struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Location        string `gorm:"type:text;not null" json:"location"`
	KnowsExactDates bool   `gorm:"not null" json:"knowsExactDates"`

	StartDate              *time.Time `json:"startDate"`
	EndDate                *time.Time `json:"endDate"`
	EstimatedDepartureDate *time.Time `json:"estimatedDepartureDate"`
	EstimatedDurationDays  *int       `json:"estimatedDurationDays"`

	TripType string `gorm:"type:text;not null" json:"tripType"`
	Adults   int    `gorm:"not null;check:adults >= 1" json:"adults"`
	Children int    `gorm:"not null;default:0" json:"children"`
	Infants  int    `gorm:"not null;default:0" json:"infants"`

	BudgetAmount int `gorm:"not null;check:budget_amount >= 0" json:"budgetAmount"`

	Experiences          pq.StringArray `gorm:"type:text[]" json:"experiences"`
	FlightPrefs          pq.StringArray `gorm:"type:text[]" json:"flightPrefs"`
	FlightCompany        *string        `gorm:"type:text" json:"flightCompany"`
	AccommodationPrefs   pq.StringArray `gorm:"type:text[]" json:"accommodationPrefs"`
	AccommodationCompany *string        `gorm:"type:text" json:"accommodationCompany"`

	OtherDetails *string `gorm:"type:text" json:"otherDetails"`

	ContactName  string  `gorm:"type:text;not null" json:"contactName"`
	ContactEmail string  `gorm:"type:text;not null" json:"contactEmail"`
	ContactPhone *string `gorm:"type:text" json:"contactPhone"`

	// No auth is wired in yet, so this stays null for anonymous submissions.
	UserID *uuid.UUID `gorm:"type:uuid" json:"userId"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (q *QuestionnaireResponse) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
