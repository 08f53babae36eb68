package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mcstudio/internal/config"
	"mcstudio/internal/models/db_models"
	"mcstudio/internal/models/request_models"
	"mcstudio/internal/models/response_models"
	"mcstudio/internal/observability"
	"mcstudio/internal/repositories"
	"mcstudio/internal/validation"
	"mcstudio/pkg/utils"
)

// ValidationError carries the structured field errors of a rejected payload.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Errors))
}

type QuestionnaireServiceInterface interface {
	CreateResponse(ctx context.Context, req *request_models.CreateQuestionnaireRequest, userID *uuid.UUID) (*response_models.QuestionnaireCreatedResponse, error)
	ListResponses(ctx context.Context, page, pageSize int) ([]db_models.QuestionnaireResponse, error)
}

type QuestionnaireService struct {
	repo   repositories.QuestionnaireRepositoryInterface
	mail   IMailService
	cfg    *config.Config
	logger *zap.Logger
}

func NewQuestionnaireService(
	repo repositories.QuestionnaireRepositoryInterface,
	mail IMailService,
	cfg *config.Config,
	logger *zap.Logger,
) QuestionnaireServiceInterface {
	return &QuestionnaireService{repo: repo, mail: mail, cfg: cfg, logger: logger}
}

// CreateResponse re-validates the payload, persists exactly one record and
// then attempts the two notification emails. The write is never rolled back
// on a mail failure; the result reports which of the two outcomes happened.
func (s *QuestionnaireService) CreateResponse(
	ctx context.Context,
	req *request_models.CreateQuestionnaireRequest,
	userID *uuid.UUID,
) (*response_models.QuestionnaireCreatedResponse, error) {
	req.Normalize()
	if userID != nil {
		req.UserID = userID
	}

	if result := validation.ValidateCreatePayload(req); !result.Valid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	record := toRecord(req)
	if err := s.repo.CreateResponse(ctx, record); err != nil {
		observability.SubmissionFailures.Inc()
		s.logger.Error("failed to persist questionnaire response", zap.Error(err))
		return nil, utils.ErrSubmissionFailed
	}
	observability.SubmissionsCreated.Inc()

	return &response_models.QuestionnaireCreatedResponse{
		Response:      record,
		Notifications: s.notify(record),
	}, nil
}

func (s *QuestionnaireService) ListResponses(ctx context.Context, page, pageSize int) ([]db_models.QuestionnaireResponse, error) {
	responses, err := s.repo.ListResponses(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return responses, nil
}

// notify sends the operator and customer emails. Failures are logged and
// counted but never propagate: the record is already committed.
func (s *QuestionnaireService) notify(record *db_models.QuestionnaireResponse) string {
	if s.mail == nil || !s.cfg.Notifications.Enabled || s.cfg.Notifications.OperatorEmail == "" {
		return response_models.NotificationsSkipped
	}

	summary := summaryText(record)
	state := response_models.NotificationsSent

	operatorSubject, operatorBody := operatorEmail(record, summary)
	if err := s.mail.SendPlainText(s.cfg.Notifications.OperatorEmail, operatorSubject, operatorBody); err != nil {
		observability.EmailSendFailures.Inc()
		s.logger.Error("failed to send operator notification",
			zap.String("response_id", record.ID.String()), zap.Error(err))
		state = response_models.NotificationsFailed
	}

	customerSubject, customerBody := customerEmail(record, summary, s.cfg.App.Name)
	if err := s.mail.SendPlainText(record.ContactEmail, customerSubject, customerBody); err != nil {
		observability.EmailSendFailures.Inc()
		s.logger.Error("failed to send customer acknowledgment",
			zap.String("response_id", record.ID.String()), zap.Error(err))
		state = response_models.NotificationsFailed
	}

	return state
}

func toRecord(req *request_models.CreateQuestionnaireRequest) *db_models.QuestionnaireResponse {
	var duration *int
	if req.EstimatedDurationDays != nil {
		d := int(*req.EstimatedDurationDays)
		duration = &d
	}

	return &db_models.QuestionnaireResponse{
		Location:               req.Location,
		KnowsExactDates:        bool(req.KnowsExactDates),
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		EstimatedDepartureDate: req.EstimatedDepartureDate,
		EstimatedDurationDays:  duration,
		TripType:               req.TripType,
		Adults:                 int(req.Adults),
		Children:               int(req.Children),
		Infants:                int(req.Infants),
		BudgetAmount:           int(req.BudgetAmount),
		Experiences:            req.Experiences,
		FlightPrefs:            req.FlightPrefs,
		FlightCompany:          req.FlightCompany,
		AccommodationPrefs:     req.AccommodationPrefs,
		AccommodationCompany:   req.AccommodationCompany,
		OtherDetails:           req.OtherDetails,
		ContactName:            req.ContactName,
		ContactEmail:           req.ContactEmail,
		ContactPhone:           req.ContactPhone,
		UserID:                 req.UserID,
	}
}
