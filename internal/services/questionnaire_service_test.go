package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mcstudio/internal/config"
	"mcstudio/internal/models/db_models"
	"mcstudio/internal/models/request_models"
	"mcstudio/internal/models/response_models"
	"mcstudio/pkg/utils"
)

type fakeRepo struct {
	created   []*db_models.QuestionnaireResponse
	createErr error
	listed    []db_models.QuestionnaireResponse
	listErr   error
}

func (f *fakeRepo) CreateResponse(ctx context.Context, response *db_models.QuestionnaireResponse) error {
	if f.createErr != nil {
		return f.createErr
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	f.created = append(f.created, response)
	return nil
}

func (f *fakeRepo) ListResponses(ctx context.Context, page, pageSize int) ([]db_models.QuestionnaireResponse, error) {
	return f.listed, f.listErr
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (f *fakeMailer) SendPlainText(to, subject, text string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: text})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "MC Studio"},
		Notifications: config.NotificationConfig{
			Enabled:       true,
			OperatorEmail: "trips@mcstudio.travel",
		},
	}
}

func validRequest(t *testing.T) *request_models.CreateQuestionnaireRequest {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2025-06-01")
	require.NoError(t, err)
	end := start.AddDate(0, 0, 9)

	return &request_models.CreateQuestionnaireRequest{
		Location:        "Japan",
		KnowsExactDates: true,
		StartDate:       &start,
		EndDate:         &end,
		TripType:        "couple",
		Adults:          2,
		BudgetAmount:    3500,
		Experiences:     []string{"Food and wine"},
		ContactName:     "Ada Lovelace",
		ContactEmail:    "ada@example.com",
	}
}

func newService(repo *fakeRepo, mail IMailService, cfg *config.Config) QuestionnaireServiceInterface {
	return NewQuestionnaireService(repo, mail, cfg, zap.NewNop())
}

func TestCreateResponse_PersistsAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	svc := newService(repo, mailer, testConfig())

	created, err := svc.CreateResponse(context.Background(), validRequest(t), nil)
	require.NoError(t, err)

	// Exactly one row, no user attached for an anonymous submission.
	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, "Japan", record.Location)
	assert.Equal(t, "couple", record.TripType)
	assert.Equal(t, 2, record.Adults)
	assert.Nil(t, record.UserID)

	// Operator notification first, customer acknowledgment second.
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "trips@mcstudio.travel", mailer.sent[0].to)
	assert.Equal(t, "New trip request from Ada Lovelace: Couple's trip to Japan", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Destination: Japan")
	assert.Contains(t, mailer.sent[0].body, "Budget: €3500")

	assert.Equal(t, "ada@example.com", mailer.sent[1].to)
	assert.Equal(t, "We received your trip request to Japan", mailer.sent[1].subject)
	assert.Contains(t, mailer.sent[1].body, "Hi Ada Lovelace,")
	assert.Contains(t, mailer.sent[1].body, "MC Studio")

	assert.Equal(t, response_models.NotificationsSent, created.Notifications)
	assert.Same(t, record, created.Response)
}

func TestCreateResponse_AttachesAuthenticatedUser(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeMailer{}, testConfig())
	userID := uuid.New()

	_, err := svc.CreateResponse(context.Background(), validRequest(t), &userID)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].UserID)
	assert.Equal(t, userID, *repo.created[0].UserID)
}

func TestCreateResponse_RejectsInvalidPayload(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	svc := newService(repo, mailer, testConfig())

	req := validRequest(t)
	req.Location = ""
	req.StartDate = nil

	_, err := svc.CreateResponse(context.Background(), req, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Empty(t, repo.created)
	assert.Empty(t, mailer.sent)
}

func TestCreateResponse_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	mailer := &fakeMailer{}
	svc := newService(repo, mailer, testConfig())

	_, err := svc.CreateResponse(context.Background(), validRequest(t), nil)

	assert.ErrorIs(t, err, utils.ErrSubmissionFailed)
	assert.Empty(t, mailer.sent)
}

func TestCreateResponse_MailFailureKeepsRecord(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{failFor: map[string]error{
		"trips@mcstudio.travel": errors.New("smtp down"),
	}}
	svc := newService(repo, mailer, testConfig())

	created, err := svc.CreateResponse(context.Background(), validRequest(t), nil)
	require.NoError(t, err)

	// The write sticks even though the operator mail bounced, and the
	// customer acknowledgment is still attempted.
	assert.Len(t, repo.created, 1)
	assert.Equal(t, response_models.NotificationsFailed, created.Notifications)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)
}

func TestCreateResponse_NotificationsSkipped(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.Config)
		mail IMailService
	}{
		{name: "notifications disabled", cfg: func(c *config.Config) { c.Notifications.Enabled = false }, mail: &fakeMailer{}},
		{name: "no operator address", cfg: func(c *config.Config) { c.Notifications.OperatorEmail = "" }, mail: &fakeMailer{}},
		{name: "no mail service", cfg: func(c *config.Config) {}, mail: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.cfg(cfg)
			repo := &fakeRepo{}
			svc := newService(repo, tt.mail, cfg)

			created, err := svc.CreateResponse(context.Background(), validRequest(t), nil)
			require.NoError(t, err)
			assert.Len(t, repo.created, 1)
			assert.Equal(t, response_models.NotificationsSkipped, created.Notifications)
		})
	}
}

func TestCreateResponse_NormalizesOptionalStrings(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeMailer{}, testConfig())

	blank := "   "
	phone := " +49 30 123456 "
	req := validRequest(t)
	req.OtherDetails = &blank
	req.ContactPhone = &phone

	_, err := svc.CreateResponse(context.Background(), req, nil)
	require.NoError(t, err)

	record := repo.created[0]
	assert.Nil(t, record.OtherDetails)
	require.NotNil(t, record.ContactPhone)
	assert.Equal(t, "+49 30 123456", *record.ContactPhone)
}

func TestCreateResponse_ResubmissionCreatesSecondRow(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeMailer{}, testConfig())

	first, err := svc.CreateResponse(context.Background(), validRequest(t), nil)
	require.NoError(t, err)
	second, err := svc.CreateResponse(context.Background(), validRequest(t), nil)
	require.NoError(t, err)

	// No dedup: an identical payload lands as a second, distinct row.
	require.Len(t, repo.created, 2)
	assert.NotEqual(t, first.Response.ID, second.Response.ID)
}

func TestListResponses(t *testing.T) {
	repo := &fakeRepo{listed: []db_models.QuestionnaireResponse{{Location: "Japan"}}}
	svc := newService(repo, &fakeMailer{}, testConfig())

	responses, err := svc.ListResponses(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, responses, 1)

	repo.listErr = errors.New("connection refused")
	_, err = svc.ListResponses(context.Background(), 1, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
