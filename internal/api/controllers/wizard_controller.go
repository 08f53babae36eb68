package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mcstudio/internal/models/request_models"
	"mcstudio/internal/models/response_models"
	"mcstudio/internal/services"
	"mcstudio/internal/wizard"
	"mcstudio/pkg/memcache"
	"mcstudio/pkg/middleware"
	"mcstudio/pkg/utils"
)

// Abandoned sessions age out of the in-memory store after this long.
const sessionTTL = 2 * time.Hour

type WizardController struct {
	sessions             memcache.SessionStore
	questionnaireService services.QuestionnaireServiceInterface
}

func NewWizardController(
	sessions memcache.SessionStore,
	questionnaireService services.QuestionnaireServiceInterface,
) *WizardController {
	return &WizardController{sessions: sessions, questionnaireService: questionnaireService}
}

// Start godoc
// @Summary Start a wizard session
// @Description Create a questionnaire session, optionally seeded from search query parameters
// @Tags Wizard
// @Param location query string false "Pre-filled destination"
// @Param tripType query string false "Pre-filled trip type"
// @Param startDate query string false "Pre-filled start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Pre-filled end date"
// @Success 201 {object} utils.APIResponse
// @Router /wizard/sessions [post]
func (w *WizardController) Start(c *gin.Context) {
	seed := wizard.Seed{
		Location:  c.Query("location"),
		TripType:  c.Query("tripType"),
		StartDate: parseDateParam(c.Query("startDate")),
		EndDate:   parseDateParam(c.Query("endDate")),
		UserID:    middleware.UserIDFrom(c),
	}

	session := wizard.NewSession(uuid.New().String(), wizard.New(seed))
	w.sessions.Put(session, sessionTTL)

	utils.RespondWithStatus(c, http.StatusCreated, wizardState(session, nil), "Wizard session created")
}

// Get godoc
// @Summary Get wizard session state
// @Tags Wizard
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wizard/sessions/{id} [get]
func (w *WizardController) Get(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}
	utils.RespondSuccess(c, wizardState(session, nil), "Wizard session fetched")
}

// Update godoc
// @Summary Update wizard form fields
// @Description Apply partial field updates to the session's form
// @Tags Wizard
// @Param id path string true "Session ID"
// @Param request body request_models.UpdateWizardRequest true "Field updates"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/sessions/{id} [put]
func (w *WizardController) Update(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	var req request_models.UpdateWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session.Update(&req)
	utils.RespondSuccess(c, wizardState(session, nil), "Wizard session updated")
}

// Next godoc
// @Summary Advance the wizard
// @Description Validate the current step; advance on success, report field errors on failure
// @Tags Wizard
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/sessions/{id}/next [post]
func (w *WizardController) Next(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	fieldErrs := session.Next()
	utils.RespondSuccess(c, wizardState(session, fieldErrs), "Wizard step processed")
}

// Back godoc
// @Summary Go back one wizard step
// @Tags Wizard
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/sessions/{id}/back [post]
func (w *WizardController) Back(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	session.Back()
	utils.RespondSuccess(c, wizardState(session, nil), "Wizard step processed")
}

// GoTo godoc
// @Summary Jump to a completed wizard step
// @Tags Wizard
// @Param id path string true "Session ID"
// @Param request body request_models.GoToStepRequest true "Target step"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wizard/sessions/{id}/step [post]
func (w *WizardController) GoTo(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	var req request_models.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := session.GoTo(req.Step); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Only completed steps can be revisited")
		return
	}
	utils.RespondSuccess(c, wizardState(session, nil), "Wizard step processed")
}

// Submit godoc
// @Summary Submit the questionnaire
// @Description Validate the final step, persist the response and send notifications
// @Tags Wizard
// @Param id path string true "Session ID"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /wizard/sessions/{id}/submit [post]
func (w *WizardController) Submit(c *gin.Context) {
	session, ok := w.sessions.Get(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	payload, fieldErrs, err := session.BeginSubmit()
	switch {
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		utils.RespondError(c, http.StatusConflict, "This questionnaire was already submitted")
		return
	case errors.Is(err, wizard.ErrSubmitInFlight):
		utils.RespondError(c, http.StatusConflict, "A submission is already in progress")
		return
	case errors.Is(err, wizard.ErrNotOnFinalStep):
		utils.RespondError(c, http.StatusBadRequest, "Submit is only available on the final step")
		return
	case len(fieldErrs) > 0:
		utils.RespondValidationErrors(c, fieldErrs)
		return
	}

	created, err := w.questionnaireService.CreateResponse(c.Request.Context(), payload, nil)
	session.FinishSubmit(err)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			utils.RespondValidationErrors(c, validationErr.Errors)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	state := wizardState(session, nil)
	utils.RespondWithStatus(c, http.StatusCreated, gin.H{
		"wizard":  state,
		"created": created,
	}, "Questionnaire submitted")
}

func wizardState(session *wizard.Session, fieldErrs []wizard.FieldError) response_models.WizardStateResponse {
	snapshot, pending, submitErr := session.Snapshot()

	state := response_models.WizardStateResponse{
		SessionID:        session.ID,
		Step:             snapshot.Step,
		StepLabel:        wizard.StepLabel(snapshot.Step),
		TotalSteps:       wizard.TotalSteps,
		Title:            snapshot.Title(),
		Submitted:        snapshot.Submitted,
		SubmitPending:    pending,
		SubmitError:      submitErr,
		ShowErrors:       snapshot.ShowErrors,
		ShowSubmitErrors: snapshot.ShowSubmitErrors,
		SignedIn:         snapshot.SignedIn(),
		Form:             snapshot.Form,
		Errors:           fieldErrs,
	}
	if snapshot.Step == wizard.StepSubmit {
		state.Summary = snapshot.Summary()
	}
	return state
}

func parseDateParam(raw string) *time.Time {
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
