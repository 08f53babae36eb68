package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mcstudio/internal/models/request_models"
	"mcstudio/internal/models/response_models"
	"mcstudio/internal/services"
	"mcstudio/pkg/middleware"
	"mcstudio/pkg/utils"
)

type QuestionnaireController struct {
	questionnaireService services.QuestionnaireServiceInterface
}

func NewQuestionnaireController(questionnaireService services.QuestionnaireServiceInterface) *QuestionnaireController {
	return &QuestionnaireController{questionnaireService: questionnaireService}
}

// Create godoc
// @Summary Submit a questionnaire response
// @Description Validate, persist and acknowledge a trip request
// @Tags Questionnaire
// @Accept json
// @Produce json
// @Param request body request_models.CreateQuestionnaireRequest true "Submission payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /questionnaire-responses [post]
func (q *QuestionnaireController) Create(c *gin.Context) {
	var req request_models.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := q.questionnaireService.CreateResponse(c.Request.Context(), &req, middleware.UserIDFrom(c))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			utils.RespondValidationErrors(c, validationErr.Errors)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, created, "Questionnaire response created")
}

// List godoc
// @Summary List questionnaire responses
// @Description Get a paginated list of submitted trip requests
// @Tags Questionnaire
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /questionnaire-responses [get]
func (q *QuestionnaireController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	responses, err := q.questionnaireService.ListResponses(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.QuestionnaireListResponse{
		Responses: responses,
		Page:      page,
		PageSize:  pageSize,
	}, "Questionnaire responses fetched successfully")
}
