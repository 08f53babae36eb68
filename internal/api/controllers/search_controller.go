package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"mcstudio/internal/models/request_models"
	"mcstudio/internal/models/response_models"
	"mcstudio/internal/wizard"
	"mcstudio/pkg/utils"
)

type SearchController struct{}

func NewSearchController() *SearchController {
	return &SearchController{}
}

// Search godoc
// @Summary Resolve a search into a questionnaire link
// @Description Validate the search widget fields and build the questionnaire URL that seeds the wizard
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Search fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /search [post]
func (s *SearchController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		utils.RespondValidationErrors(c, []wizard.FieldError{
			{Field: "location", Message: "Please select a destination"},
		})
		return
	}
	if !wizard.IsTripType(req.TripType) {
		utils.RespondValidationErrors(c, []wizard.FieldError{
			{Field: "tripType", Message: "Please choose who you are traveling with"},
		})
		return
	}

	params := url.Values{}
	params.Set("location", location)
	params.Set("tripType", req.TripType)
	if date := strings.TrimSpace(req.TravelDate); date != "" {
		params.Set("startDate", date)
	}

	utils.RespondSuccess(c, response_models.SearchLinkResponse{
		URL: "/questionnaire?" + params.Encode(),
	}, "Search resolved successfully")
}
