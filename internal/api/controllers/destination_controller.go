package controllers

import (
	"github.com/gin-gonic/gin"

	"mcstudio/internal/services"
	"mcstudio/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{destinationService: destinationService}
}

// Regions godoc
// @Summary List destinations grouped by region
// @Tags Destination
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) Regions(c *gin.Context) {
	utils.RespondSuccess(c, d.destinationService.ListRegions(), "Regions fetched successfully")
}

// All godoc
// @Summary List every destination country
// @Tags Destination
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /destinations/all [get]
func (d *DestinationController) All(c *gin.Context) {
	utils.RespondSuccess(c, d.destinationService.AllCountries(), "Destinations fetched successfully")
}

// Search godoc
// @Summary Search destinations
// @Description Case-insensitive substring match over the country catalogue
// @Tags Destination
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/search [get]
func (d *DestinationController) Search(c *gin.Context) {
	utils.RespondSuccess(c, d.destinationService.Search(c.Query("q")), "Destinations fetched successfully")
}
