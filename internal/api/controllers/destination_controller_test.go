package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcstudio/internal/services"
)

func destinationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewDestinationController(services.NewDestinationService())

	r := gin.New()
	r.GET("/api/destinations", controller.Regions)
	r.GET("/api/destinations/all", controller.All)
	r.GET("/api/destinations/search", controller.Search)
	return r
}

func TestDestinations_All(t *testing.T) {
	r := destinationRouter()

	rec, resp := doJSON(t, r, http.MethodGet, "/api/destinations/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	countries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Contains(t, countries, "Japan")
}

func TestDestinations_Regions(t *testing.T) {
	r := destinationRouter()

	rec, resp := doJSON(t, r, http.MethodGet, "/api/destinations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	regions, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, regions, 8)

	first := regions[0].(map[string]interface{})
	assert.Equal(t, "Europe", first["region"])
}

func TestDestinations_Search(t *testing.T) {
	r := destinationRouter()

	rec, resp := doJSON(t, r, http.MethodGet, "/api/destinations/search?q=jap", "")
	require.Equal(t, http.StatusOK, rec.Code)

	matches, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Japan"}, matches)
}
