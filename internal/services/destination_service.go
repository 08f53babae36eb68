package services

import (
	"strings"

	"mcstudio/internal/models/response_models"
)

type DestinationServiceInterface interface {
	ListRegions() []response_models.RegionResponse
	AllCountries() []string
	Search(query string) []string
}

type DestinationService struct {
	all []string
}

func NewDestinationService() DestinationServiceInterface {
	var all []string
	for _, region := range countriesByRegion {
		all = append(all, region.Countries...)
	}
	return &DestinationService{all: all}
}

func (d *DestinationService) ListRegions() []response_models.RegionResponse {
	regions := make([]response_models.RegionResponse, 0, len(countriesByRegion))
	for _, region := range countriesByRegion {
		regions = append(regions, response_models.RegionResponse{
			Region:    region.Region,
			Countries: append([]string{}, region.Countries...),
		})
	}
	return regions
}

func (d *DestinationService) AllCountries() []string {
	return append([]string{}, d.all...)
}

// Search filters the flattened list by case-insensitive substring, matching
// the destination picker's behavior. A blank query returns everything.
func (d *DestinationService) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return d.AllCountries()
	}
	var matches []string
	for _, country := range d.all {
		if strings.Contains(strings.ToLower(country), query) {
			matches = append(matches, country)
		}
	}
	return matches
}
