package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationService_ListRegions(t *testing.T) {
	svc := NewDestinationService()

	regions := svc.ListRegions()
	require.Len(t, regions, 8)

	assert.Equal(t, "Europe", regions[0].Region)
	assert.Contains(t, regions[0].Countries, "France")
	assert.Equal(t, "Oceania", regions[7].Region)
	assert.Contains(t, regions[7].Countries, "New Zealand")
}

func TestDestinationService_AllCountries(t *testing.T) {
	svc := NewDestinationService()

	all := svc.AllCountries()
	assert.NotEmpty(t, all)
	assert.Contains(t, all, "Japan")
	assert.Contains(t, all, "Peru")
	assert.Contains(t, all, "United States")

	// Mutating the returned slice must not leak into the catalogue.
	all[0] = "Atlantis"
	assert.NotContains(t, svc.AllCountries(), "Atlantis")
}

func TestDestinationService_Search(t *testing.T) {
	svc := NewDestinationService()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "exact name", query: "Japan", want: []string{"Japan"}},
		{name: "case insensitive", query: "jApAn", want: []string{"Japan"}},
		{name: "substring matches several", query: "guinea", want: []string{"Equatorial Guinea", "Guinea", "Guinea-Bissau", "Papua New Guinea"}},
		{name: "surrounding whitespace ignored", query: "  japan  ", want: []string{"Japan"}},
		{name: "no match", query: "atlantis", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Search(tt.query))
		})
	}
}

func TestDestinationService_SearchBlankReturnsAll(t *testing.T) {
	svc := NewDestinationService()
	assert.Equal(t, svc.AllCountries(), svc.Search("   "))
}
