package request_models

// SearchRequest is the landing-page search widget: destination and trip type
// are required before navigating to the questionnaire, the travel date is
// optional.
type SearchRequest struct {
	Location   string `json:"location"`
	TripType   string `json:"tripType"`
	TravelDate string `json:"travelDate"`
}
