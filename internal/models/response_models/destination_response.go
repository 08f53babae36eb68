package response_models

type RegionResponse struct {
	Region    string   `json:"region"`
	Countries []string `json:"countries"`
}

type SearchLinkResponse struct {
	URL string `json:"url"`
}
