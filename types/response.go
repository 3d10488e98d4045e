package types

type UploadResponse struct {
	Summary string `json:"summary"`
}

type SearchResponse struct {
	Results []string `json:"results"`
}

type DocumentsResponse struct {
	Documents []IngestionRecord `json:"documents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
