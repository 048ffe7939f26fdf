package dto

import "encoding/json"

// RecognizeRequest is the body of every /recognize endpoint. Image stays raw
// so that a missing member and a non-string member can be told apart.
type RecognizeRequest struct {
	Image        json.RawMessage `json:"image"`
	DocumentType string          `json:"document_type"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type ConfigResponse struct {
	Success                bool     `json:"success"`
	SupportedFormats       []string `json:"supported_formats"`
	MaxImageSize           string   `json:"max_image_size"`
	SupportedDocumentTypes []string `json:"supported_document_types"`
	ModelVersion           string   `json:"model_version"`
	Engine                 string   `json:"engine"`
}
