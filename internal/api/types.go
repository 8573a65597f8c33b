package api

import (
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/jsonld"
)

type AnalyzePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Language    string `json:"language,omitempty"`
}

type AnalyzeURLPayload struct {
	URL      string `json:"url"`
	Language string `json:"language,omitempty"`
}

type AnalyzeResponse struct {
	URL      string          `json:"url,omitempty"`
	JSONLD   jsonld.Document `json:"jsonld"`
	Analysis seoquery.Result `json:"analysis"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
