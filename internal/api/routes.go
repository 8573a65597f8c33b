package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /analyze", handler.HandleAnalyze)
	mux.HandleFunc("POST /analyze/url", handler.HandleAnalyzeURL)
	mux.HandleFunc("GET /schema", handler.HandleSchema)
}
