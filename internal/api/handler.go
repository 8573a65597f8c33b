package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/internal/httputils"
	"github.com/Instilla-AI/seontology-mcp-server/internal/logging"
	"github.com/Instilla-AI/seontology-mcp-server/internal/pages"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/jsonld"
)

type Handler struct {
	logger   *logging.Logger
	analyzer *seoquery.Analyzer
	fetcher  *pages.Fetcher
	builder  *jsonld.Builder
}

func NewHandler(
	logger *logging.Logger,
	analyzer *seoquery.Analyzer,
	fetcher *pages.Fetcher,
	builder *jsonld.Builder,
) *Handler {
	return &Handler{
		logger:   logger,
		analyzer: analyzer,
		fetcher:  fetcher,
		builder:  builder,
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputils.JSONResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestID(ctx)

	var payload AnalyzePayload
	if err := httputils.DecodeJSON(w, r, &payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}

	res, err := h.analyzer.Analyze(ctx, seoquery.Request{
		Title:       payload.Title,
		Description: payload.Description,
		Body:        payload.Body,
		Language:    payload.Language,
	})
	if err != nil {
		h.logger.Error("[%s] Analysis failed: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info("[%s] Analyzed page: query=%q type=%s language=%s", reqID, res.MainQuery, res.QueryType, res.Language)
	httputils.JSONResponse(w, http.StatusOK, AnalyzeResponse{
		JSONLD:   h.builder.Build(res),
		Analysis: res,
	})
}

func (h *Handler) HandleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestID(ctx)

	var payload AnalyzeURLPayload
	if err := httputils.DecodeJSON(w, r, &payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}
	if strings.TrimSpace(payload.URL) == "" {
		httputils.HandleError(w, fmt.Errorf("url is required: %w", internalerr.ErrInvalidInput))
		return
	}

	h.logger.Debug("[%s] Fetching %s", reqID, payload.URL)
	item, err := h.fetcher.Fetch(ctx, payload.URL)
	if err != nil {
		h.logger.Error("[%s] Fetch failed for %s: %v", reqID, payload.URL, err)
		httputils.HandleError(w, err)
		return
	}
	if payload.Language != "" {
		item.Language = payload.Language
	}

	res, err := h.analyzer.Analyze(ctx, item.Request())
	if err != nil {
		h.logger.Error("[%s] Analysis failed for %s: %v", reqID, item.URL, err)
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info("[%s] Analyzed %s: query=%q type=%s", reqID, item.URL, res.MainQuery, res.QueryType)
	httputils.JSONResponse(w, http.StatusOK, AnalyzeResponse{
		URL:      item.URL,
		JSONLD:   h.builder.Build(res),
		Analysis: res,
	})
}

func (h *Handler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := jsonld.Schema()
	if err != nil {
		h.logger.Error("[%s] Schema generation failed: %v", RequestID(r.Context()), err)
		httputils.HandleError(w, err)
		return
	}
	httputils.JSONResponse(w, http.StatusOK, schema)
}
