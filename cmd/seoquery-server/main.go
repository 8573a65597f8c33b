package main

import (
	"net/http"

	"github.com/Instilla-AI/seontology-mcp-server/internal/api"
	"github.com/Instilla-AI/seontology-mcp-server/internal/logging"
	"github.com/Instilla-AI/seontology-mcp-server/internal/pages"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/config"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/jsonld"
)

func main() {
	cfg := loadConfig()

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Info("Starting SEO query service")
	logger.Info("Environment: %s", cfg.Env)
	logger.Info("Log level: %s", cfg.LogLevel)

	analyzer, err := newAnalyzer(cfg.ConfigPath)
	if err != nil {
		logger.Error("Failed to load analyzer config %s: %v", cfg.ConfigPath, err)
		logger.Fatal("Invalid configuration")
	}

	handler := api.NewHandler(logger, analyzer, pages.NewFetcher(cfg.HTTPTimeout()), jsonld.New())

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	logger.Info("Endpoints:")
	logger.Info("  GET  /health")
	logger.Info("  POST /analyze")
	logger.Info("  POST /analyze/url")
	logger.Info("  GET  /schema")
	logger.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, api.WithRequestID(mux)))
}

func newAnalyzer(path string) (*seoquery.Analyzer, error) {
	if path == "" {
		return seoquery.NewDefault(), nil
	}
	tuning, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return seoquery.New(tuning)
}
