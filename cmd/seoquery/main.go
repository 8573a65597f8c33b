package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Instilla-AI/seontology-mcp-server/internal/logging"
	"github.com/Instilla-AI/seontology-mcp-server/internal/pages"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/config"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/jsonld"
)

type options struct {
	title       string
	description string
	body        string
	lang        string
	configPath  string
	inputPath   string
	url         string
	timeout     time.Duration
}

func main() {
	var (
		title       = flag.String("title", "", "Page title")
		description = flag.String("description", "", "Meta description (optional)")
		body        = flag.String("body", "", "Body text")
		lang        = flag.String("lang", "", "Language tag, skips detection (optional)")
		configPath  = flag.String("config", "", "YAML tuning file (optional)")
		inputPath   = flag.String("input", "", "JSONL file of pages, one JSON-LD document per line")
		url         = flag.String("url", "", "Fetch and analyze a page")
		timeout     = flag.Duration("timeout", pages.DefaultTimeout, "Fetch timeout")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, error")
	)
	flag.Parse()

	logger := logging.NewLogger(*logLevel)
	opts := options{
		title:       *title,
		description: *description,
		body:        *body,
		lang:        *lang,
		configPath:  *configPath,
		inputPath:   *inputPath,
		url:         *url,
		timeout:     *timeout,
	}

	if err := run(context.Background(), opts, os.Stdout, logger); err != nil {
		logger.Fatal("seoquery: ", err)
	}
}

func run(ctx context.Context, opts options, out io.Writer, logger *logging.Logger) error {
	analyzer, err := buildAnalyzer(opts.configPath)
	if err != nil {
		return err
	}
	builder := jsonld.New()
	enc := json.NewEncoder(out)

	switch {
	case opts.inputPath != "":
		return runBatch(ctx, analyzer, builder, enc, opts.inputPath, logger)
	case opts.url != "":
		item, err := pages.NewFetcher(opts.timeout).Fetch(ctx, opts.url)
		if err != nil {
			return err
		}
		if opts.lang != "" {
			item.Language = opts.lang
		}
		logger.Debug("fetched %s: %q", item.URL, item.Title)
		return analyzeOne(ctx, analyzer, builder, enc, item.Request())
	default:
		return analyzeOne(ctx, analyzer, builder, enc, seoquery.Request{
			Title:       opts.title,
			Description: opts.description,
			Body:        opts.body,
			Language:    opts.lang,
		})
	}
}

func buildAnalyzer(configPath string) (*seoquery.Analyzer, error) {
	if configPath == "" {
		return seoquery.NewDefault(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return seoquery.New(cfg)
}

func analyzeOne(ctx context.Context, analyzer *seoquery.Analyzer, builder *jsonld.Builder, enc *json.Encoder, req seoquery.Request) error {
	res, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}
	return enc.Encode(builder.Build(res))
}

// runBatch analyzes every page of a JSONL file. Pages that fail are logged
// and skipped.
func runBatch(ctx context.Context, analyzer *seoquery.Analyzer, builder *jsonld.Builder, enc *json.Encoder, path string, logger *logging.Logger) error {
	items, err := pages.LoadFromJSONL(path, logger)
	if err != nil {
		return err
	}
	logger.Info("Loaded %d pages from %s", len(items), path)

	failed := 0
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := analyzeOne(ctx, analyzer, builder, enc, item.Request()); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Failed to analyze page %d (%s): %v", i+1, item.URL, err)
			failed++
		}
	}

	logger.Info("Analyzed %d/%d pages", len(items)-failed, len(items))
	if failed == len(items) {
		return fmt.Errorf("all %d pages failed", failed)
	}
	return nil
}
