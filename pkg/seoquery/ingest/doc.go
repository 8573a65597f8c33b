package ingest

import (
	"fmt"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
)

// Page is the text content of a web page as handed to the analyzer.
type Page struct {
	URL         string
	Title       string
	Description string
	BodyText    string
}

// Validate checks that the page carries the fields the analysis needs.
// Title and body are required; URL and description are optional.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("page title is required: %w", internalerr.ErrInvalidInput)
	}

	if strings.TrimSpace(p.BodyText) == "" {
		return fmt.Errorf("page body text is required: %w", internalerr.ErrInvalidInput)
	}

	return nil
}

// Combined joins title, description and body with single spaces,
// skipping blank parts.
func (p *Page) Combined() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Title, p.Description, p.BodyText} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
