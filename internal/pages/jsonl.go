package pages

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/internal/logging"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery"
)

// Item is one page of a JSONL batch.
type Item struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Language    string `json:"language,omitempty"`
}

// Request converts the item into an analysis request.
func (i Item) Request() seoquery.Request {
	return seoquery.Request{
		Title:       i.Title,
		Description: i.Description,
		Body:        i.Body,
		Language:    i.Language,
	}
}

// LoadFromJSONL loads items from a JSONL file. Malformed lines are logged
// and skipped; a file without any valid item is an error.
func LoadFromJSONL(path string, logger *logging.Logger) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Item
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			logger.Error("skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}
