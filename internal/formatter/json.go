package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"wikiscraper/internal/models"
)

// JSON renders the article as a single indented object. Key order
// follows the Article struct so repeated runs diff cleanly, and
// non-ASCII text is written literally rather than \u-escaped.
type JSON struct{}

// NewJSON creates a JSON formatter.
func NewJSON() *JSON {
	return &JSON{}
}

// Extension returns the file extension hint for JSON output.
func (j *JSON) Extension() string {
	return ".json"
}

// Render serializes the full article, including the nested section
// tree. The output parses back into the same record.
func (j *JSON) Render(article *models.Article) (string, error) {
	if article == nil {
		return "", ErrNilArticle
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(article); err != nil {
		return "", fmt.Errorf("failed to encode article: %w", err)
	}

	return buf.String(), nil
}
