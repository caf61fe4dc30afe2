// Package normalizer converts raw fetched pages into the canonical
// article shape consumed by the formatters.
package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"wikiscraper/internal/models"
)

// Validation errors. All of them classify as source-data failures at
// batch level, but each carries its own message so a report can tell a
// missing page from a malformed response.
var (
	ErrNilRawArticle = errors.New("raw article is nil")
	ErrPageMissing   = errors.New("source reports the page does not exist")
	ErrMissingTitle  = errors.New("raw article has no title")
	ErrMissingPageID = errors.New("raw article has no page id")
)

// Validator checks that raw articles carry the mandatory fields.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate rejects raw articles that cannot be normalized. Optional
// fields (summary, categories, links and so on) are never required.
func (v *Validator) Validate(raw *models.RawArticle) error {
	if raw == nil {
		return ErrNilRawArticle
	}

	if raw.Missing {
		return fmt.Errorf("%w: %q", ErrPageMissing, raw.Title)
	}

	if strings.TrimSpace(raw.Title) == "" {
		return ErrMissingTitle
	}

	if raw.PageID <= 0 {
		return ErrMissingPageID
	}

	return nil
}
