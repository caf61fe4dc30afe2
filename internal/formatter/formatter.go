// Package formatter renders normalized articles into output documents.
package formatter

import (
	"errors"
	"fmt"

	"wikiscraper/internal/models"
)

// Format selection errors. Both abort a batch before any fetch happens.
var (
	ErrEmptySelection = errors.New("no output format selected")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// ErrNilArticle is returned when a formatter receives no article. An
// empty field is always renderable; only a missing record is not.
var ErrNilArticle = errors.New("article is nil")

// Recognized format names. FormatAll expands to the other three.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatText     = "text"
	FormatAll      = "all"
)

// Formatter renders one article into a payload plus a file extension
// hint. Rendering the same article twice must yield identical bytes.
type Formatter interface {
	Render(article *models.Article) (string, error)
	Extension() string
}

// Options tunes rendering details that are not part of the record.
type Options struct {
	// IncludeFullText adds the article body to the markdown output,
	// which otherwise carries only summary and structure.
	IncludeFullText bool
}

// Select resolves a format selection into concrete formatters, always
// in the fixed markdown, json, text order. Duplicate names collapse.
func Select(names []string, opts Options) ([]Formatter, error) {
	if len(names) == 0 {
		return nil, ErrEmptySelection
	}

	want := make(map[string]bool)

	for _, name := range names {
		switch name {
		case FormatMarkdown, FormatJSON, FormatText:
			want[name] = true
		case FormatAll:
			want[FormatMarkdown] = true
			want[FormatJSON] = true
			want[FormatText] = true
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}
	}

	var formatters []Formatter

	if want[FormatMarkdown] {
		formatters = append(formatters, &Markdown{IncludeFullText: opts.IncludeFullText})
	}

	if want[FormatJSON] {
		formatters = append(formatters, NewJSON())
	}

	if want[FormatText] {
		formatters = append(formatters, NewText())
	}

	return formatters, nil
}
