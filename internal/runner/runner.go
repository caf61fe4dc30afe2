// Package runner orchestrates batch article exports. Items are
// processed one at a time, strictly in input order, out of deference
// to the shared upstream source.
package runner

import (
	"fmt"
	"strings"

	"wikiscraper/internal/formatter"
	"wikiscraper/internal/logger"
	"wikiscraper/internal/models"
)

// Request names one article to export.
type Request struct {
	Title    string
	Language string
}

// Fetcher supplies the raw page for a title. Not-found and transport
// failures must surface as distinguishable errors; both end up in the
// per-item failure reason.
type Fetcher interface {
	Fetch(title, language string) (*models.RawArticle, error)
}

// Normalizer converts a raw page into the canonical article.
type Normalizer interface {
	Process(raw *models.RawArticle, language string) (*models.Article, error)
}

// Writer persists one rendered payload. The stem is the article title;
// filename derivation is the writer's concern.
type Writer interface {
	Write(payload, stem, extension string) error
}

// Runner processes requests sequentially. A single item's failure
// never aborts the batch; only a bad format selection does, before any
// fetch happens.
type Runner struct {
	fetcher    Fetcher
	normalizer Normalizer
	writer     Writer
	log        *logger.Logger

	// FormatOptions tunes the selected formatters.
	FormatOptions formatter.Options
}

// New creates a batch runner.
func New(fetcher Fetcher, normalizer Normalizer, writer Writer, log *logger.Logger) *Runner {
	return &Runner{
		fetcher:    fetcher,
		normalizer: normalizer,
		writer:     writer,
		log:        log,
	}
}

// Run exports every requested article in the selected formats and
// returns the batch report. The returned error is non-nil only for an
// invalid format selection.
func (r *Runner) Run(requests []Request, formats []string) (*Report, error) {
	formatters, err := formatter.Select(formats, r.FormatOptions)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(requests)}

	for _, req := range requests {
		result := r.processItem(req, formatters)
		report.add(result)
	}

	return report, nil
}

// processItem walks one request through fetch, normalize and every
// selected format. A write failure in one format does not stop the
// remaining formats for the same article.
func (r *Runner) processItem(req Request, formatters []formatter.Formatter) ItemResult {
	result := ItemResult{Title: req.Title, Language: req.Language}

	r.log.Info("fetching article", "title", req.Title, "language", req.Language)

	raw, err := r.fetcher.Fetch(req.Title, req.Language)
	if err != nil {
		r.log.Warn("fetch failed", "title", req.Title, "error", err)
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("fetch: %v", err)

		return result
	}

	article, err := r.normalizer.Process(raw, req.Language)
	if err != nil {
		r.log.Warn("normalization failed", "title", req.Title, "error", err)
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("normalize: %v", err)

		return result
	}

	var failures []string

	for _, f := range formatters {
		payload, renderErr := f.Render(article)
		if renderErr != nil {
			r.log.Error("render failed", "title", req.Title, "extension", f.Extension(), "error", renderErr)
			failures = append(failures, fmt.Sprintf("render %s: %v", f.Extension(), renderErr))

			continue
		}

		if writeErr := r.writer.Write(payload, article.Title, f.Extension()); writeErr != nil {
			r.log.Warn("write failed", "title", req.Title, "extension", f.Extension(), "error", writeErr)
			failures = append(failures, fmt.Sprintf("write %s: %v", f.Extension(), writeErr))
		}
	}

	if len(failures) > 0 {
		result.Status = StatusPartiallyFailed
		result.Reason = strings.Join(failures, "; ")

		return result
	}

	result.Status = StatusSucceeded

	return result
}
