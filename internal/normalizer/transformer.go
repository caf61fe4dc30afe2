package normalizer

import (
	"strings"
	"time"

	"wikiscraper/internal/models"
	"wikiscraper/pkg/utils"
)

// TimestampLayout is the ISO-8601 layout stamped on normalized
// articles, with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// sectionTextLimit caps section text length in runes, matching the
// upstream fetch policy.
const sectionTextLimit = 500

// Transformer flattens a raw article into the normalized Article shape.
type Transformer struct {
	now func() time.Time
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{now: time.Now}
}

// Transform builds the normalized article. The timestamp is stamped
// here exactly once per fetch; every formatter reuses it as-is.
func (t *Transformer) Transform(raw *models.RawArticle, language string) *models.Article {
	return &models.Article{
		Title:      strings.TrimSpace(raw.Title),
		PageID:     raw.PageID,
		URL:        strings.TrimSpace(raw.URL),
		Language:   language,
		Timestamp:  t.now().Format(TimestampLayout),
		Summary:    strings.TrimSpace(raw.Summary),
		FullText:   strings.TrimSpace(raw.FullText),
		Categories: trimAll(raw.Categories),
		Sections:   transformSections(raw.Sections),
		Links:      capLinks(raw.Links),
		References: copyAll(raw.References),
	}
}

// transformSections keeps the source's nesting and level numbering.
// Sections with empty titles are preserved; only the text is subject
// to the length cap.
func transformSections(raw []models.RawSection) []models.Section {
	sections := make([]models.Section, 0, len(raw))

	for _, s := range raw {
		sections = append(sections, models.Section{
			Title:       s.Title,
			Text:        utils.Truncate(s.Text, sectionTextLimit),
			Level:       s.Level,
			Subsections: transformSections(s.Subsections),
		})
	}

	return sections
}

// capLinks copies at most LinkLimit links, first ones in source order.
func capLinks(links []string) []string {
	if len(links) > models.LinkLimit {
		links = links[:models.LinkLimit]
	}

	out := make([]string, len(links))
	copy(out, links)

	return out
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}

	return out
}

func copyAll(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)

	return out
}
