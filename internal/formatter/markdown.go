package formatter

import (
	"fmt"
	"strings"

	"wikiscraper/internal/models"
)

const markdownRule = "---"

// Markdown renders an article as a markdown document. The full text is
// omitted unless IncludeFullText is set; summary plus the section
// outline usually carries enough.
type Markdown struct {
	IncludeFullText bool
}

// NewMarkdown creates a markdown formatter without the full-text block.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Extension returns the file extension hint for markdown output.
func (m *Markdown) Extension() string {
	return ".md"
}

// Render writes the fixed block order: title, metadata, summary,
// categories, sections, links, references. Empty sequences still get
// their heading so outputs stay diff-stable across articles.
func (m *Markdown) Render(article *models.Article) (string, error) {
	if article == nil {
		return "", ErrNilArticle
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", article.Title)
	fmt.Fprintf(&sb, "**Page ID**: %d  \n", article.PageID)
	fmt.Fprintf(&sb, "**URL**: %s  \n", article.URL)
	fmt.Fprintf(&sb, "**Language**: %s  \n", article.Language)
	fmt.Fprintf(&sb, "**Retrieved**: %s  \n\n", article.Timestamp)
	sb.WriteString(markdownRule + "\n\n")

	sb.WriteString("## Summary\n\n")
	if article.Summary != "" {
		sb.WriteString(article.Summary + "\n")
	}
	sb.WriteString("\n" + markdownRule + "\n\n")

	if m.IncludeFullText {
		sb.WriteString("## Full Text\n\n")
		if article.FullText != "" {
			sb.WriteString(article.FullText + "\n")
		}
		sb.WriteString("\n" + markdownRule + "\n\n")
	}

	sb.WriteString("## Categories\n\n")
	for _, cat := range article.Categories {
		fmt.Fprintf(&sb, "- %s\n", cat)
	}
	sb.WriteString("\n" + markdownRule + "\n\n")

	sb.WriteString("## Sections\n\n")
	writeSectionHeadings(&sb, article.Sections)
	sb.WriteString(markdownRule + "\n\n")

	sb.WriteString("## Links\n\n")
	for _, link := range article.Links {
		fmt.Fprintf(&sb, "- %s\n", link)
	}
	sb.WriteString("\n" + markdownRule + "\n\n")

	sb.WriteString("## References\n\n")
	for i, ref := range article.References {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ref)
	}

	return sb.String(), nil
}

// writeSectionHeadings renders each section as a heading one level
// below the document H1, so top-level sections become H2, their
// children H3 and so on. Markdown only has six heading levels; deeper
// nesting stays at H6.
func writeSectionHeadings(sb *strings.Builder, sections []models.Section) {
	for _, s := range sections {
		depth := s.Level + 1
		if depth > 6 {
			depth = 6
		}

		fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", depth), s.Title)

		if s.Text != "" {
			sb.WriteString(s.Text + "\n\n")
		}

		writeSectionHeadings(sb, s.Subsections)
	}
}
