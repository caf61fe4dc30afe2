package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"wikiscraper/internal/models"
)

const separatorWidth = 70

// headerLabelWidth aligns the colon column across mixed-width labels.
// CJK labels are two columns per rune, so plain %-8s padding would
// drift; widths are measured with runewidth instead.
const headerLabelWidth = 8

// Japanese field labels, matching the upstream report layout.
const (
	labelTitle      = "タイトル"
	labelPageID     = "ページID"
	labelURL        = "URL"
	labelLanguage   = "言語"
	labelRetrieved  = "取得日時"
	labelSummary    = "要約"
	labelFullText   = "本文"
	labelCategories = "カテゴリ"
	labelSections   = "セクション"
	labelLinks      = "リンク"
	labelReferences = "参照"
)

// Text renders an article as a plain-text report: labeled header
// lines, then one bracketed block per field, in the same fixed order
// as the markdown output. Empty fields keep their block label.
type Text struct{}

// NewText creates a plain-text formatter.
func NewText() *Text {
	return &Text{}
}

// Extension returns the file extension hint for text output.
func (t *Text) Extension() string {
	return ".txt"
}

// Render writes the labeled report.
func (t *Text) Render(article *models.Article) (string, error) {
	if article == nil {
		return "", ErrNilArticle
	}

	var sb strings.Builder

	writeHeaderLine(&sb, labelTitle, article.Title)
	writeHeaderLine(&sb, labelPageID, fmt.Sprintf("%d", article.PageID))
	writeHeaderLine(&sb, labelURL, article.URL)
	writeHeaderLine(&sb, labelLanguage, article.Language)
	writeHeaderLine(&sb, labelRetrieved, article.Timestamp)
	writeSeparator(&sb)

	writeTextBlock(&sb, labelSummary, article.Summary)
	writeTextBlock(&sb, labelFullText, article.FullText)
	writeListBlock(&sb, labelCategories, article.Categories)

	fmt.Fprintf(&sb, "【%s】\n", labelSections)
	writeSectionOutline(&sb, article.Sections, 0)
	sb.WriteString("\n")
	writeSeparator(&sb)

	writeListBlock(&sb, labelLinks, article.Links)
	writeListBlock(&sb, labelReferences, article.References)

	return sb.String(), nil
}

func writeHeaderLine(sb *strings.Builder, label, value string) {
	padding := headerLabelWidth - runewidth.StringWidth(label)
	if padding < 0 {
		padding = 0
	}

	fmt.Fprintf(sb, "%s%s: %s\n", label, strings.Repeat(" ", padding), value)
}

func writeSeparator(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")
}

func writeTextBlock(sb *strings.Builder, label, body string) {
	fmt.Fprintf(sb, "【%s】\n", label)

	if body != "" {
		sb.WriteString(body + "\n")
	}

	sb.WriteString("\n")
	writeSeparator(sb)
}

func writeListBlock(sb *strings.Builder, label string, items []string) {
	fmt.Fprintf(sb, "【%s】\n", label)

	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}

	sb.WriteString("\n")
	writeSeparator(sb)
}

func writeSectionOutline(sb *strings.Builder, sections []models.Section, indent int) {
	for _, s := range sections {
		fmt.Fprintf(sb, "%s- %s (レベル %d)\n", strings.Repeat("  ", indent), s.Title, s.Level)
		writeSectionOutline(sb, s.Subsections, indent+1)
	}
}
