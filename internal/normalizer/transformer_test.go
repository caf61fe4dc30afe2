package normalizer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"wikiscraper/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
}

func TestTransformer_Transform_LinkCap(t *testing.T) {
	tests := []struct {
		name      string
		linkCount int
		wantLen   int
	}{
		{name: "over the cap", linkCount: 150, wantLen: 100},
		{name: "exactly at the cap", linkCount: 100, wantLen: 100},
		{name: "under the cap", linkCount: 7, wantLen: 7},
		{name: "no links", linkCount: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := make([]string, tt.linkCount)
			for i := range links {
				links[i] = fmt.Sprintf("Link %03d", i)
			}

			tr := NewTransformer()
			tr.now = fixedClock

			article := tr.Transform(&models.RawArticle{
				Title:  "Python",
				PageID: 23862,
				Links:  links,
			}, "ja")

			if len(article.Links) != tt.wantLen {
				t.Fatalf("len(Links) = %d, want %d", len(article.Links), tt.wantLen)
			}

			// Truncation keeps the first entries in source order.
			for i, link := range article.Links {
				if link != links[i] {
					t.Fatalf("Links[%d] = %q, want %q", i, link, links[i])
				}
			}
		})
	}
}

func TestTransformer_Transform_Sections(t *testing.T) {
	tr := NewTransformer()
	tr.now = fixedClock

	raw := &models.RawArticle{
		Title:  "Python",
		PageID: 23862,
		Sections: []models.RawSection{
			{
				Title: "History",
				Text:  "Guido van Rossum began working on Python in the late 1980s.",
				Level: 1,
				Subsections: []models.RawSection{
					{Title: "Release dates", Level: 2},
				},
			},
			{Title: "", Text: "untitled but preserved", Level: 1},
		},
	}

	article := tr.Transform(raw, "ja")

	if len(article.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(article.Sections))
	}

	if len(article.Sections[0].Subsections) != 1 {
		t.Fatalf("len(Sections[0].Subsections) = %d, want 1", len(article.Sections[0].Subsections))
	}

	if article.Sections[0].Subsections[0].Level != 2 {
		t.Errorf("subsection level = %d, want 2 (no renumbering)", article.Sections[0].Subsections[0].Level)
	}

	if article.Sections[1].Title != "" {
		t.Errorf("empty-title section was altered: %q", article.Sections[1].Title)
	}

	// Leaf sections still serialize with an empty, non-nil subsection list.
	if article.Sections[1].Subsections == nil {
		t.Error("leaf section has nil Subsections, want empty slice")
	}
}

func TestTransformer_Transform_SectionTextTruncation(t *testing.T) {
	tr := NewTransformer()
	tr.now = fixedClock

	long := strings.Repeat("あ", 600)

	article := tr.Transform(&models.RawArticle{
		Title:    "Python",
		PageID:   23862,
		Sections: []models.RawSection{{Title: "History", Text: long, Level: 1}},
	}, "ja")

	got := article.Sections[0].Text
	want := strings.Repeat("あ", 500) + "..."

	if got != want {
		t.Errorf("section text not truncated at 500 runes: got %d runes", len([]rune(got)))
	}
}

func TestTransformer_Transform_FieldHandling(t *testing.T) {
	tr := NewTransformer()
	tr.now = fixedClock

	raw := &models.RawArticle{
		Title:      "  Python  ",
		PageID:     23862,
		URL:        " https://ja.wikipedia.org/wiki/Python ",
		Summary:    "  A programming language.  ",
		FullText:   "  body  ",
		Categories: []string{" プログラミング言語 ", "1991年のソフトウェア"},
		References: []string{"  Lutz, Learning Python  "},
	}

	article := tr.Transform(raw, "ja")

	if article.Title != "Python" {
		t.Errorf("Title = %q, want trimmed", article.Title)
	}

	if article.URL != "https://ja.wikipedia.org/wiki/Python" {
		t.Errorf("URL = %q, want trimmed", article.URL)
	}

	if article.Summary != "A programming language." {
		t.Errorf("Summary = %q, want trimmed", article.Summary)
	}

	if article.Categories[0] != "プログラミング言語" {
		t.Errorf("Categories[0] = %q, want trimmed", article.Categories[0])
	}

	// References pass through untouched, no trimming or filtering.
	if article.References[0] != "  Lutz, Learning Python  " {
		t.Errorf("References[0] = %q, want verbatim", article.References[0])
	}

	if article.Language != "ja" {
		t.Errorf("Language = %q, want ja", article.Language)
	}
}

func TestTransformer_Transform_TimestampStampedOnce(t *testing.T) {
	calls := 0

	tr := NewTransformer()
	tr.now = func() time.Time {
		calls++

		return fixedClock()
	}

	article := tr.Transform(&models.RawArticle{Title: "Python", PageID: 23862}, "ja")

	if calls != 1 {
		t.Errorf("clock read %d times during one normalization, want 1", calls)
	}

	want := "2025-03-14T09:26:53.589793"
	if article.Timestamp != want {
		t.Errorf("Timestamp = %q, want %q", article.Timestamp, want)
	}

	if _, err := time.Parse(TimestampLayout, article.Timestamp); err != nil {
		t.Errorf("Timestamp does not parse back with the layout: %v", err)
	}
}

func TestTransformer_Transform_EmptyCollectionsAreNonNil(t *testing.T) {
	tr := NewTransformer()
	tr.now = fixedClock

	article := tr.Transform(&models.RawArticle{Title: "Python", PageID: 23862}, "ja")

	if article.Categories == nil || article.Sections == nil || article.Links == nil || article.References == nil {
		t.Error("empty collections must be non-nil so JSON output shows [] instead of null")
	}
}
