package wiki

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wikiscraper/pkg/utils"
)

// extractReferences pulls the footnote texts out of rendered article
// HTML. MediaWiki emits them as ordered lists with the "references"
// class, in citation order.
func extractReferences(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article HTML: %w", err)
	}

	var refs []string

	doc.Find("ol.references li").Each(func(_ int, sel *goquery.Selection) {
		text := utils.NormalizeWhitespace(sel.Text())
		if text != "" {
			refs = append(refs, text)
		}
	})

	return refs, nil
}
