package wiki

import (
	"regexp"
	"strings"

	"wikiscraper/internal/models"
)

// Plain-text extracts mark headings as "== Title ==" lines; the number
// of equals signs minus one is the nesting level (== is a top-level
// section, level 1).
var headingPattern = regexp.MustCompile(`^(={2,6})\s*(.*?)\s*=+\s*$`)

type flatSection struct {
	title string
	text  string
	level int
}

// parseSections builds the section tree from a plain-text extract.
// Text before the first heading is the lead and belongs to the
// summary, not to any section.
func parseSections(fullText string) []models.RawSection {
	flat := splitHeadings(fullText)
	tree, _ := buildTree(flat, 0, 1)

	return tree
}

func splitHeadings(fullText string) []flatSection {
	var flat []flatSection

	var current *flatSection

	var body []string

	flush := func() {
		if current != nil {
			current.text = strings.TrimSpace(strings.Join(body, "\n"))
			flat = append(flat, *current)
		}

		body = nil
	}

	for _, line := range strings.Split(fullText, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()

			current = &flatSection{
				title: m[2],
				level: len(m[1]) - 1,
			}

			continue
		}

		if current != nil {
			body = append(body, line)
		}
	}

	flush()

	return flat
}

// buildTree consumes flat entries at or below the given level, nesting
// deeper entries under the preceding heading. Returns the subtree and
// the index of the first unconsumed entry.
func buildTree(flat []flatSection, start, level int) ([]models.RawSection, int) {
	sections := []models.RawSection{}

	i := start
	for i < len(flat) && flat[i].level >= level {
		node := models.RawSection{
			Title: flat[i].title,
			Text:  flat[i].text,
			Level: flat[i].level,
		}

		next := i + 1
		if next < len(flat) && flat[next].level > flat[i].level {
			node.Subsections, next = buildTree(flat, next, flat[i].level+1)
		}

		sections = append(sections, node)
		i = next
	}

	return sections, i
}
