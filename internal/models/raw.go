package models

// RawSection mirrors the source's section tree before normalization.
type RawSection struct {
	Title       string
	Text        string
	Level       int
	Subsections []RawSection
}

// RawArticle is the narrow view of a fetched page that the normalizer
// consumes. Title and PageID are mandatory; everything else may be
// empty. Missing is set when the source reports that no such page
// exists.
type RawArticle struct {
	Title      string
	PageID     int
	URL        string
	Summary    string
	FullText   string
	Categories []string
	Sections   []RawSection
	Links      []string
	References []string
	Missing    bool
}
