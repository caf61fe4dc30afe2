// Package models defines the data structures shared by the scraper pipeline.
package models

// LinkLimit caps how many links a normalized article keeps. The source
// may report thousands; only the first LinkLimit survive, in source order.
const LinkLimit = 100

// Section is one node of an article's outline. Subsections nest
// arbitrarily deep; a section with no subsections is a leaf. Level is
// the nesting depth as reported by the source, starting at 1.
type Section struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Level       int       `json:"level"`
	Subsections []Section `json:"subsections"`
}

// Article is the normalized form of one fetched page. It is built once
// per fetch and treated as read-only by every formatter, so all output
// formats for the same fetch share one timestamp.
type Article struct {
	Title      string    `json:"title"`
	PageID     int       `json:"pageid"`
	URL        string    `json:"url"`
	Language   string    `json:"language"`
	Timestamp  string    `json:"timestamp"`
	Summary    string    `json:"summary"`
	FullText   string    `json:"full_text"`
	Categories []string  `json:"categories"`
	Sections   []Section `json:"sections"`
	Links      []string  `json:"links"`
	References []string  `json:"references"`
}
