package wiki

// Response shapes for the MediaWiki Action API (format=json). Only the
// fields the client consumes are declared.

type queryResponse struct {
	Query struct {
		Pages map[string]pageData `json:"pages"`
	} `json:"query"`
}

type pageData struct {
	PageID     int            `json:"pageid"`
	Title      string         `json:"title"`
	FullURL    string         `json:"fullurl"`
	Extract    string         `json:"extract"`
	Missing    *string        `json:"missing"`
	Categories []categoryData `json:"categories"`
	Links      []linkData     `json:"links"`
}

type categoryData struct {
	Title string `json:"title"`
}

type linkData struct {
	Title string `json:"title"`
}

type parseResponse struct {
	Parse struct {
		Text map[string]string `json:"text"`
	} `json:"parse"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
