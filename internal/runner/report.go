package runner

// ItemStatus classifies the outcome of one batch item.
type ItemStatus string

// Terminal item states. There are no retries within a batch pass.
const (
	StatusSucceeded       ItemStatus = "succeeded"
	StatusFailed          ItemStatus = "failed"
	StatusPartiallyFailed ItemStatus = "partially_failed"
)

// ItemResult records what happened to one requested title.
type ItemResult struct {
	Title    string
	Language string
	Status   ItemStatus
	Reason   string
}

// Report summarizes a batch run. Items appear in request order.
type Report struct {
	Items           []ItemResult
	Total           int
	Succeeded       int
	Failed          int
	PartiallyFailed int
}

func (r *Report) add(result ItemResult) {
	r.Items = append(r.Items, result)

	switch result.Status {
	case StatusSucceeded:
		r.Succeeded++
	case StatusFailed:
		r.Failed++
	case StatusPartiallyFailed:
		r.PartiallyFailed++
	}
}

// FailedTitles returns the titles that did not fully succeed, so a
// caller can re-run just those.
func (r *Report) FailedTitles() []string {
	var titles []string

	for _, item := range r.Items {
		if item.Status != StatusSucceeded {
			titles = append(titles, item.Title)
		}
	}

	return titles
}
