package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"wikiscraper/internal/formatter"
	"wikiscraper/internal/logger"
	"wikiscraper/internal/models"
	"wikiscraper/internal/normalizer"
)

var errBoom = errors.New("connection refused")

// fakeFetcher serves canned raw articles and records call order.
type fakeFetcher struct {
	failTitles map[string]error
	calls      []string
}

func (f *fakeFetcher) Fetch(title, language string) (*models.RawArticle, error) {
	f.calls = append(f.calls, title)

	if err, ok := f.failTitles[title]; ok {
		return nil, err
	}

	return &models.RawArticle{
		Title:  title,
		PageID: 100 + len(f.calls),
		URL:    "https://" + language + ".wikipedia.org/wiki/" + title,
	}, nil
}

// fakeWriter collects payloads in memory and can fail per extension.
type fakeWriter struct {
	failExtensions map[string]error
	written        map[string]string
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{written: make(map[string]string)}
}

func (w *fakeWriter) Write(payload, stem, extension string) error {
	if err, ok := w.failExtensions[extension]; ok {
		return err
	}

	w.written[stem+extension] = payload

	return nil
}

func newTestRunner(fetcher Fetcher, writer Writer) *Runner {
	return New(fetcher, normalizer.NewProcessor(), writer, logger.NewLogger("error"))
}

func requestsFor(titles ...string) []Request {
	requests := make([]Request, 0, len(titles))
	for _, title := range titles {
		requests = append(requests, Request{Title: title, Language: "ja"})
	}

	return requests
}

func TestRunner_Run_AllSucceed(t *testing.T) {
	fetcher := &fakeFetcher{}
	writer := newFakeWriter()

	report, err := newTestRunner(fetcher, writer).Run(requestsFor("Python", "Go"), []string{"all"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Total != 2 || report.Succeeded != 2 || report.Failed != 0 || report.PartiallyFailed != 0 {
		t.Fatalf("report = %+v, want 2/2/0/0", report)
	}

	// One file per (article, format) pair.
	if len(writer.written) != 6 {
		t.Errorf("wrote %d payloads, want 6", len(writer.written))
	}
}

func TestRunner_Run_FetchFailureIsIsolated(t *testing.T) {
	fetcher := &fakeFetcher{failTitles: map[string]error{"B": errBoom}}
	writer := newFakeWriter()

	report, err := newTestRunner(fetcher, writer).Run(requestsFor("A", "B", "C"), []string{"json"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Succeeded != 2 || report.Failed != 1 {
		t.Fatalf("report = %+v, want succeeded 2 failed 1", report)
	}

	// The failing item never aborts the batch; later items still run.
	if len(fetcher.calls) != 3 {
		t.Errorf("fetch called %d times, want 3", len(fetcher.calls))
	}

	if _, ok := writer.written["A.json"]; !ok {
		t.Error("payload for A missing")
	}

	if _, ok := writer.written["C.json"]; !ok {
		t.Error("payload for C missing")
	}

	failed := report.FailedTitles()
	if len(failed) != 1 || failed[0] != "B" {
		t.Errorf("FailedTitles() = %v, want [B]", failed)
	}

	if !strings.Contains(report.Items[1].Reason, "connection refused") {
		t.Errorf("failure reason %q does not carry the fetch error", report.Items[1].Reason)
	}
}

func TestRunner_Run_NormalizeFailureIsIsolated(t *testing.T) {
	fetcher := &fakeFetcher{failTitles: map[string]error{}}
	// A fetch that reports the page missing fails at normalization.
	missingFetcher := fetchFunc(func(title, language string) (*models.RawArticle, error) {
		if title == "Ghost" {
			return &models.RawArticle{Title: title, PageID: 1, Missing: true}, nil
		}

		return fetcher.Fetch(title, language)
	})

	writer := newFakeWriter()

	report, err := newTestRunner(missingFetcher, writer).Run(requestsFor("Python", "Ghost"), []string{"text"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 1 {
		t.Fatalf("report = %+v, want succeeded 1 failed 1", report)
	}

	if !strings.Contains(report.Items[1].Reason, "normalize") {
		t.Errorf("reason %q should classify as a normalization failure", report.Items[1].Reason)
	}
}

type fetchFunc func(title, language string) (*models.RawArticle, error)

func (f fetchFunc) Fetch(title, language string) (*models.RawArticle, error) {
	return f(title, language)
}

func TestRunner_Run_WriteFailureIsPartial(t *testing.T) {
	fetcher := &fakeFetcher{}
	writer := newFakeWriter()
	writer.failExtensions = map[string]error{".json": errors.New("disk full")}

	report, err := newTestRunner(fetcher, writer).Run(requestsFor("Python"), []string{"all"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.PartiallyFailed != 1 || report.Succeeded != 0 {
		t.Fatalf("report = %+v, want one partially-failed item", report)
	}

	// The failing format must not block the other formats.
	if _, ok := writer.written["Python.md"]; !ok {
		t.Error("markdown payload missing despite only the JSON write failing")
	}

	if _, ok := writer.written["Python.txt"]; !ok {
		t.Error("text payload missing despite only the JSON write failing")
	}

	if !strings.Contains(report.Items[0].Reason, "disk full") {
		t.Errorf("reason %q does not carry the write error", report.Items[0].Reason)
	}
}

func TestRunner_Run_BadSelectionFailsBeforeAnyFetch(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		wantErr   error
	}{
		{name: "empty", selection: nil, wantErr: formatter.ErrEmptySelection},
		{name: "unknown", selection: []string{"yaml"}, wantErr: formatter.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{}

			_, err := newTestRunner(fetcher, newFakeWriter()).Run(requestsFor("Python"), tt.selection)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if len(fetcher.calls) != 0 {
				t.Errorf("fetch called %d times before selection validation, want 0", len(fetcher.calls))
			}
		})
	}
}

func TestRunner_Run_SequentialInputOrder(t *testing.T) {
	fetcher := &fakeFetcher{}

	titles := make([]string, 20)
	for i := range titles {
		titles[i] = fmt.Sprintf("Article %02d", i)
	}

	_, err := newTestRunner(fetcher, newFakeWriter()).Run(requestsFor(titles...), []string{"markdown"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for i, title := range titles {
		if fetcher.calls[i] != title {
			t.Fatalf("calls[%d] = %s, want %s (input order must be preserved)", i, fetcher.calls[i], title)
		}
	}
}
