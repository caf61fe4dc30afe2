// Package main provides the wikiscraper command that fetches Wikipedia
// articles and exports them as markdown, JSON or plain text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"wikiscraper/internal/config"
	"wikiscraper/internal/formatter"
	"wikiscraper/internal/logger"
	"wikiscraper/internal/normalizer"
	"wikiscraper/internal/runner"
	"wikiscraper/internal/storage"
	"wikiscraper/internal/wiki"
)

func main() {
	title := flag.String("title", "", "Wikipedia article title to fetch")
	inputs := flag.String("inputs", "", "Path to a file with one article title per line")
	format := flag.String("format", "", "Output formats, comma separated: markdown, json, text or all")
	lang := flag.String("lang", "", "Language edition code (e.g. ja, en)")
	output := flag.String("output", "", "Directory for exported files")
	fullText := flag.Bool("full-text", false, "Include the article body in markdown output")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	// Flags override config file values.
	if *lang != "" {
		cfg.Scraper.Language = *lang
	}

	if *output != "" {
		cfg.Output.Dir = *output
	}

	if *format != "" {
		cfg.Output.Formats = strings.Split(*format, ",")
	}

	if *fullText {
		cfg.Output.IncludeFullText = true
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if *title == "" && *inputs == "" {
		log.Error("Please provide -title or -inputs")
		flag.PrintDefaults()
		os.Exit(1)
	}

	requests, err := buildRequests(*title, *inputs, cfg.Scraper.Language)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	log.Info("🚀 Starting Wikipedia export",
		"articles", len(requests),
		"language", cfg.Scraper.Language,
		"formats", strings.Join(cfg.Output.Formats, ","),
	)

	client := wiki.NewClientWithConfig(&cfg.Retry, cfg.Scraper.UserAgent, log)

	writer, err := storage.NewFileWriter(cfg.Output.Dir)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	run := runner.New(client, normalizer.NewProcessor(), writer, log)
	run.FormatOptions = formatter.Options{IncludeFullText: cfg.Output.IncludeFullText}

	report, err := run.Run(requests, cfg.Output.Formats)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Batch aborted: %v", err))
		os.Exit(1)
	}

	printReport(report)
}

// buildRequests expands -inputs (one title per line, blank lines
// skipped) or falls back to the single -title. When both are given,
// the inputs file wins.
func buildRequests(title, inputs, language string) ([]runner.Request, error) {
	if inputs == "" {
		return []runner.Request{{Title: title, Language: language}}, nil
	}

	file, err := os.Open(inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to open inputs file: %w", err)
	}
	defer file.Close()

	var requests []runner.Request

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		requests = append(requests, runner.Request{Title: line, Language: language})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inputs file: %w", err)
	}

	return requests, nil
}

func printReport(report *runner.Report) {
	fmt.Println("\n------------------------------------------------")
	fmt.Println("📊 Batch Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Requested:        %d\n", report.Total)
	fmt.Printf("Succeeded:        %d\n", report.Succeeded)
	fmt.Printf("Failed:           %d\n", report.Failed)
	fmt.Printf("Partially failed: %d\n", report.PartiallyFailed)

	for _, item := range report.Items {
		if item.Status == runner.StatusSucceeded {
			continue
		}

		fmt.Printf("  - %s (%s): %s\n", item.Title, item.Status, item.Reason)
	}

	fmt.Println("------------------------------------------------")
}
