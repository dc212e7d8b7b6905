package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/jobportal/internal/client"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

// JobCreator saves a job on the backend
type JobCreator interface {
	CreateJob(ctx context.Context, payload models.JobPayload) (models.Record, error)
}

// Options configures an Importer
type Options struct {
	Limit          int
	MaxRetries     int
	RetryDelay     time.Duration
	DefaultJobType string
	// Progress receives a progress bar while posting; nil disables it
	Progress io.Writer
}

// Summary counts what happened to the cards of one import run
type Summary struct {
	Found   int `json:"found"`
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Importer posts job cards scraped from a job board to the backend
type Importer struct {
	creator    JobCreator
	httpClient *http.Client
	opts       Options
}

// NewImporter creates an importer that saves jobs through creator
func NewImporter(creator JobCreator, httpClient *http.Client, opts Options) *Importer {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient()
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	if opts.DefaultJobType == "" {
		opts.DefaultJobType = models.JobTypeFullTime
	}
	return &Importer{creator: creator, httpClient: httpClient, opts: opts}
}

// ImportURL scrapes the listing page at pageURL and saves its jobs
func (im *Importer) ImportURL(ctx context.Context, pageURL string) (Summary, error) {
	doc, err := FetchListing(ctx, im.httpClient, pageURL)
	if err != nil {
		return Summary{}, err
	}
	return im.importDocument(ctx, doc)
}

// ImportHTML saves the jobs of an already downloaded listing page
func (im *Importer) ImportHTML(ctx context.Context, r io.Reader) (Summary, error) {
	doc, err := ParseListing(r)
	if err != nil {
		return Summary{}, err
	}
	return im.importDocument(ctx, doc)
}

func (im *Importer) importDocument(ctx context.Context, doc *goquery.Document) (Summary, error) {
	cards := ExtractCards(doc, im.opts.Limit)
	summary := Summary{Found: len(cards)}

	var bar *pb.ProgressBar
	if im.opts.Progress != nil && len(cards) > 0 {
		bar = pb.New(len(cards)).SetWriter(im.opts.Progress).Start()
		defer bar.Finish()
	}

	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		switch {
		case !card.Complete():
			log.Printf("[SKIPPED] Missing title/company, skipping job.")
			summary.Skipped++
		case im.post(ctx, card.Payload(im.opts.DefaultJobType)):
			summary.Saved++
		default:
			summary.Failed++
		}

		if bar != nil {
			bar.Increment()
		}
	}

	return summary, nil
}

// post creates the job, retrying up to MaxRetries times
func (im *Importer) post(ctx context.Context, payload models.JobPayload) bool {
	for attempt := 1; attempt <= im.opts.MaxRetries; attempt++ {
		_, err := im.creator.CreateJob(ctx, payload)
		if err == nil {
			return true
		}
		log.Printf("[FAILED] %s: attempt %d/%d: %v", payload.Title, attempt, im.opts.MaxRetries, err)

		if attempt == im.opts.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(im.opts.RetryDelay):
		}
	}
	return false
}

func (s Summary) String() string {
	return fmt.Sprintf("found %d, saved %d, skipped %d, failed %d", s.Found, s.Saved, s.Skipped, s.Failed)
}
