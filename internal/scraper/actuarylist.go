package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/jobportal/internal/client"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

const (
	jobCardSelector  = "article div[class*='Job_job-card']"
	locationSelector = "div[class*='locations'] a"
	tagSelector      = "div[class*='tags'] a"

	cardDateLayout = "2 Jan 2006"
	isoDateLayout  = "2006-01-02T15:04:05"
)

// Card is a job card scraped from a job board listing page
type Card struct {
	Title       string
	Company     string
	Locations   []string
	Tags        []string
	PostingDate string // ISO 8601, empty when the card's date could not be read
}

// Complete reports whether the card has the fields the backend requires
func (c Card) Complete() bool {
	return c.Title != "" && c.Company != ""
}

// Payload converts the card into a create request. The backend stores a
// single location, so the first listed one is used.
func (c Card) Payload(jobType string) models.JobPayload {
	location := ""
	if len(c.Locations) > 0 {
		location = c.Locations[0]
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.JobPayload{
		Title:       c.Title,
		Company:     c.Company,
		Location:    location,
		JobType:     jobType,
		Tags:        tags,
		PostingDate: c.PostingDate,
	}
}

// FetchListing downloads a job board listing page
func FetchListing(ctx context.Context, httpClient *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range client.GetBrowserHeaders() {
		req.Header[key] = values
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return ParseListing(bytes.NewReader(body))
}

// ParseListing parses a saved or downloaded listing page
func ParseListing(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// ExtractCards reads the job cards from a listing page, stopping after limit
// cards when limit is positive
func ExtractCards(doc *goquery.Document, limit int) []Card {
	var cards []Card

	doc.Find(jobCardSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && i >= limit {
			return false
		}

		paragraphs := s.Find("p")
		card := Card{
			Title:     strings.TrimSpace(paragraphs.Eq(0).Text()),
			Company:   strings.TrimSpace(paragraphs.Eq(1).Text()),
			Locations: texts(s.Find(locationSelector)),
			Tags:      texts(s.Find(tagSelector)),
		}

		if paragraphs.Length() > 0 {
			card.PostingDate = cardDate(strings.TrimSpace(paragraphs.Last().Text()))
		}

		cards = append(cards, card)
		return true
	})

	return cards
}

// cardDate converts the card's "4 Oct 2025" date into ISO form. Relative or
// unreadable dates are dropped and the backend stamps the job itself.
func cardDate(text string) string {
	parsed, err := time.Parse(cardDateLayout, text)
	if err != nil {
		return ""
	}
	return parsed.Format(isoDateLayout)
}

func texts(sel *goquery.Selection) []string {
	result := []string{}
	sel.Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			result = append(result, t)
		}
	})
	return result
}
