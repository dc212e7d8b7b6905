package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fr4nk3nst1ner/jobportal/internal/client"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
)

const (
	listPath = "/api/jobs/list"
	jobsPath = "/api/jobs"
)

// Client talks to the job portal REST backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL. A nil httpClient uses the shared default client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the backend origin the client was configured with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListJobs fetches every job the backend returns
func (c *Client) ListJobs(ctx context.Context) ([]models.Record, error) {
	body, err := c.do(ctx, "list jobs", http.MethodGet, listPath, nil)
	if err != nil {
		return nil, err
	}

	var list JobList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &NetworkError{Op: "list jobs", URL: c.baseURL + listPath, Err: fmt.Errorf("failed to parse job list: %w", err)}
	}
	return list.Jobs, nil
}

// CreateJob creates a job and returns the record the backend stored
func (c *Client) CreateJob(ctx context.Context, payload models.JobPayload) (models.Record, error) {
	body, err := c.do(ctx, "create job", http.MethodPost, jobsPath, payload)
	if err != nil {
		return nil, err
	}
	return decodeJob(body), nil
}

// UpdateJob replaces the fields of job id with the payload
func (c *Client) UpdateJob(ctx context.Context, id int, payload models.JobPayload) (models.Record, error) {
	body, err := c.do(ctx, "update job", http.MethodPut, fmt.Sprintf("%s/%d", jobsPath, id), payload)
	if err != nil {
		return nil, err
	}
	return decodeJob(body), nil
}

// DeleteJob removes job id
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete job", http.MethodDelete, fmt.Sprintf("%s/%d", jobsPath, id), nil)
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{
			Op:         op,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	return body, nil
}

// decodeJob unwraps the backend's {"message": ..., "job": {...}} envelope when present
func decodeJob(body []byte) models.Record {
	var record models.Record
	if err := json.Unmarshal(body, &record); err != nil || record == nil {
		return models.Record{}
	}
	if inner, ok := record["job"].(map[string]any); ok {
		return models.Record(inner)
	}
	return record
}
