package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.assemblyai.com/v2"
	requestTimeout = 15 * time.Second
	pollInterval   = 2 * time.Second
)

// Result is a finished transcription.
type Result struct {
	Text     string
	Language string
}

// Transcriber turns a reachable audio URL into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (*Result, error)
}

// Client calls the AssemblyAI transcription REST API: submit a job, then
// poll until it settles.
type Client struct {
	apiKey     string
	baseURL    string
	interval   time.Duration
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		interval: pollInterval,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type submitRequest struct {
	AudioURL          string `json:"audio_url"`
	LanguageDetection bool   `json:"language_detection"`
}

type transcriptResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
	Error        string `json:"error"`
}

func (c *Client) Transcribe(ctx context.Context, audioURL string) (*Result, error) {
	job, err := c.submit(ctx, audioURL)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		switch job.Status {
		case "completed":
			return &Result{Text: job.Text, Language: job.LanguageCode}, nil
		case "error":
			return nil, fmt.Errorf("transcribe: job failed: %s", job.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		job, err = c.poll(ctx, job.ID)
		if err != nil {
			return nil, err
		}
	}
}

func (c *Client) submit(ctx context.Context, audioURL string) (*transcriptResponse, error) {
	body, err := json.Marshal(submitRequest{AudioURL: audioURL, LanguageDetection: true})
	if err != nil {
		return nil, fmt.Errorf("transcribe: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transcribe: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) poll(ctx context.Context, id string) (*transcriptResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("transcribe: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*transcriptResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	defer resp.Body.Close()

	var parsed transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("transcribe: decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if parsed.Error != "" {
			return nil, fmt.Errorf("transcribe: upstream status %d: %s", resp.StatusCode, parsed.Error)
		}
		return nil, fmt.Errorf("transcribe: upstream status %d", resp.StatusCode)
	}
	return &parsed, nil
}
