package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/extract"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

const (
	// ProviderName identifies the language model upstream.
	ProviderName = "gemini"

	// DefaultBaseURL is the Generative Language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds one recognition call.
	DefaultTimeout = 10 * time.Second
)

// ErrEmptyResponse means the model returned no candidate text.
var ErrEmptyResponse = errors.New("gemini returned no content")

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Metrics receives upstream call outcomes.
type Metrics interface {
	RecordRequest(provider, operation string, duration time.Duration, err error)
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	// APIKey is required.
	APIKey string

	// BaseURL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// Model (optional, defaults to DefaultModel).
	Model string

	// HTTPClient overrides the resilient client (optional).
	HTTPClient HTTPDoer

	// Timeout bounds each call (optional, defaults to 10s).
	Timeout time.Duration

	// Registry tracks upstream health (optional).
	Registry *resilience.Registry

	// Metrics is optional.
	Metrics Metrics

	// Logger for client operations.
	Logger zerolog.Logger
}

// Gemini recognizes trip endpoints with a Gemini model.
type Gemini struct {
	apiKey     string
	endpoint   string
	httpClient HTTPDoer
	timeout    time.Duration
	metrics    Metrics
	logger     zerolog.Logger
}

// NewGemini creates a Gemini recognizer.
func NewGemini(cfg GeminiConfig) *Gemini {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		clientCfg.MaxRetries = 1
		clientCfg.Registry = cfg.Registry
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Gemini{
		apiKey:     cfg.APIKey,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", baseURL, url.PathEscape(model)),
		httpClient: httpClient,
		timeout:    timeout,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Recognize asks the model for the endpoints of query. Any failure yields
// an empty pair.
func (g *Gemini) Recognize(ctx context.Context, query string) extract.LocationPair {
	text, err := g.GenerateContent(ctx, Prompt(query))
	if err != nil {
		g.logger.Warn().Err(err).Msg("location recognition failed")
		return extract.LocationPair{}
	}
	return ParseLocations(text)
}

// GenerateContent sends prompt and returns the first candidate's text.
func (g *Gemini) GenerateContent(ctx context.Context, prompt string) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if g.metrics != nil {
			g.metrics.RecordRequest(ProviderName, "generate", time.Since(start), err)
		}
	}()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
