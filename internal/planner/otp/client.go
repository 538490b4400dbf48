// Package otp is a client for the OpenTripPlanner REST plan API.
package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/planner"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

const (
	// ProviderName identifies this planner.
	ProviderName = "otp"

	// DefaultBaseURL is where a local OpenTripPlanner listens.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultRouter is the router id used when none is configured.
	DefaultRouter = "default"

	// DefaultPlanTimeout bounds a whole plan request, retries included.
	DefaultPlanTimeout = 20 * time.Second

	// DefaultStatusTimeout bounds a status probe.
	DefaultStatusTimeout = 5 * time.Second
)

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenTripPlanner client.
type ClientConfig struct {
	// BaseURL of the planner (optional, defaults to DefaultBaseURL).
	BaseURL string

	// Router id (optional, defaults to "default").
	Router string

	// HTTPClient overrides the resilient client (optional).
	HTTPClient HTTPDoer

	// PlanTimeout bounds PlanTrip (optional, defaults to 20s).
	PlanTimeout time.Duration

	// StatusTimeout bounds CheckStatus (optional, defaults to 5s).
	StatusTimeout time.Duration

	// Registry tracks upstream health (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client talks to an OpenTripPlanner instance.
type Client struct {
	baseURL       string
	router        string
	httpClient    HTTPDoer
	planTimeout   time.Duration
	statusTimeout time.Duration
	logger        zerolog.Logger
}

// NewClient creates a planner client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	router := cfg.Router
	if router == "" {
		router = DefaultRouter
	}

	planTimeout := cfg.PlanTimeout
	if planTimeout == 0 {
		planTimeout = DefaultPlanTimeout
	}

	statusTimeout := cfg.StatusTimeout
	if statusTimeout == 0 {
		statusTimeout = DefaultStatusTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = planTimeout
		clientCfg.Registry = cfg.Registry
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:       baseURL,
		router:        router,
		httpClient:    httpClient,
		planTimeout:   planTimeout,
		statusTimeout: statusTimeout,
		logger:        cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// CheckStatus probes the router endpoint. Any failure, including a timeout,
// reports false.
func (c *Client) CheckStatus(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routerURL(), http.NoBody)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("planner status probe failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// PlanTrip requests itineraries and normalizes them.
func (c *Client) PlanTrip(ctx context.Context, req planner.Request) ([]planner.Itinerary, error) {
	if !req.From.Valid() || !req.To.Valid() {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "INVALID_COORDINATES",
			Message:  "invalid trip endpoints",
			Err:      planner.ErrInvalidCoordinates,
		}
	}
	req = req.WithDefaults()

	ctx, cancel := context.WithTimeout(ctx, c.planTimeout)
	defer cancel()

	endpoint := c.routerURL() + "/plan?" + planQuery(req).Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating plan request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Stringer("from", req.From).
		Stringer("to", req.To).
		Str("modes", req.Modes).
		Int("num_itineraries", req.NumItineraries).
		Msg("requesting plan from OTP")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach trip planner",
			Err:      fmt.Errorf("%w: %v", planner.ErrNetwork, err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "READ_FAILED",
			Message:  "failed to read planner response",
			Err:      fmt.Errorf("%w: %v", planner.ErrNetwork, err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  fmt.Sprintf("trip planner returned status %d", resp.StatusCode),
			Err:      planner.ErrServiceUnavailable,
		}
	}

	its, err := decodePlan(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("itineraries", len(its)).Msg("received plan from OTP")
	return its, nil
}

// decodePlan maps a 200 response body to itineraries or a planner error.
func decodePlan(body []byte) ([]planner.Itinerary, error) {
	var pr PlanResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "MALFORMED",
			Message:  "unexpected planner payload",
			Err:      fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err),
		}
	}

	if pr.Error != nil {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "PLANNER_ERROR",
			Message:  pr.Error.text(),
			Err:      planner.ErrServiceUnavailable,
		}
	}

	if pr.Plan == nil || len(pr.Plan.Itineraries) == 0 {
		return nil, &planner.Error{
			Provider: ProviderName,
			Code:     "NO_ITINERARIES",
			Message:  "trip planner found no itineraries",
			Err:      planner.ErrNoItineraries,
		}
	}

	its := make([]planner.Itinerary, 0, len(pr.Plan.Itineraries))
	for _, raw := range pr.Plan.Itineraries {
		its = append(its, NormalizeItinerary(raw))
	}
	return its, nil
}

func planQuery(req planner.Request) url.Values {
	q := url.Values{}
	q.Set("fromPlace", req.From.String())
	q.Set("toPlace", req.To.String())
	q.Set("mode", req.Modes)
	q.Set("maxWalkDistance", strconv.Itoa(req.MaxWalkDistance))
	q.Set("arriveBy", strconv.FormatBool(req.ArriveBy))
	q.Set("numItineraries", strconv.Itoa(req.NumItineraries))
	q.Set("wheelchair", strconv.FormatBool(req.Wheelchair))
	if req.Date != "" {
		q.Set("date", req.Date)
	}
	if req.Time != "" {
		q.Set("time", req.Time)
	}
	return q
}

func (c *Client) routerURL() string {
	return c.baseURL + "/otp/routers/" + url.PathEscape(c.router)
}
