// Package assistant answers natural-language trip questions. It extracts the
// two endpoints from a query, resolves them against the gazetteer, asks the
// planner for itineraries and renders the answer in the query's language.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/extract"
	"github.com/alextransit/alextransit/internal/format"
	"github.com/alextransit/alextransit/internal/gazetteer"
	"github.com/alextransit/alextransit/internal/language"
	"github.com/alextransit/alextransit/internal/memory"
	"github.com/alextransit/alextransit/internal/ner"
	"github.com/alextransit/alextransit/internal/planner"
)

// Kind classifies the outcome of a query.
type Kind string

const (
	// KindPlan means itineraries were found and rendered.
	KindPlan Kind = "plan"

	// KindExtractionFailure means no origin and destination could be read
	// from the query. The text asks the user to rephrase.
	KindExtractionFailure Kind = "extraction_failure"

	// KindLocationNotFound means an endpoint did not resolve to a stop.
	KindLocationNotFound Kind = "location_not_found"

	// KindPlannerUnavailable means the planner failed or found no route.
	// The text lists basic travel options between the resolved places.
	KindPlannerUnavailable Kind = "planner_unavailable"

	// KindInternal means processing failed unexpectedly.
	KindInternal Kind = "internal_error"
)

// Geocoder resolves place text to a stop.
type Geocoder interface {
	Resolve(text string) (gazetteer.Match, bool)
}

// Extractor reads the endpoints of a query with local rules.
type Extractor interface {
	Extract(query string) extract.LocationPair
}

// Planner plans trips between coordinates.
type Planner interface {
	PlanTrip(ctx context.Context, req planner.Request) ([]planner.Itinerary, error)
}

// Endpoint is a resolved trip endpoint.
type Endpoint struct {
	Query    string             `json:"query"`
	StopID   string             `json:"stopId"`
	Name     string             `json:"name"`
	Lat      float64            `json:"lat"`
	Lon      float64            `json:"lon"`
	Strategy gazetteer.Strategy `json:"strategy"`
}

func newEndpoint(query string, m gazetteer.Match) *Endpoint {
	return &Endpoint{
		Query:    query,
		StopID:   m.StopID,
		Name:     m.Name,
		Lat:      m.Lat,
		Lon:      m.Lon,
		Strategy: m.Strategy,
	}
}

func (e *Endpoint) place() format.Place {
	return format.Place{Name: e.Name, Lat: e.Lat, Lon: e.Lon}
}

func (e *Endpoint) coordinate() planner.Coordinate {
	return planner.Coordinate{Lat: e.Lat, Lon: e.Lon}
}

// Response is the answer to one query.
type Response struct {
	Language    language.Language   `json:"language"`
	Kind        Kind                `json:"kind"`
	Text        string              `json:"text"`
	Source      extract.Source      `json:"source,omitempty"`
	From        *Endpoint           `json:"from,omitempty"`
	To          *Endpoint           `json:"to,omitempty"`
	Itineraries []planner.Itinerary `json:"itineraries,omitempty"`
}

// Config holds the assistant's collaborators.
type Config struct {
	Geocoder  Geocoder
	Extractor Extractor

	// Recognizer is consulted when Extractor fails (optional).
	Recognizer ner.Recognizer

	Planner   Planner
	Formatter *format.Formatter

	// Memory records resolved places and searches and supplies trip
	// preferences (optional).
	Memory memory.Store

	// NumItineraries requested from the planner (default: 3).
	NumItineraries int

	// Modes requested from the planner (default: planner.DefaultModes).
	Modes string

	// MaxWalkDistance in meters, used when no preference is stored.
	MaxWalkDistance int

	Logger zerolog.Logger
}

// Service answers trip queries.
type Service struct {
	geocoder       Geocoder
	extractor      Extractor
	recognizer     ner.Recognizer
	planner        Planner
	formatter      *format.Formatter
	memory         memory.Store
	numItineraries int
	modes          string
	maxWalk        int
	logger         zerolog.Logger
}

// NewService creates an assistant service.
func NewService(cfg Config) *Service {
	recognizer := cfg.Recognizer
	if recognizer == nil {
		recognizer = ner.Disabled{}
	}

	formatter := cfg.Formatter
	if formatter == nil {
		formatter = format.New(0)
	}

	numItineraries := cfg.NumItineraries
	if numItineraries <= 0 {
		numItineraries = 3
	}

	modes := cfg.Modes
	if modes == "" {
		modes = planner.DefaultModes
	}

	return &Service{
		geocoder:       cfg.Geocoder,
		extractor:      cfg.Extractor,
		recognizer:     recognizer,
		planner:        cfg.Planner,
		formatter:      formatter,
		memory:         cfg.Memory,
		numItineraries: numItineraries,
		modes:          modes,
		maxWalk:        cfg.MaxWalkDistance,
		logger:         cfg.Logger,
	}
}

// HandleQuery answers query. It never fails: every problem is reported as a
// localized message in the returned Response.
func (s *Service) HandleQuery(ctx context.Context, query string) (resp *Response) {
	lang := language.Detect(query)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("query processing panicked")
			resp = &Response{Language: lang, Kind: KindInternal, Text: format.InternalError(lang)}
		}
		s.logger.Info().
			Str("language", string(lang)).
			Str("kind", string(resp.Kind)).
			Dur("duration", time.Since(start)).
			Msg("query handled")
	}()

	return s.handle(ctx, query, lang)
}

func (s *Service) handle(ctx context.Context, query string, lang language.Language) *Response {
	pair := s.extractor.Extract(query)
	if !pair.Complete() && strings.TrimSpace(query) != "" {
		pair = s.recognizer.Recognize(ctx, query)
	}
	if !pair.Complete() {
		return &Response{Language: lang, Kind: KindExtractionFailure, Text: format.ExtractionPrompt(lang)}
	}

	resp := &Response{Language: lang, Source: pair.Source}

	fromMatch, ok := s.geocoder.Resolve(pair.From)
	if !ok {
		resp.Kind = KindLocationNotFound
		resp.Text = format.LocationNotFound(pair.From, lang)
		return resp
	}
	resp.From = newEndpoint(pair.From, fromMatch)

	toMatch, ok := s.geocoder.Resolve(pair.To)
	if !ok {
		resp.Kind = KindLocationNotFound
		resp.Text = format.LocationNotFound(pair.To, lang)
		return resp
	}
	resp.To = newEndpoint(pair.To, toMatch)

	its, err := s.planner.PlanTrip(ctx, s.PlanRequest(ctx, resp.From.coordinate(), resp.To.coordinate()))
	if err == nil && len(its) == 0 {
		err = planner.ErrNoItineraries
	}
	if err != nil {
		s.logPlannerError(err, resp)
		resp.Kind = KindPlannerUnavailable
		resp.Text = s.formatter.BasicOptions(resp.From.place(), resp.To.place(), lang)
		return resp
	}

	resp.Kind = KindPlan
	resp.Itineraries = its
	resp.Text = s.formatter.Itineraries(its, resp.From.place(), resp.To.place(), lang)
	s.remember(ctx, query, resp)
	return resp
}

// PlanRequest builds the planner request for a trip, applying stored
// preferences. Anything that plans on behalf of the user goes through it so
// cached plans are shared.
func (s *Service) PlanRequest(ctx context.Context, from, to planner.Coordinate) planner.Request {
	req := planner.Request{
		From:            from,
		To:              to,
		Modes:           s.modes,
		MaxWalkDistance: s.maxWalk,
		NumItineraries:  s.numItineraries,
	}
	if s.memory == nil {
		return req
	}

	prefs, err := s.memory.Preferences(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read preferences")
		return req
	}
	req.MaxWalkDistance = prefs.MaxWalkingDistance
	req.Wheelchair = prefs.WheelchairAccessible
	return req
}

func (s *Service) logPlannerError(err error, resp *Response) {
	event := s.logger.Warn()
	if errors.Is(err, planner.ErrNoItineraries) {
		event = s.logger.Info()
	}
	event.Err(err).
		Str("from", resp.From.StopID).
		Str("to", resp.To.StopID).
		Msg("planning failed, falling back to basic options")
}

// remember records a successful trip. Failures are logged only.
func (s *Service) remember(ctx context.Context, query string, resp *Response) {
	if s.memory == nil {
		return
	}

	for _, e := range []*Endpoint{resp.From, resp.To} {
		if err := s.memory.AddRecentLocation(ctx, e.Name, e.Lat, e.Lon); err != nil {
			s.logger.Warn().Err(err).Str("place", e.Name).Msg("failed to record recent location")
		}
	}
	if _, err := s.memory.AddSearch(ctx, query, resp.From.Name, resp.To.Name); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record search")
	}
}

// String renders a one-line description for logs and the CLI.
func (r *Response) String() string {
	if r.From != nil && r.To != nil {
		return fmt.Sprintf("%s [%s] %s -> %s", r.Kind, r.Language, r.From.Name, r.To.Name)
	}
	return fmt.Sprintf("%s [%s]", r.Kind, r.Language)
}
