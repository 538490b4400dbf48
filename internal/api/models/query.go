package models

import (
	"github.com/alextransit/alextransit/internal/assistant"
	"github.com/alextransit/alextransit/internal/planner"
)

// MaxQueryLength bounds the query text accepted by the API, in runes.
const MaxQueryLength = 500

// QueryRequest is the body of POST /v1/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the answer to one query.
type QueryResponse struct {
	Language    string              `json:"language"`
	Kind        string              `json:"kind"`
	Text        string              `json:"text"`
	Source      string              `json:"source,omitempty"`
	From        *assistant.Endpoint `json:"from,omitempty"`
	To          *assistant.Endpoint `json:"to,omitempty"`
	Itineraries []ItinerarySummary  `json:"itineraries,omitempty"`
}

// ItinerarySummary is an itinerary with a one-line description.
type ItinerarySummary struct {
	Summary string `json:"summary"`
	planner.Itinerary
}

// NewQueryResponse converts an assistant response for the wire.
func NewQueryResponse(r *assistant.Response) QueryResponse {
	out := QueryResponse{
		Language: string(r.Language),
		Kind:     string(r.Kind),
		Text:     r.Text,
		Source:   string(r.Source),
		From:     r.From,
		To:       r.To,
	}
	for _, it := range r.Itineraries {
		out.Itineraries = append(out.Itineraries, ItinerarySummary{Summary: it.Summary(), Itinerary: it})
	}
	return out
}
