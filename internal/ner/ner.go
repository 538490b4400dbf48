// Package ner is the language-model fallback for pulling trip endpoints out
// of queries the extraction templates cannot handle.
package ner

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/alextransit/alextransit/internal/extract"
)

// Recognizer finds an origin and destination in free text. Implementations
// return an empty pair on any failure.
type Recognizer interface {
	Recognize(ctx context.Context, query string) extract.LocationPair
}

// Disabled is used when no model is configured.
type Disabled struct{}

// Recognize always fails.
func (Disabled) Recognize(context.Context, string) extract.LocationPair {
	return extract.LocationPair{}
}

// Prompt builds the instruction sent to the model for query.
func Prompt(query string) string {
	return `Extract the trip origin and destination from this Alexandria, Egypt public transport request.
The request may be in Arabic, Egyptian Arabic or English.
Reply with JSON only, exactly in the form {"from": "<place or null>", "to": "<place or null>"}.
Use null when a place is not mentioned. Keep place names as written in the request.

Request: ` + query
}

// ParseLocations reads the first JSON object in a model reply. Anything other
// than string or null values for "from" and "to" yields an empty pair.
func ParseLocations(text string) extract.LocationPair {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return extract.LocationPair{}
	}

	var raw struct {
		From *string `json:"from"`
		To   *string `json:"to"`
	}
	dec := json.NewDecoder(strings.NewReader(text[start:]))
	if err := dec.Decode(&raw); err != nil {
		return extract.LocationPair{}
	}

	pair := extract.LocationPair{
		From: clean(raw.From),
		To:   clean(raw.To),
	}
	if pair.From == "" && pair.To == "" {
		return extract.LocationPair{}
	}
	pair.Source = extract.SourceNER
	return pair
}

func clean(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") || strings.EqualFold(v, "none") {
		return ""
	}
	return v
}

// Caching memoizes complete recognitions in memory so repeated queries do
// not hit the model again.
type Caching struct {
	next  Recognizer
	cache *cache.Cache
}

// NewCaching wraps next with a cache whose entries live for ttl.
func NewCaching(next Recognizer, ttl time.Duration) *Caching {
	return &Caching{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Recognize implements Recognizer.
func (c *Caching) Recognize(ctx context.Context, query string) extract.LocationPair {
	key := strings.TrimSpace(query)
	if cached, found := c.cache.Get(key); found {
		return cached.(extract.LocationPair)
	}

	pair := c.next.Recognize(ctx, query)
	if pair.Complete() {
		c.cache.Set(key, pair, cache.DefaultExpiration)
	}
	return pair
}
