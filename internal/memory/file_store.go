package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrReadOnly is returned by mutations when the memory file could not be
// loaded and was not backed up, so writing would destroy it.
var ErrReadOnly = errors.New("memory file is read-only")

// FileStore keeps user memory in a single JSON file. Every mutation rewrites
// the file. An empty path keeps memory in process only.
type FileStore struct {
	mu       sync.Mutex
	path     string
	doc      document
	readOnly bool
	logger   zerolog.Logger
	now      func() time.Time
}

// Option configures a FileStore.
type Option func(*options)

type options struct {
	defaults Preferences
}

// WithDefaults sets the preferences of a user with no stored preferences.
func WithDefaults(p Preferences) Option {
	return func(o *options) {
		o.defaults = p
	}
}

// NewFileStore loads path, starting from defaults when the file does not
// exist. A file that cannot be parsed is copied to path+".bak" before the
// store starts over from defaults. If the copy fails the store refuses to
// write, leaving the original in place.
func NewFileStore(path string, logger zerolog.Logger, opts ...Option) *FileStore {
	o := options{defaults: DefaultPreferences()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &FileStore{
		path:   path,
		doc:    newDocument(o.defaults),
		logger: logger,
		now:    time.Now,
	}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s
	case err != nil:
		logger.Error().Err(err).Str("path", path).Msg("failed to read memory file, changes will not be saved")
		s.readOnly = true
		return s
	}

	doc := newDocument(o.defaults)
	if err := json.Unmarshal(data, &doc); err != nil {
		backup := path + ".bak"
		if werr := os.WriteFile(backup, data, 0o600); werr != nil {
			logger.Error().Err(err).AnErr("backup_error", werr).Str("path", path).
				Msg("failed to parse memory file, changes will not be saved")
			s.readOnly = true
			return s
		}
		logger.Error().Err(err).Str("path", path).Str("backup", backup).
			Msg("failed to parse memory file, starting from defaults")
		return s
	}
	s.doc = doc
	return s
}

// NewInMemoryStore creates a store that is never written to disk.
// This is intended for testing and for the CLI.
func NewInMemoryStore() *FileStore {
	return NewFileStore("", zerolog.Nop())
}

// Path returns the backing file, empty for in-memory stores.
func (s *FileStore) Path() string {
	return s.path
}

// save writes the document atomically. Callers must hold mu.
func (s *FileStore) save() error {
	if s.path == "" {
		return nil
	}
	if s.readOnly {
		return ErrReadOnly
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding memory: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".memory-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing memory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing memory file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing memory file: %w", err)
	}
	return nil
}

func samePlace(lat1, lon1, lat2, lon2 float64) bool {
	return math.Abs(lat1-lat2) < SamePlaceDegrees && math.Abs(lon1-lon2) < SamePlaceDegrees
}

// AddRecentLocation implements Store.
func (s *FileStore) AddRecentLocation(_ context.Context, name string, lat, lon float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.doc.RecentLocations {
		loc := &s.doc.RecentLocations[i]
		if samePlace(loc.Lat, loc.Lon, lat, lon) {
			loc.Timestamp = now
			loc.UsageCount++
			return s.save()
		}
	}

	s.doc.RecentLocations = append(s.doc.RecentLocations, RecentLocation{
		Name:       name,
		Lat:        lat,
		Lon:        lon,
		Timestamp:  now,
		UsageCount: 1,
	})
	if n := len(s.doc.RecentLocations); n > MaxRecentLocations {
		s.doc.RecentLocations = slices.Clone(s.doc.RecentLocations[n-MaxRecentLocations:])
	}
	return s.save()
}

// RecentLocations implements Store.
func (s *FileStore) RecentLocations(_ context.Context, limit int) ([]RecentLocation, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.Lock()
	locs := slices.Clone(s.doc.RecentLocations)
	s.mu.Unlock()

	sort.SliceStable(locs, func(i, j int) bool {
		if locs[i].UsageCount != locs[j].UsageCount {
			return locs[i].UsageCount > locs[j].UsageCount
		}
		return locs[i].Timestamp.After(locs[j].Timestamp)
	})
	if len(locs) > limit {
		locs = locs[:limit]
	}
	return locs, nil
}

// AddFavorite implements Store.
func (s *FileStore) AddFavorite(_ context.Context, name string, lat, lon float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fav := range s.doc.FavoriteLocations {
		if samePlace(fav.Lat, fav.Lon, lat, lon) {
			return nil
		}
	}

	s.doc.FavoriteLocations = append(s.doc.FavoriteLocations, FavoriteLocation{
		Name:    name,
		Lat:     lat,
		Lon:     lon,
		AddedAt: s.now(),
	})
	return s.save()
}

// Favorites implements Store.
func (s *FileStore) Favorites(_ context.Context) ([]FavoriteLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.doc.FavoriteLocations), nil
}

// AddSearch implements Store.
func (s *FileStore) AddSearch(_ context.Context, query, from, to string) (SearchEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := SearchEntry{
		ID:           uuid.New().String(),
		Query:        query,
		FromLocation: from,
		ToLocation:   to,
		Timestamp:    s.now(),
	}
	s.doc.SearchHistory = append(s.doc.SearchHistory, entry)
	if n := len(s.doc.SearchHistory); n > MaxSearchHistory {
		s.doc.SearchHistory = slices.Clone(s.doc.SearchHistory[n-MaxSearchHistory:])
	}
	return entry, s.save()
}

// SearchHistory implements Store.
func (s *FileStore) SearchHistory(_ context.Context, limit int) ([]SearchEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.doc.SearchHistory
	if len(h) > limit {
		h = h[len(h)-limit:]
	}
	return slices.Clone(h), nil
}

// Preferences implements Store.
func (s *FileStore) Preferences(_ context.Context) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.UserPreferences.clone(), nil
}

// UpdatePreferences implements Store.
func (s *FileStore) UpdatePreferences(_ context.Context, changes map[string]any) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.doc.UserPreferences.clone().apply(changes)
	if err != nil {
		return Preferences{}, err
	}
	s.doc.UserPreferences = updated
	return updated.clone(), s.save()
}

// ClearOlderThan implements Store.
func (s *FileStore) ClearOlderThan(_ context.Context, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -days)
	s.doc.RecentLocations = slices.DeleteFunc(s.doc.RecentLocations, func(l RecentLocation) bool {
		return !l.Timestamp.After(cutoff)
	})
	s.doc.SearchHistory = slices.DeleteFunc(s.doc.SearchHistory, func(e SearchEntry) bool {
		return !e.Timestamp.After(cutoff)
	})
	return s.save()
}

func (p Preferences) clone() Preferences {
	p.PreferredTransitModes = slices.Clone(p.PreferredTransitModes)
	return p
}

// apply returns p with changes applied. Keys are checked in sorted order so
// the reported key is stable.
func (p Preferences) apply(changes map[string]any) (Preferences, error) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := changes[key]
		switch key {
		case KeyTransitModes:
			modes, ok := stringList(value)
			if !ok || len(modes) == 0 {
				return p, fmt.Errorf("%w: %s must be a non-empty list of strings", ErrInvalidPreference, key)
			}
			p.PreferredTransitModes = modes
		case KeyMaxWalking:
			n, ok := wholeNumber(value)
			if !ok || n <= 0 {
				return p, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidPreference, key)
			}
			p.MaxWalkingDistance = n
		case KeyMaxTransfers:
			n, ok := wholeNumber(value)
			if !ok || n < 0 {
				return p, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidPreference, key)
			}
			p.MaxTransfers = n
		case KeyLanguage:
			lang, ok := value.(string)
			if !ok || (lang != "ar" && lang != "en") {
				return p, fmt.Errorf("%w: %s must be \"ar\" or \"en\"", ErrInvalidPreference, key)
			}
			p.Language = lang
		case KeyWheelchair:
			b, ok := value.(bool)
			if !ok {
				return p, fmt.Errorf("%w: %s must be a boolean", ErrInvalidPreference, key)
			}
			p.WheelchairAccessible = b
		default:
			return p, fmt.Errorf("%w: %s", ErrUnknownPreference, key)
		}
	}
	return p, nil
}

func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, 0, len(list))
		for _, s := range list {
			if s = strings.ToUpper(strings.TrimSpace(s)); s == "" {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			if s = strings.ToUpper(strings.TrimSpace(s)); s == "" {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// wholeNumber accepts Go integers and JSON numbers without a fraction.
func wholeNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}
