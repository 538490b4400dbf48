// Package memory persists the assistant's user memory: recently used places,
// favorites, search history and trip preferences.
package memory

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownPreference is returned when an update names a preference
	// that does not exist.
	ErrUnknownPreference = errors.New("unknown preference")

	// ErrInvalidPreference is returned when an update value has the wrong
	// type or is out of range.
	ErrInvalidPreference = errors.New("invalid preference value")
)

const (
	// MaxRecentLocations is how many recent places are retained.
	MaxRecentLocations = 20

	// MaxSearchHistory is how many searches are retained.
	MaxSearchHistory = 50

	// SamePlaceDegrees is the coordinate tolerance under which two places
	// are considered the same.
	SamePlaceDegrees = 0.001

	// DefaultRecentLimit is used when RecentLocations is called with limit <= 0.
	DefaultRecentLimit = 5

	// DefaultHistoryLimit is used when SearchHistory is called with limit <= 0.
	DefaultHistoryLimit = 10
)

// Preference keys accepted by UpdatePreferences.
const (
	KeyTransitModes = "preferred_transit_modes"
	KeyMaxWalking   = "max_walking_distance"
	KeyMaxTransfers = "max_transfers"
	KeyLanguage     = "language"
	KeyWheelchair   = "wheelchair_accessible"
)

// RecentLocation is a place the user has travelled from or to.
type RecentLocation struct {
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Timestamp  time.Time `json:"timestamp"`
	UsageCount int       `json:"usage_count"`
}

// FavoriteLocation is a place the user saved explicitly.
type FavoriteLocation struct {
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lon     float64   `json:"lon"`
	AddedAt time.Time `json:"added_at"`
}

// SearchEntry records one successful trip query.
type SearchEntry struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Timestamp    time.Time `json:"timestamp"`
}

// Preferences are the user's trip planning preferences.
type Preferences struct {
	PreferredTransitModes []string `json:"preferred_transit_modes"`
	MaxWalkingDistance    int      `json:"max_walking_distance"`
	MaxTransfers          int      `json:"max_transfers"`
	Language              string   `json:"language"`
	WheelchairAccessible  bool     `json:"wheelchair_accessible"`
}

// DefaultPreferences returns the preferences of a new user.
func DefaultPreferences() Preferences {
	return Preferences{
		PreferredTransitModes: []string{"TRANSIT", "BUS"},
		MaxWalkingDistance:    1000,
		MaxTransfers:          2,
		Language:              "en",
		WheelchairAccessible:  false,
	}
}

// Store defines the interface for user memory persistence.
type Store interface {
	// AddRecentLocation records use of a place. A place within
	// SamePlaceDegrees of an existing entry bumps that entry instead.
	AddRecentLocation(ctx context.Context, name string, lat, lon float64) error

	// RecentLocations returns up to limit places, most used first.
	RecentLocations(ctx context.Context, limit int) ([]RecentLocation, error)

	// AddFavorite saves a place unless an equivalent one is already saved.
	AddFavorite(ctx context.Context, name string, lat, lon float64) error

	// Favorites returns saved places in the order they were added.
	Favorites(ctx context.Context) ([]FavoriteLocation, error)

	// AddSearch appends a query to the search history.
	AddSearch(ctx context.Context, query, from, to string) (SearchEntry, error)

	// SearchHistory returns the last limit searches, oldest first.
	SearchHistory(ctx context.Context, limit int) ([]SearchEntry, error)

	// Preferences returns the current preferences.
	Preferences(ctx context.Context) (Preferences, error)

	// UpdatePreferences applies a partial update. Unknown keys fail with
	// ErrUnknownPreference and bad values with ErrInvalidPreference; a
	// failed update changes nothing.
	UpdatePreferences(ctx context.Context, changes map[string]any) (Preferences, error)

	// ClearOlderThan drops recent places and searches older than days.
	ClearOlderThan(ctx context.Context, days int) error
}

// document is the on-disk layout.
type document struct {
	RecentLocations   []RecentLocation   `json:"recent_locations"`
	UserPreferences   Preferences        `json:"user_preferences"`
	FavoriteLocations []FavoriteLocation `json:"favorite_locations"`
	SearchHistory     []SearchEntry      `json:"search_history"`
}

func newDocument(prefs Preferences) document {
	return document{
		RecentLocations:   []RecentLocation{},
		UserPreferences:   prefs.clone(),
		FavoriteLocations: []FavoriteLocation{},
		SearchHistory:     []SearchEntry{},
	}
}
