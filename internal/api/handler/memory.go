package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/api/models"
	"github.com/alextransit/alextransit/internal/api/response"
	"github.com/alextransit/alextransit/internal/memory"
)

// MemoryHandler exposes the user's stored places, searches and preferences.
type MemoryHandler struct {
	store  memory.Store
	logger zerolog.Logger
}

// NewMemoryHandler creates a new MemoryHandler.
func NewMemoryHandler(store memory.Store, logger zerolog.Logger) *MemoryHandler {
	return &MemoryHandler{store: store, logger: logger}
}

// GetPreferences handles GET /v1/memory/preferences.
func (h *MemoryHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.Preferences(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to read preferences")
		return
	}
	response.JSON(w, r, http.StatusOK, prefs)
}

// UpdatePreferences handles PATCH /v1/memory/preferences. The body is an
// object of preference keys; unknown keys and bad values are rejected and
// nothing is changed.
func (h *MemoryHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var changes map[string]any
	if err := decodeJSON(w, r, &changes); err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}
	if len(changes) == 0 {
		response.BadRequest(w, r, "no preferences given", nil)
		return
	}

	prefs, err := h.store.UpdatePreferences(r.Context(), changes)
	switch {
	case errors.Is(err, memory.ErrUnknownPreference):
		response.BadRequest(w, r, err.Error(), []models.FieldError{{Field: "preferences", Message: err.Error(), Code: "UNKNOWN_KEY"}})
	case errors.Is(err, memory.ErrInvalidPreference):
		response.BadRequest(w, r, err.Error(), []models.FieldError{{Field: "preferences", Message: err.Error(), Code: "INVALID_VALUE"}})
	case err != nil:
		h.fail(w, r, err, "failed to update preferences")
	default:
		response.JSON(w, r, http.StatusOK, prefs)
	}
}

// RecentLocations handles GET /v1/memory/recent?limit=.
func (h *MemoryHandler) RecentLocations(w http.ResponseWriter, r *http.Request) {
	limit, ferr := intParam(r, "limit", memory.DefaultRecentLimit, 1, memory.MaxRecentLocations)
	if ferr != nil {
		response.BadRequest(w, r, "invalid query parameters", collect(ferr))
		return
	}

	locs, err := h.store.RecentLocations(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err, "failed to read recent locations")
		return
	}
	response.JSON(w, r, http.StatusOK, models.NewList(locs))
}

// Favorites handles GET /v1/memory/favorites.
func (h *MemoryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.store.Favorites(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to read favorites")
		return
	}
	response.JSON(w, r, http.StatusOK, models.NewList(favs))
}

// AddFavorite handles POST /v1/memory/favorites.
func (h *MemoryHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.BadRequest(w, r, "invalid favorite", errs)
		return
	}

	if err := h.store.AddFavorite(r.Context(), req.Name, req.Lat, req.Lon); err != nil {
		h.fail(w, r, err, "failed to add favorite")
		return
	}
	response.Created(w, r, "/v1/memory/favorites", req)
}

// SearchHistory handles GET /v1/memory/history?limit=.
func (h *MemoryHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	limit, ferr := intParam(r, "limit", memory.DefaultHistoryLimit, 1, memory.MaxSearchHistory)
	if ferr != nil {
		response.BadRequest(w, r, "invalid query parameters", collect(ferr))
		return
	}

	entries, err := h.store.SearchHistory(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err, "failed to read search history")
		return
	}
	response.JSON(w, r, http.StatusOK, models.NewList(entries))
}

// Clear handles DELETE /v1/memory?olderThanDays=. Recent places and
// searches older than the cutoff are removed; favorites are kept.
func (h *MemoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	days, ferr := intParam(r, "olderThanDays", 30, 0, 3650)
	if ferr != nil {
		response.BadRequest(w, r, "invalid query parameters", collect(ferr))
		return
	}

	if err := h.store.ClearOlderThan(r.Context(), days); err != nil {
		h.fail(w, r, err, "failed to clear memory")
		return
	}
	response.NoContent(w, r)
}

func (h *MemoryHandler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	h.logger.Error().Err(err).Msg(msg)
	response.InternalError(w, r, msg)
}
