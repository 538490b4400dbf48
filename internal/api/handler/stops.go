package handler

import (
	"net/http"

	"github.com/alextransit/alextransit/internal/api/models"
	"github.com/alextransit/alextransit/internal/api/response"
	"github.com/alextransit/alextransit/internal/gazetteer"
)

// StopsHandler exposes the gazetteer.
type StopsHandler struct {
	geocoder *gazetteer.Geocoder
}

// NewStopsHandler creates a new StopsHandler.
func NewStopsHandler(g *gazetteer.Geocoder) *StopsHandler {
	return &StopsHandler{geocoder: g}
}

// Search handles GET /v1/stops?q=&limit=. Without q it lists the catalog.
func (h *StopsHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, ferr := intParam(r, "limit", 20, 1, 100)
	if ferr != nil {
		response.BadRequest(w, r, "invalid query parameters", collect(ferr))
		return
	}

	var stops []gazetteer.Stop
	if q := r.URL.Query().Get("q"); q != "" {
		stops = h.geocoder.Search(q)
	} else {
		stops = h.geocoder.Index().Stops()
	}
	if len(stops) > limit {
		stops = stops[:limit]
	}

	items := make([]models.Stop, 0, len(stops))
	for _, s := range stops {
		items = append(items, models.NewStop(s))
	}
	response.JSON(w, r, http.StatusOK, models.NewList(items))
}

// Nearby handles GET /v1/stops/nearby?lat=&lon=&limit=.
func (h *StopsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat, latErr := floatParam(r, "lat", -90, 90)
	lon, lonErr := floatParam(r, "lon", -180, 180)
	limit, limitErr := intParam(r, "limit", 5, 1, 50)
	if errs := collect(latErr, lonErr, limitErr); len(errs) > 0 {
		response.BadRequest(w, r, "invalid query parameters", errs)
		return
	}

	nearby := h.geocoder.Nearest(lat, lon, limit)
	items := make([]models.Stop, 0, len(nearby))
	for _, n := range nearby {
		items = append(items, models.NewNearbyStop(n))
	}
	response.JSON(w, r, http.StatusOK, models.NewList(items))
}

// Resolve handles GET /v1/stops/resolve?q=, the lookup the assistant uses
// for each endpoint of a trip.
func (h *StopsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		response.BadRequest(w, r, "q is required", []models.FieldError{
			{Field: "q", Message: "required", Code: "REQUIRED"},
		})
		return
	}

	m, ok := h.geocoder.Resolve(q)
	if !ok {
		response.NotFound(w, r, "no stop matches "+q)
		return
	}
	response.JSON(w, r, http.StatusOK, models.NewResolvedStop(m))
}
