package models

// LocationRequest is the body of POST /v1/memory/favorites.
type LocationRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Validate returns field errors for the request.
func (r LocationRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required", Code: "REQUIRED"})
	}
	if !(Point{Lat: r.Lat, Lon: r.Lon}).Valid() {
		errs = append(errs, FieldError{Field: "lat/lon", Message: "must be a valid coordinate", Code: "OUT_OF_RANGE"})
	}
	return errs
}

// ListResponse wraps a list with its size.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList builds a ListResponse. A nil slice is rendered as [].
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
