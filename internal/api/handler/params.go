package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/alextransit/alextransit/internal/api/models"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 16 << 10

// decodeJSON reads a single JSON value from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

// intParam parses an optional integer query parameter within [lo, hi].
func intParam(r *http.Request, name string, def, lo, hi int) (int, *models.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, &models.FieldError{
			Field:   name,
			Message: fmt.Sprintf("must be an integer between %d and %d", lo, hi),
			Code:    "OUT_OF_RANGE",
		}
	}
	return n, nil
}

// floatParam parses a required float query parameter within [lo, hi].
func floatParam(r *http.Request, name string, lo, hi float64) (float64, *models.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, &models.FieldError{Field: name, Message: "required", Code: "REQUIRED"}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < lo || f > hi {
		return 0, &models.FieldError{
			Field:   name,
			Message: fmt.Sprintf("must be a number between %g and %g", lo, hi),
			Code:    "OUT_OF_RANGE",
		}
	}
	return f, nil
}

// collect gathers non-nil field errors.
func collect(errs ...*models.FieldError) []models.FieldError {
	var out []models.FieldError
	for _, e := range errs {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}
