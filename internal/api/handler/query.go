package handler

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/alextransit/alextransit/internal/api/models"
	"github.com/alextransit/alextransit/internal/api/response"
	"github.com/alextransit/alextransit/internal/assistant"
)

// Answerer answers natural-language trip questions.
type Answerer interface {
	HandleQuery(ctx context.Context, query string) *assistant.Response
}

// QueryHandler serves trip queries.
type QueryHandler struct {
	assistant Answerer
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(a Answerer) *QueryHandler {
	return &QueryHandler{assistant: a}
}

// Query handles POST /v1/query. Every outcome of a well-formed query,
// including unknown places and planner outages, is a 200 whose kind field
// says what happened.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}

	query := strings.TrimSpace(req.Query)
	switch {
	case query == "":
		response.BadRequest(w, r, "query is required", []models.FieldError{
			{Field: "query", Message: "required", Code: "REQUIRED"},
		})
		return
	case utf8.RuneCountInString(query) > models.MaxQueryLength:
		response.BadRequest(w, r, "query is too long", []models.FieldError{
			{Field: "query", Message: "must be at most 500 characters", Code: "TOO_LONG"},
		})
		return
	}

	resp := h.assistant.HandleQuery(r.Context(), query)
	response.JSON(w, r, http.StatusOK, models.NewQueryResponse(resp))
}
