// Package handler provides HTTP handlers for the transit assistant API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/alextransit/alextransit/internal/api/models"
	"github.com/alextransit/alextransit/internal/api/response"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

// StatusChecker probes the trip planner.
type StatusChecker interface {
	CheckStatus(ctx context.Context) bool
	ProviderName() string
}

// OpsConfig configures the operational endpoints.
type OpsConfig struct {
	Version   string
	BuildTime string

	Planner  StatusChecker
	Registry *resilience.Registry

	// StopCount is the size of the loaded gazetteer.
	StopCount int

	// MemoryPath is empty when memory is not persisted.
	MemoryPath string

	// NEREnabled reports whether the language model fallback is configured.
	NEREnabled bool

	// ProbeTimeout bounds the planner probe (default: 3s).
	ProbeTimeout time.Duration
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	cfg OpsConfig
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(cfg OpsConfig) *OpsHandler {
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 3 * time.Second
	}
	return &OpsHandler{cfg: cfg}
}

// HealthCheck handles GET /v1/ops/health, the liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]any{
			"version":   h.cfg.Version,
			"buildTime": h.cfg.BuildTime,
		},
	})
}

// ReadinessCheck handles GET /v1/ops/ready. The service can answer queries
// as soon as the gazetteer is loaded; planner outages degrade answers but do
// not make it unready.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.cfg.StopCount == 0 {
		response.JSON(w, r, http.StatusServiceUnavailable, models.Health{
			Status:  models.HealthStatusFail,
			Time:    models.Timestamp(time.Now()),
			Details: map[string]any{"gazetteer": "no stops loaded"},
		})
		return
	}
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:  models.HealthStatusOK,
		Time:    models.Timestamp(time.Now()),
		Details: map[string]any{"stops": h.cfg.StopCount},
	})
}

// SystemStatus handles GET /v1/ops/status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status := models.SystemStatus{
		Status:     models.HealthStatusOK,
		Time:       models.Timestamp(time.Now()),
		Subsystems: h.subsystems(),
		Providers:  h.providers(),
	}

	if h.cfg.Planner != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.ProbeTimeout)
		online := h.cfg.Planner.CheckStatus(ctx)
		cancel()

		planner := models.ProviderStatus{Provider: h.cfg.Planner.ProviderName() + "-probe", Status: models.HealthStatusOK}
		if !online {
			planner.Status = models.HealthStatusFail
			msg := "trip planner is not responding"
			planner.Message = &msg
		}
		status.Providers = append(status.Providers, planner)
	}

	for _, p := range status.Providers {
		if p.Status != models.HealthStatusOK {
			status.Status = models.HealthStatusDegraded
		}
	}
	for _, s := range status.Subsystems {
		if s.Status != models.HealthStatusOK {
			status.Status = models.HealthStatusDegraded
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}

func (h *OpsHandler) subsystems() []models.SubsystemStatus {
	gaz := models.SubsystemStatus{Name: "gazetteer", Status: models.HealthStatusOK}
	if h.cfg.StopCount == 0 {
		gaz.Status = models.HealthStatusFail
	}

	memory := models.SubsystemStatus{Name: "memory", Status: models.HealthStatusOK}
	if h.cfg.MemoryPath == "" {
		detail := "in-memory only"
		memory.Detail = &detail
	}

	ner := models.SubsystemStatus{Name: "ner", Status: models.HealthStatusOK}
	if !h.cfg.NEREnabled {
		detail := "disabled"
		ner.Detail = &detail
	}

	return []models.SubsystemStatus{gaz, memory, ner}
}

func (h *OpsHandler) providers() []models.ProviderStatus {
	if h.cfg.Registry == nil {
		return nil
	}

	all := h.cfg.Registry.All()
	out := make([]models.ProviderStatus, 0, len(all))
	for _, health := range all {
		p := models.ProviderStatus{
			Provider:      health.Name,
			Status:        breakerStatus(health.State),
			CircuitState:  health.State.String(),
			LastSuccessAt: models.TimestampPtr(health.LastSuccessAt),
			LastFailureAt: models.TimestampPtr(health.LastFailureAt),
		}
		if health.LastError != "" {
			msg := health.LastError
			p.Message = &msg
		}
		out = append(out, p)
	}
	return out
}

func breakerStatus(state gobreaker.State) models.HealthStatus {
	switch state {
	case gobreaker.StateClosed:
		return models.HealthStatusOK
	case gobreaker.StateHalfOpen:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusFail
	}
}
