package otp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alextransit/alextransit/internal/planner"
	"github.com/alextransit/alextransit/internal/provider/resilience"
)

var (
	victoria = planner.Coordinate{Lat: 31.2454, Lon: 29.9687}
	montazah = planner.Coordinate{Lat: 31.2838, Lon: 30.0113}
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Logger:     zerolog.Nop(),
	})
}

func TestClient_PlanTrip_Success(t *testing.T) {
	body := loadFixture(t, "plan_response.json")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/otp/routers/default/plan", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "31.2454,29.9687", q.Get("fromPlace"))
		assert.Equal(t, "31.2838,30.0113", q.Get("toPlace"))
		assert.Equal(t, "TRANSIT,WALK", q.Get("mode"))
		assert.Equal(t, "2000", q.Get("maxWalkDistance"))
		assert.Equal(t, "false", q.Get("arriveBy"))
		assert.Equal(t, "3", q.Get("numItineraries"))
		assert.Equal(t, "false", q.Get("wheelchair"))
		assert.False(t, q.Has("date"))
		assert.False(t, q.Has("time"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})

	its, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
	require.NoError(t, err)
	require.Len(t, its, 2)

	first := its[0]
	assert.Equal(t, 30, first.DurationMinutes)
	assert.InDelta(t, 5.40, first.DistanceKm, 1e-9)
	assert.Equal(t, 5, first.WalkingMinutes)
	assert.Equal(t, 0, first.Transfers)
	require.Len(t, first.Legs, 2)

	bus := first.Legs[1]
	assert.Equal(t, planner.ModeBus, bus.Mode)
	assert.Equal(t, "Victoria Station", bus.FromName)
	assert.Equal(t, "Tamween Montazah", bus.ToName)
	assert.Equal(t, 25, bus.DurationMinutes)
	assert.InDelta(t, 5.0, bus.DistanceKm, 1e-9)
	assert.Equal(t, "735", bus.RouteLabel)
	assert.Equal(t, "Victoria - Montazah", bus.RouteLongName)
	assert.Equal(t, "Montazah", bus.Headsign)
	assert.Equal(t, "Alexandria Passenger Transport Authority", bus.AgencyName)
	require.NotNil(t, bus.RouteType)
	assert.Equal(t, 3, *bus.RouteType)
	assert.Equal(t, time.UnixMilli(1760781900000).UTC(), bus.StartTime)

	assert.Len(t, first.Legs[0].Geometry, 2)

	second := its[1]
	assert.Equal(t, 46, second.DurationMinutes)
	assert.InDelta(t, 10.37, second.DistanceKm, 1e-9)
	assert.Equal(t, 7, second.WalkingMinutes, "walkTime wins over summed walk legs")
	assert.Equal(t, 2, second.Transfers)
	assert.Equal(t, "Raml - Victoria", second.Legs[1].RouteLabel)
	assert.Equal(t, "Microbus 12", second.Legs[2].RouteLabel)
	assert.Equal(t, "1", second.Legs[4].RouteLabel)
	assert.Equal(t, "Unknown", second.Legs[4].ToName)
	assert.Equal(t, "Unknown", second.Legs[5].FromName)
}

func TestClient_PlanTrip_Options(t *testing.T) {
	body := loadFixture(t, "plan_response.json")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "BUS,WALK", q.Get("mode"))
		assert.Equal(t, "800", q.Get("maxWalkDistance"))
		assert.Equal(t, "true", q.Get("arriveBy"))
		assert.Equal(t, "1", q.Get("numItineraries"))
		assert.Equal(t, "true", q.Get("wheelchair"))
		assert.Equal(t, "2026-10-18", q.Get("date"))
		assert.Equal(t, "8:30am", q.Get("time"))
		_, _ = w.Write(body)
	})

	_, err := client.PlanTrip(context.Background(), planner.Request{
		From:            victoria,
		To:              montazah,
		Modes:           "BUS,WALK",
		MaxWalkDistance: 800,
		ArriveBy:        true,
		NumItineraries:  1,
		Wheelchair:      true,
		Date:            "2026-10-18",
		Time:            "8:30am",
	})
	require.NoError(t, err)
}

func TestClient_PlanTrip_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		code    string
	}{
		{"explicit error payload", http.StatusOK, string(mustRead("error_response.json")), planner.ErrServiceUnavailable, "PLANNER_ERROR"},
		{"empty itineraries", http.StatusOK, string(mustRead("empty_plan.json")), planner.ErrNoItineraries, "NO_ITINERARIES"},
		{"missing plan", http.StatusOK, `{"requestParameters":{}}`, planner.ErrNoItineraries, "NO_ITINERARIES"},
		{"null plan", http.StatusOK, `{"plan":null}`, planner.ErrNoItineraries, "NO_ITINERARIES"},
		{"not json", http.StatusOK, `<html>proxy error</html>`, planner.ErrMalformedResponse, "MALFORMED"},
		{"wrong shape", http.StatusOK, `{"plan":{"itineraries":"none"}}`, planner.ErrMalformedResponse, "MALFORMED"},
		{"not found status", http.StatusNotFound, `{}`, planner.ErrServiceUnavailable, "HTTP_404"},
		{"bad request status", http.StatusBadRequest, `bad`, planner.ErrServiceUnavailable, "HTTP_400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			its, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
			assert.Nil(t, its)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *planner.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.code, perr.Code)
			assert.Equal(t, ProviderName, perr.Provider)
		})
	}
}

func TestClient_PlanTrip_ErrorPayloadMessage(t *testing.T) {
	body := loadFixture(t, "error_response.json")
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(body)
	})

	_, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PATH_NOT_FOUND")
}

func TestClient_PlanTrip_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(ClientConfig{BaseURL: url, HTTPClient: http.DefaultClient, Logger: zerolog.Nop()})

	_, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrNetwork)

	var perr *planner.Error
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.IsRetryable())
}

func TestClient_PlanTrip_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		HTTPClient:  server.Client(),
		PlanTimeout: 50 * time.Millisecond,
		Logger:      zerolog.Nop(),
	})

	_, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
	assert.ErrorIs(t, err, planner.ErrNetwork)
}

func TestClient_PlanTrip_InvalidCoordinates(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) { calls.Add(1) })

	_, err := client.PlanTrip(context.Background(), planner.Request{From: planner.Coordinate{Lat: 100}, To: montazah})
	assert.ErrorIs(t, err, planner.ErrInvalidCoordinates)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_CheckStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/otp/routers/alexandria", r.URL.Path)
		_, _ = w.Write([]byte(`{"routerId":"alexandria"}`))
	})
	client.router = "alexandria"
	assert.True(t, client.CheckStatus(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.False(t, down.CheckStatus(context.Background()))
}

func TestClient_CheckStatus_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(ClientConfig{BaseURL: url, Logger: zerolog.Nop()})
	assert.False(t, client.CheckStatus(context.Background()))
}

func TestClient_CheckStatus_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:       server.URL,
		HTTPClient:    server.Client(),
		StatusTimeout: 20 * time.Millisecond,
		Logger:        zerolog.Nop(),
	})

	start := time.Now()
	assert.False(t, client.CheckStatus(context.Background()))
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestClient_DefaultHTTPClientRegistersHealth(t *testing.T) {
	body := loadFixture(t, "plan_response.json")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	registry := resilience.NewRegistry()
	client := NewClient(ClientConfig{BaseURL: server.URL + "/", Registry: registry, Logger: zerolog.Nop()})

	_, err := client.PlanTrip(context.Background(), planner.Request{From: victoria, To: montazah})
	require.NoError(t, err)

	h, ok := registry.Health(ProviderName)
	require.True(t, ok)
	assert.NotNil(t, h.LastSuccessAt)
}

func mustRead(name string) []byte {
	b, err := os.ReadFile("testdata/" + name)
	if err != nil {
		panic(err)
	}
	return b
}
