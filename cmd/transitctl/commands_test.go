package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQueries(t *testing.T) {
	in := strings.NewReader("from Victoria to Sidi Gaber\n\n# comment\n  من الفلكي لسيدي جابر  \n")

	got, err := readQueries(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"from Victoria to Sidi Gaber", "من الفلكي لسيدي جابر"}, got)
}

func TestSortResults(t *testing.T) {
	results := []batchResult{{Line: 3}, {Line: 1}, {Line: 2}}
	sortResults(results)
	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, 3, results[2].Line)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GTFS_STOPS_FILE", "")
	log := zerolog.Nop()
	a := newApp(&log)
	var out bytes.Buffer
	a.Writer = &out
	err := a.Run(append([]string{"transitctl", "--env-file", t.TempDir() + "/none.env"}, args...))
	return out.String(), err
}

func TestStopsResolve(t *testing.T) {
	out, err := runApp(t, "stops", "resolve", "Victoria")
	require.NoError(t, err)
	assert.Contains(t, out, "440")
	assert.Contains(t, out, "Victoria Station")
}

func TestStopsSearch(t *testing.T) {
	out, err := runApp(t, "stops", "search", "Victoria")
	require.NoError(t, err)
	assert.Contains(t, out, "Victoria Station")
}

func TestStopsNearby(t *testing.T) {
	out, err := runApp(t, "stops", "nearby", "--lat", "31.218117", "--lon", "29.941997", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sidi Gaber Station")
	assert.Contains(t, out, " m")
}

func TestOnlineText(t *testing.T) {
	assert.Equal(t, "online", onlineText(true))
	assert.Equal(t, "offline", onlineText(false))
}
