package gazetteer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// gtfsStop is one row of a GTFS stops.txt file.
type gtfsStop struct {
	ID           string  `csv:"stop_id"`
	Code         string  `csv:"stop_code"`
	Name         string  `csv:"stop_name"`
	Latitude     float64 `csv:"stop_lat"`
	Longitude    float64 `csv:"stop_lon"`
	LocationType string  `csv:"location_type"`
	Parent       string  `csv:"parent_station"`
}

// LoadGTFSStops parses a GTFS stops.txt stream into stops. Entrances, generic
// nodes and boarding areas are skipped, as are rows without a name.
func LoadGTFSStops(r io.Reader) ([]Stop, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []*gtfsStop
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("parsing stops.txt: %w", err)
	}

	stops := make([]Stop, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		switch strings.TrimSpace(row.LocationType) {
		case "", "0", "1":
		default:
			continue
		}
		stops = append(stops, NewStop(strings.TrimSpace(row.ID), name, row.Latitude, row.Longitude))
	}

	return stops, nil
}

// LoadGTFSFile reads stops from a stops.txt file on disk.
func LoadGTFSFile(path string) ([]Stop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return LoadGTFSStops(f)
}
