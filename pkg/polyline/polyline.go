// Package polyline decodes and encodes leg geometries in the Google encoded
// polyline format that OpenTripPlanner returns in legGeometry.points.
package polyline

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ErrTruncated is returned when the input ends in the middle of a value.
var ErrTruncated = errors.New("polyline: truncated input")

const precision = 1e5

// Decode turns an encoded polyline into a line string. Points are in orb
// order, longitude first.
func Decode(encoded string) (orb.LineString, error) {
	if encoded == "" {
		return nil, nil
	}

	line := make(orb.LineString, 0, len(encoded)/4)
	var lat, lon int
	for i := 0; i < len(encoded); {
		dLat, next, err := readValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dLon, next, err := readValue(encoded, next)
		if err != nil {
			return nil, err
		}
		i = next

		lat += dLat
		lon += dLon
		line = append(line, orb.Point{float64(lon) / precision, float64(lat) / precision})
	}
	return line, nil
}

func readValue(encoded string, i int) (int, int, error) {
	var result, shift int
	for {
		if i >= len(encoded) {
			return 0, i, ErrTruncated
		}
		b := int(encoded[i]) - 63
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}

// Encode is the inverse of Decode.
func Encode(line orb.LineString) string {
	if len(line) == 0 {
		return ""
	}

	buf := make([]byte, 0, len(line)*6)
	var prevLat, prevLon int
	for _, p := range line {
		lat := int(math.Round(p.Lat() * precision))
		lon := int(math.Round(p.Lon() * precision))
		buf = appendValue(buf, lat-prevLat)
		buf = appendValue(buf, lon-prevLon)
		prevLat, prevLon = lat, lon
	}
	return string(buf)
}

func appendValue(buf []byte, v int) []byte {
	if v < 0 {
		v = ^(v << 1)
	} else {
		v <<= 1
	}
	for v >= 0x20 {
		buf = append(buf, byte((v&0x1f)|0x20)+63)
		v >>= 5
	}
	return append(buf, byte(v)+63)
}

// LengthMeters is the great-circle length of line.
func LengthMeters(line orb.LineString) float64 {
	return geo.LengthHaversine(line)
}
