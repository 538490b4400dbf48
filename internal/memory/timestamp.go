package memory

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// naiveLayouts are ISO 8601 forms without a zone offset, as written by
// datetime.isoformat(). They are read in local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// flexTime decodes RFC 3339 timestamps and zone-less ISO timestamps.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*t = flexTime(parsed)
		return nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = flexTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON accepts both timestamp forms.
func (l *RecentLocation) UnmarshalJSON(data []byte) error {
	type plain RecentLocation
	aux := struct {
		*plain
		Timestamp flexTime `json:"timestamp"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.Timestamp = time.Time(aux.Timestamp)
	return nil
}

// UnmarshalJSON accepts both timestamp forms.
func (f *FavoriteLocation) UnmarshalJSON(data []byte) error {
	type plain FavoriteLocation
	aux := struct {
		*plain
		AddedAt flexTime `json:"added_at"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.AddedAt = time.Time(aux.AddedAt)
	return nil
}

// UnmarshalJSON accepts both timestamp forms.
func (e *SearchEntry) UnmarshalJSON(data []byte) error {
	type plain SearchEntry
	aux := struct {
		*plain
		Timestamp flexTime `json:"timestamp"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Timestamp = time.Time(aux.Timestamp)
	return nil
}
