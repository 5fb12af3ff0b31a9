package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// FlexTime is a time.Time that can be unmarshaled from an RFC 3339 timestamp
// or a bare "YYYY-MM-DD" date. Booking forms send the latter.
type FlexTime time.Time

var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexTime: expected string: %w", err)
	}

	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = FlexTime(t)
			return nil
		}
	}

	return fmt.Errorf("FlexTime: unrecognized time %q", s)
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).Format(time.RFC3339))
}

// Time converts FlexTime back to time.Time.
func (f FlexTime) Time() time.Time {
	return time.Time(f)
}
