package types

import (
	"fmt"
	"time"
)

// Payload is a decoded wire payload, keyed by snake case field names
type Payload = map[string]any

type Entity interface {
	Serialize() Payload
	MarshalJSON() ([]byte, error)
}

// DateTime is an ISO-8601 timestamp kept exactly as it was received
type DateTime string

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
}

// Time parses the timestamp. Mapping never calls this, so a malformed
// timestamp only becomes an error when someone asks for its time value.
func (dt DateTime) Time() (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, string(dt))
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse %q as an ISO-8601 date time", string(dt))
}

func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}
