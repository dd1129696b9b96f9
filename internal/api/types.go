package api

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateTimeFormat = time.RFC3339

// dateTime reads and writes RFC3339 timestamps, normalized to UTC.
type dateTime time.Time

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(dateTimeFormat))
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t.UTC())
	return nil
}
