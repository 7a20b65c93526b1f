package model

import (
	"encoding/json"
	"time"
)

// Event is a dated school event (sports, cultural, academic ...).
type Event struct {
	Title       string    `json:"title" bson:"title" binding:"required"`
	Description *string   `json:"description" bson:"description"`
	Date        time.Time `json:"date" bson:"date" binding:"required"`
	Location    *string   `json:"location" bson:"location"`
	Category    *string   `json:"category" bson:"category"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	aux := struct {
		*plain
		Date json.RawMessage `json:"date"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	ts, err := decodeTimestamp(aux.Date, "date")
	if err != nil {
		return err
	}
	if ts != nil {
		e.Date = *ts
	}
	return nil
}
