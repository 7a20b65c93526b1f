package model

import (
	"encoding/json"
	"time"
)

// Documented notice priorities. Priority is not restricted to these values.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Notice is a published announcement.
type Notice struct {
	Title       string     `json:"title" bson:"title" binding:"required"`
	Content     string     `json:"content" bson:"content" binding:"required"`
	Priority    *string    `json:"priority" bson:"priority"`
	PublishedAt *time.Time `json:"published_at" bson:"published_at"`
}

func (n *Notice) UnmarshalJSON(data []byte) error {
	type plain Notice
	aux := struct {
		*plain
		PublishedAt json.RawMessage `json:"published_at"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	ts, err := decodeTimestamp(aux.PublishedAt, "published_at")
	if err != nil {
		return err
	}
	n.PublishedAt = ts
	return nil
}

// ApplyDefaults fills omitted optional fields. now must be taken at insert
// time so every notice gets its own timestamp.
func (n *Notice) ApplyDefaults(now time.Time) {
	if n.Priority == nil {
		p := PriorityNormal
		n.Priority = &p
	}
	if n.PublishedAt == nil {
		ts := now.UTC()
		n.PublishedAt = &ts
	}
}
