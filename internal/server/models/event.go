package models

import "time"

// EventType is the closed set of caregiving-activity tags. Adding a tag means
// adding a constant here and extending AllEventTypes; storage keeps the value
// as text so older rows survive the change.
type EventType string

const (
	EventTypePoop   EventType = "POOP"
	EventTypePee    EventType = "PEE"
	EventTypeNap    EventType = "NAP"
	EventTypeFeed   EventType = "FEED"
	EventTypeDiaper EventType = "DIAPER"
)

// AllEventTypes returns every known tag in a stable order. Stats reporting
// relies on this order so that absent types still show up with a zero count.
func AllEventTypes() []EventType {
	return []EventType{EventTypePoop, EventTypePee, EventTypeNap, EventTypeFeed, EventTypeDiaper}
}

// Valid reports whether t is one of the known tags.
func (t EventType) Valid() bool {
	switch t {
	case EventTypePoop, EventTypePee, EventTypeNap, EventTypeFeed, EventTypeDiaper:
		return true
	}
	return false
}

// Event is one recorded caregiving occurrence.
//
// Duration is elapsed minutes and is present only for interval-style
// activities (nap, feeding). DuringFeeding is a tri-state flag recorded for
// elimination events; nil means "not recorded". UserID is nil for rows that
// predate per-user attribution.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	Notes         *string   `json:"notes"`
	Duration      *int      `json:"duration"`
	DuringFeeding *bool     `json:"duringFeeding"`
	UserID        *string   `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
}
