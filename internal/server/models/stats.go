package models

// Stats aggregates events over a trailing window of days.
//
// ByType always contains every known tag, zero-valued when absent from the
// window. ByDay only contains days with at least one event.
type Stats struct {
	Total          int               `json:"total"`
	ByType         map[EventType]int `json:"byType"`
	ByDay          map[string]int    `json:"byDay"`
	AveragePerDay  float64           `json:"averagePerDay"`
	MostCommonHour int               `json:"mostCommonHour"`
}
