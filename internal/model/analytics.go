package model

import "time"

// EventKind names a counter on the analytics row.
type EventKind string

const (
	EventView     EventKind = "view"
	EventDownload EventKind = "download"
	EventShare    EventKind = "share"
)

// Valid reports whether k is a known counter.
func (k EventKind) Valid() bool {
	switch k {
	case EventView, EventDownload, EventShare:
		return true
	}
	return false
}

// Analytics holds the counters kept alongside each CV.
type Analytics struct {
	CVID         string     `json:"cv_id"`
	Views        int64      `json:"views"`
	Downloads    int64      `json:"downloads"`
	Shares       int64      `json:"shares"`
	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
