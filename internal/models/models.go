package models

import (
	"github.com/vincentbai/domtrace-agent/internal/dom"
	"github.com/vincentbai/domtrace-agent/internal/serialize"
)

// CapturedEvent is one entry of the wire payload the capture extension
// POSTs to the agent: page context plus the raw event snapshot. The
// selection snapshot rides alongside the event because the agent runs
// outside the browser and cannot read the page's selection itself.
type CapturedEvent struct {
	TSUTC     int64     `json:"ts_utc"`
	TSISO     string    `json:"ts_iso"`
	URL       string    `json:"url"`
	Title     *string   `json:"title"` // nullable
	Selection string    `json:"selection"`
	Event     dom.Event `json:"event"`
}

type Batch struct {
	Events []CapturedEvent `json:"events"`
}

// StoredRecord pairs a captured event's page context with its serialized
// form, ready for persistence.
type StoredRecord struct {
	TSUTC  int64            `json:"ts_utc"`
	TSISO  string           `json:"ts_iso"`
	URL    string           `json:"url"`
	Title  *string          `json:"title"` // nullable
	Type   string           `json:"type"`
	Record serialize.Record `json:"record"`
}
