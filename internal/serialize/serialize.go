// Package serialize turns captured UI events and their target elements into
// plain JSON-able records. Dispatch is table driven: an authored list of
// categories (one extractor per category, each naming the event types or
// element tags it covers) is inverted once at package init into lookup
// tables keyed by the discriminator string. An event type or tag with no
// entry contributes nothing; nothing here raises.
package serialize

import (
	"strings"

	"github.com/vincentbai/domtrace-agent/internal/dom"
)

// Record maps field names to primitive values or nested Records. Value
// semantics only; safe to hand to encoding/json.
type Record map[string]any

// Serializer converts events to Records. The selection capability backs the
// "select" event category, which reads the page's ambient text selection
// rather than the event object.
type Serializer struct {
	selection dom.Selection
}

func New(selection dom.Selection) *Serializer {
	if selection == nil {
		selection = dom.NoSelection
	}
	return &Serializer{selection: selection}
}

// SerializeEvent returns the plain record form of event: the fields of its
// event class, if the type is registered, plus the serialized target,
// currentTarget and relatedTarget elements. When target and currentTarget
// are the same element the record shares one serialized value for both.
func (s *Serializer) SerializeEvent(event *dom.Event) Record {
	record := Record{}
	if extract, ok := eventExtractorByType[event.Type]; ok {
		mergeInto(record, extract(event, s.selection))
	}

	target := serializeElement(event.Target)
	record["target"] = target
	if event.CurrentTarget == event.Target {
		record["currentTarget"] = target
	} else {
		record["currentTarget"] = serializeElement(event.CurrentTarget)
	}
	record["relatedTarget"] = serializeElement(event.RelatedTarget)
	return record
}

// serializeElement returns nil for a nil element. Every element carries its
// geometry; tag categories merge their extra fields in authored order.
func serializeElement(element *dom.Element) Record {
	if element == nil {
		return nil
	}
	record := Record{"boundingClientRect": rectRecord(element.Rect)}
	for _, extract := range elementExtractorsByTag[strings.ToLower(element.TagName)] {
		mergeInto(record, extract(element))
	}
	return record
}

func rectRecord(r dom.Rect) Record {
	return Record{
		"top":    r.Top,
		"left":   r.Left,
		"right":  r.Right,
		"bottom": r.Bottom,
		"width":  r.Width,
		"height": r.Height,
		"x":      r.X,
		"y":      r.Y,
	}
}

func mergeInto(dst, src Record) {
	for key, value := range src {
		dst[key] = value
	}
}
