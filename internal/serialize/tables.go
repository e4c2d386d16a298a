package serialize

import "github.com/vincentbai/domtrace-agent/internal/dom"

type elementExtractor func(*dom.Element) Record

type eventExtractor func(*dom.Event, dom.Selection) Record

// The authored tables below map each category to the discriminator strings
// it covers. They are inverted into dispatch tables during package init and
// never mutated afterwards, so concurrent readers need no locking.

type elementCategory struct {
	name    string
	tags    []string
	extract elementExtractor
}

var elementCategories = []elementCategory{
	{
		name:    "hasValue",
		tags:    []string{"button", "input", "meter", "option", "output", "progress", "select", "textarea"},
		extract: extractElementValue,
	},
	{
		name:    "hasCurrentTime",
		tags:    []string{"audio", "video"},
		extract: extractElementCurrentTime,
	},
	{
		name:    "hasFiles",
		tags:    []string{"input"},
		extract: extractElementFiles,
	},
}

type eventCategory struct {
	name    string
	types   []string
	extract eventExtractor
}

var eventCategories = []eventCategory{
	{
		name:    "clipboard",
		types:   []string{"copy", "cut", "paste"},
		extract: extractClipboard,
	},
	{
		name:    "composition",
		types:   []string{"compositionend", "compositionstart", "compositionupdate"},
		extract: extractComposition,
	},
	{
		name:    "keyboard",
		types:   []string{"keydown", "keypress", "keyup"},
		extract: extractKeyboard,
	},
	{
		name: "mouse",
		// "doubleclick" is preserved as authored upstream; the standard
		// event name "dblclick" is not registered.
		types: []string{
			"click", "contextmenu", "doubleclick", "mousedown", "mouseenter",
			"mouseleave", "mousemove", "mouseout", "mouseover", "mouseup",
		},
		extract: extractMouse,
	},
	{
		name: "pointer",
		types: []string{
			"pointerdown", "pointermove", "pointerup", "pointercancel",
			"gotpointercapture", "lostpointercapture", "pointerenter",
			"pointerleave", "pointerover", "pointerout",
		},
		extract: extractPointer,
	},
	{
		name:    "selection",
		types:   []string{"select"},
		extract: extractSelection,
	},
	{
		name:    "touch",
		types:   []string{"touchcancel", "touchend", "touchmove", "touchstart"},
		extract: extractTouch,
	},
	{
		name:    "ui",
		types:   []string{"scroll"},
		extract: extractUI,
	},
	{
		name:    "wheel",
		types:   []string{"wheel"},
		extract: extractWheel,
	},
	{
		name:    "animation",
		types:   []string{"animationstart", "animationend", "animationiteration"},
		extract: extractAnimation,
	},
	{
		name:    "transition",
		types:   []string{"transitionrun", "transitionstart", "transitionend", "transitioncancel"},
		extract: extractTransition,
	},
}

var (
	elementExtractorsByTag = invertElementCategories(elementCategories)
	eventExtractorByType   = invertEventCategories(eventCategories)
)

// invertElementCategories builds the tag dispatch table. A tag may belong
// to several categories (an input has both a value and, when type="file",
// files), so each tag maps to its extractors in authored order.
func invertElementCategories(categories []elementCategory) map[string][]elementExtractor {
	byTag := make(map[string][]elementExtractor)
	for _, category := range categories {
		for _, tag := range category.tags {
			byTag[tag] = append(byTag[tag], category.extract)
		}
	}
	return byTag
}

// invertEventCategories builds the event type dispatch table. Event classes
// are mutually exclusive by type, so each type maps to a single extractor;
// if a type were ever authored under two categories the later one wins.
func invertEventCategories(categories []eventCategory) map[string]eventExtractor {
	byType := make(map[string]eventExtractor)
	for _, category := range categories {
		for _, eventType := range category.types {
			byType[eventType] = category.extract
		}
	}
	return byType
}
