// Package dom holds plain Go mirrors of the browser object shapes the
// serializer reads: elements with their geometry and form state, and the
// union of event-class fields carried by UI events. The capture extension
// snapshots these properties in the page and ships them as JSON, so every
// type here decodes directly from that payload.
package dom

// Rect is the result of getBoundingClientRect(), copied edge for edge.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// File describes one entry of an <input type="file"> selection.
type File struct {
	LastModified int64  `json:"lastModified"` // milliseconds since epoch
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"` // MIME type
}

// Element is a snapshot of a DOM element at capture time. TagName keeps the
// host casing (usually uppercase). Type is the element's type attribute,
// which decides whether an input carries Files.
type Element struct {
	TagName     string  `json:"tagName"`
	Rect        Rect    `json:"rect"`
	Value       string  `json:"value"`
	CurrentTime float64 `json:"currentTime"`
	Type        string  `json:"type"`
	Files       []File  `json:"files"`
}

// Event is a snapshot of a UI event. It carries the union of the fields of
// every event class; which of them are meaningful is decided by Type. The
// three element references are nil when the host reported none.
type Event struct {
	Type          string   `json:"type"`
	Target        *Element `json:"target"`
	CurrentTarget *Element `json:"currentTarget"`
	RelatedTarget *Element `json:"relatedTarget"`

	// clipboard events
	ClipboardData map[string]string `json:"clipboardData"` // MIME type to payload

	// composition events
	Data string `json:"data"`

	// keyboard events; AltKey through ShiftKey are shared with the mouse,
	// pointer and touch classes
	AltKey      bool   `json:"altKey"`
	CharCode    int    `json:"charCode"`
	Code        string `json:"code"`
	CtrlKey     bool   `json:"ctrlKey"`
	IsComposing bool   `json:"isComposing"`
	Key         string `json:"key"`
	KeyCode     int    `json:"keyCode"`
	Location    int    `json:"location"`
	MetaKey     bool   `json:"metaKey"`
	Repeat      bool   `json:"repeat"`
	ShiftKey    bool   `json:"shiftKey"`

	// mouse events
	Button  int     `json:"button"`
	Buttons int     `json:"buttons"`
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`
	PageX   float64 `json:"pageX"`
	PageY   float64 `json:"pageY"`
	ScreenX float64 `json:"screenX"`
	ScreenY float64 `json:"screenY"`

	// pointer events, on top of the mouse fields
	PointerID   int     `json:"pointerId"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Pressure    float64 `json:"pressure"`
	TiltX       int     `json:"tiltX"`
	TiltY       int     `json:"tiltY"`
	PointerType string  `json:"pointerType"`
	IsPrimary   bool    `json:"isPrimary"`

	// ui events
	Detail int `json:"detail"`

	// wheel events
	DeltaX    float64 `json:"deltaX"`
	DeltaY    float64 `json:"deltaY"`
	DeltaZ    float64 `json:"deltaZ"`
	DeltaMode int     `json:"deltaMode"`

	// animation and transition events; PseudoElement and ElapsedTime are
	// shared between the two classes
	AnimationName string  `json:"animationName"`
	PropertyName  string  `json:"propertyName"`
	PseudoElement string  `json:"pseudoElement"`
	ElapsedTime   float64 `json:"elapsedTime"`
}
