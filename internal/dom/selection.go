package dom

// Selection exposes the page's ambient text selection. The "select" event
// does not carry the selected text itself; serializers read it from this
// capability instead, so the dependency on global browser state is explicit
// in the wiring rather than hidden inside an extractor.
type Selection interface {
	SelectedText() string
}

// StaticSelection adapts a selection snapshot carried over the wire.
type StaticSelection string

func (s StaticSelection) SelectedText() string { return string(s) }

// NoSelection reports an empty selection.
var NoSelection Selection = StaticSelection("")
