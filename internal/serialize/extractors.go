package serialize

import (
	"strings"

	"github.com/vincentbai/domtrace-agent/internal/dom"
)

func extractElementValue(element *dom.Element) Record {
	return Record{"value": element.Value}
}

func extractElementCurrentTime(element *dom.Element) Record {
	return Record{"currentTime": element.CurrentTime}
}

// extractElementFiles contributes nothing unless the input's type attribute
// is "file"; a text or checkbox input has no file list.
func extractElementFiles(element *dom.Element) Record {
	if !strings.EqualFold(element.Type, "file") {
		return nil
	}
	files := make([]Record, 0, len(element.Files))
	for _, file := range element.Files {
		files = append(files, Record{
			"lastModified": file.LastModified,
			"name":         file.Name,
			"size":         file.Size,
			"type":         file.Type,
		})
	}
	return Record{"files": files}
}

func extractClipboard(event *dom.Event, _ dom.Selection) Record {
	return Record{"clipboardData": event.ClipboardData}
}

func extractComposition(event *dom.Event, _ dom.Selection) Record {
	return Record{"data": event.Data}
}

func extractKeyboard(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"altKey":      event.AltKey,
		"charCode":    event.CharCode,
		"code":        event.Code,
		"ctrlKey":     event.CtrlKey,
		"isComposing": event.IsComposing,
		"key":         event.Key,
		"keyCode":     event.KeyCode,
		"location":    event.Location,
		"metaKey":     event.MetaKey,
		"repeat":      event.Repeat,
		"shiftKey":    event.ShiftKey,
	}
}

func extractMouse(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"altKey":   event.AltKey,
		"button":   event.Button,
		"buttons":  event.Buttons,
		"clientX":  event.ClientX,
		"clientY":  event.ClientY,
		"ctrlKey":  event.CtrlKey,
		"metaKey":  event.MetaKey,
		"pageX":    event.PageX,
		"pageY":    event.PageY,
		"screenX":  event.ScreenX,
		"screenY":  event.ScreenY,
		"shiftKey": event.ShiftKey,
	}
}

// extractPointer extends the mouse fields with the pointer-only ones, so a
// pointer record is always a strict superset of a mouse record.
func extractPointer(event *dom.Event, selection dom.Selection) Record {
	record := extractMouse(event, selection)
	record["pointerId"] = event.PointerID
	record["width"] = event.Width
	record["height"] = event.Height
	record["pressure"] = event.Pressure
	record["tiltX"] = event.TiltX
	record["tiltY"] = event.TiltY
	record["pointerType"] = event.PointerType
	record["isPrimary"] = event.IsPrimary
	return record
}

// extractSelection reads the ambient selection capability; "select" events
// do not carry the selected text themselves.
func extractSelection(_ *dom.Event, selection dom.Selection) Record {
	return Record{"selectedText": selection.SelectedText()}
}

func extractTouch(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"altKey":   event.AltKey,
		"ctrlKey":  event.CtrlKey,
		"metaKey":  event.MetaKey,
		"shiftKey": event.ShiftKey,
	}
}

func extractUI(event *dom.Event, _ dom.Selection) Record {
	return Record{"detail": event.Detail}
}

func extractWheel(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"deltaMode": event.DeltaMode,
		"deltaX":    event.DeltaX,
		"deltaY":    event.DeltaY,
		"deltaZ":    event.DeltaZ,
	}
}

func extractAnimation(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"animationName": event.AnimationName,
		"pseudoElement": event.PseudoElement,
		"elapsedTime":   event.ElapsedTime,
	}
}

func extractTransition(event *dom.Event, _ dom.Selection) Record {
	return Record{
		"propertyName":  event.PropertyName,
		"pseudoElement": event.PseudoElement,
		"elapsedTime":   event.ElapsedTime,
	}
}
