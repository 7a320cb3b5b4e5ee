package textedit

import "fmt"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// ButtonMask is a set of held mouse buttons.
type ButtonMask uint8

// Has returns true if b is held.
func (m ButtonMask) Has(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return m&(1<<b) != 0
}

// With returns the mask with b held.
func (m ButtonMask) With(b MouseButton) ButtonMask {
	if b < 0 || b >= MouseButtonCount {
		return m
	}
	return m | 1<<b
}

// Key represents a keyboard key the editor reacts to.
// Printable characters arrive as EventTextInput, not as keys.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has returns true if all modifiers in o are held.
func (m Modifier) Has(o Modifier) bool { return m&o == o }

// Command is an editing command not tied to a particular key.
type Command int

const (
	CommandNone Command = iota
	CommandSelectAll
	CommandCopy
	CommandCut
	CommandPaste
)

func (c Command) String() string {
	switch c {
	case CommandSelectAll:
		return "select-all"
	case CommandCopy:
		return "copy"
	case CommandCut:
		return "cut"
	case CommandPaste:
		return "paste"
	default:
		return "none"
	}
}

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventTextInput
	EventKeyDown
	EventCommand
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMove:
		return "pointer-move"
	case EventTextInput:
		return "text-input"
	case EventKeyDown:
		return "key-down"
	case EventCommand:
		return "command"
	default:
		return "none"
	}
}

// Event is one normalized input event.
// Backends translate their native events into this form; see the glfw and
// tcell adapters under backend/.
type Event struct {
	Type EventType

	// Pointer position in device pixels.
	X, Y float32
	// Button that changed (pointer down/up).
	Button MouseButton
	// Buttons held after the event.
	Buttons ButtonMask

	// Text fragment for EventTextInput.
	Text string

	Key  Key
	Mods Modifier

	Command Command
}

// PointerDown creates a button press event at device coordinates (x, y).
func PointerDown(x, y float32, b MouseButton) Event {
	return Event{Type: EventPointerDown, X: x, Y: y, Button: b, Buttons: ButtonMask(0).With(b)}
}

// PointerUp creates a button release event.
func PointerUp(x, y float32, b MouseButton) Event {
	return Event{Type: EventPointerUp, X: x, Y: y, Button: b}
}

// PointerMove creates a motion event with the given buttons held.
func PointerMove(x, y float32, held ButtonMask) Event {
	return Event{Type: EventPointerMove, X: x, Y: y, Buttons: held}
}

// TextInput creates a text input event.
func TextInput(text string) Event {
	return Event{Type: EventTextInput, Text: text}
}

// KeyPress creates a key press (or repeat) event.
func KeyPress(k Key, mods Modifier) Event {
	return Event{Type: EventKeyDown, Key: k, Mods: mods}
}

// CommandEvent creates a command event.
func CommandEvent(c Command) Event {
	return Event{Type: EventCommand, Command: c}
}

func (e Event) String() string {
	switch e.Type {
	case EventPointerDown, EventPointerUp, EventPointerMove:
		return fmt.Sprintf("%s(%.1f,%.1f buttons=%b)", e.Type, e.X, e.Y, e.Buttons)
	case EventTextInput:
		return fmt.Sprintf("%s(%q)", e.Type, e.Text)
	case EventKeyDown:
		return fmt.Sprintf("%s(%s mods=%04b)", e.Type, KeyName(e.Key), e.Mods)
	case EventCommand:
		return fmt.Sprintf("%s(%s)", e.Type, e.Command)
	default:
		return e.Type.String()
	}
}

// EventQueue collects events between dispatch rounds.
// Backends push from their callbacks; the application drains once per frame.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.events) }

// Drain returns the queued events and empties the queue.
// The returned slice is only valid until the next Push.
func (q *EventQueue) Drain() []Event {
	ev := q.events
	q.events = q.events[:0]
	return ev
}

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
