package tui

import "github.com/ruminaider/profilectl/internal/controller"

// Op identifies a backend operation started from the TUI.
type Op int

const (
	OpLoad Op = iota
	OpRefresh
	OpSubmit
	OpDelete
	OpDuplicate
	OpGenerate
)

// String returns a short verb for the operation.
func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpRefresh:
		return "refresh"
	case OpSubmit:
		return "submit"
	case OpDelete:
		return "delete"
	case OpDuplicate:
		return "duplicate"
	case OpGenerate:
		return "generate"
	default:
		return "unknown"
	}
}

// --- Inter-component messages ---

// StateMsg carries a controller snapshot into the event loop.
type StateMsg struct{ State controller.State }

// OpDoneMsg is sent when a backend operation returns.
type OpDoneMsg struct {
	Op  Op
	Err error
}

// OverlayCloseMsg is emitted when the overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string // Text result or empty
	Confirmed bool   // true = Enter, false = Esc
}
