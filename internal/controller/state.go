package controller

import (
	"maps"
	"slices"

	"github.com/ruminaider/profilectl/internal/profiles"
)

// AlertKind is the severity of the alert banner.
type AlertKind int

const (
	AlertWarning AlertKind = iota
	AlertError
)

func (k AlertKind) String() string {
	switch k {
	case AlertWarning:
		return "warning"
	case AlertError:
		return "error"
	default:
		return "unknown"
	}
}

// Alert is the single dismissible banner. A new alert replaces the old one.
type Alert struct {
	Kind    AlertKind
	Message string
}

// Mode selects what the submit handler does: create a new profile, or update
// the profile that was opened for editing.
type Mode struct {
	Editing bool
	// Name is the profile name at the time editing started. Updates are
	// keyed by it so the form can rename the profile.
	Name string
}

// CreateMode is the default submit mode.
func CreateMode() Mode { return Mode{} }

// EditMode submits as an update of the named profile.
func EditMode(name string) Mode { return Mode{Editing: true, Name: name} }

// SubmitLabel is the caption of the submit control.
func (m Mode) SubmitLabel() string {
	if m.Editing {
		return "Update"
	}
	return "Save"
}

func (m Mode) String() string {
	if m.Editing {
		return "edit " + m.Name
	}
	return "create"
}

// State is a point-in-time copy of everything a view needs to draw.
// Version grows with every change, so a view receiving states out of order
// can drop the older ones.
type State struct {
	Version      uint64
	Username     string
	Profiles     []profiles.Profile
	Loaded       bool
	Form         profiles.Fields
	Mode         Mode
	ModalOpen    bool
	Alert        *Alert
	Busy         bool
	Placeholders map[string]string
}

func (s State) clone() State {
	s.Profiles = slices.Clone(s.Profiles)
	s.Placeholders = maps.Clone(s.Placeholders)
	if s.Alert != nil {
		a := *s.Alert
		s.Alert = &a
	}
	return s
}
