package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ruminaider/profilectl/internal/profiles"
)

// picker is a multi-select list of profiles. Space toggles the profile under
// the cursor and Enter confirms.
type picker struct {
	title    string
	items    []profiles.Profile
	selected map[int]bool
	cursor   int
	done     bool
}

func newPicker(title string, items []profiles.Profile) picker {
	return picker{
		title:    title,
		items:    items,
		selected: make(map[int]bool),
	}
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			p.selected = nil
			p.done = true
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case " ", "space", "x":
			p.selected[p.cursor] = !p.selected[p.cursor]
		case "enter":
			p.done = true
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p picker) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s\n", p.title)
	b.WriteString("  space: toggle · enter: confirm · esc: cancel\n\n")

	for i, item := range p.items {
		cursor := "  "
		if p.cursor == i {
			cursor = "> "
		}
		check := "[ ]"
		if p.selected[i] {
			check = "[x]"
		}
		fmt.Fprintf(&b, "  %s%s %s  %s\n", cursor, check, item.Name, profiles.ProfileSummary(item))
	}
	return b.String()
}

// Selected returns the names of the selected profiles, or nil if cancelled.
func (p picker) Selected() []string {
	if p.selected == nil {
		return nil
	}
	result := []string{}
	for i, item := range p.items {
		if p.selected[i] {
			result = append(result, item.Name)
		}
	}
	return result
}

// runPicker lets the user choose profiles. It returns huh.ErrUserAborted
// when the picker is cancelled.
func runPicker(title string, items []profiles.Profile) ([]string, error) {
	model, err := tea.NewProgram(newPicker(title, items)).Run()
	if err != nil {
		return nil, err
	}
	selected := model.(picker).Selected()
	if selected == nil {
		return nil, huh.ErrUserAborted
	}
	return selected, nil
}

// pickOne asks for a single profile with a huh select.
func pickOne(title string, items []profiles.Profile) (string, error) {
	options := make([]huh.Option[string], 0, len(items))
	for _, p := range items {
		options = append(options, huh.NewOption(p.Name+"  "+profiles.ProfileSummary(p), p.Name))
	}

	var name string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&name),
		),
	).Run()
	return name, err
}
