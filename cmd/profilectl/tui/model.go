package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/profilectl/internal/controller"
	"github.com/ruminaider/profilectl/internal/profiles"
)

// Options configures the profile manager screen.
type Options struct {
	// DeepLink names a profile to open for editing once the list loads.
	DeepLink string
	Mode     profiles.DisplayMode
}

// Model is the bubbletea model for the profile manager. It draws controller
// snapshots and turns key presses into controller calls.
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	opts Options

	state  controller.State
	cursor int

	// Edit form, present while the controller reports the modal open.
	form       *huh.Form
	fields     *profiles.Fields
	submitting bool // completed form handed to the controller

	overlay   Overlay // profession prompt
	spinner   spinner.Model
	statusBar StatusBar

	pending       int // operations in flight
	width, height int
	quitting      bool
}

// NewModel creates the screen for ctrl. Nothing is fetched until Init.
func NewModel(ctx context.Context, ctrl *controller.Controller, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	m := Model{
		ctx:       ctx,
		ctrl:      ctrl,
		opts:      opts,
		state:     ctrl.Snapshot(),
		spinner:   sp,
		statusBar: NewStatusBar(),
		pending:   1, // Init always starts the load
	}
	m.syncStatusBar()
	return m
}

// Run shows the profile manager until the user quits or ctx is done.
func Run(ctx context.Context, ctrl *controller.Controller, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, ctrl, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	// Send blocks until the event loop reads the message, and renders can
	// fire from inside Update. Versions let the model drop reordered states.
	ctrl.OnRender(func(st controller.State) {
		go p.Send(StateMsg{State: st})
	})
	defer ctrl.OnRender(nil)

	_, err := p.Run()
	return err
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

func (m Model) load() tea.Cmd {
	deepLink := m.opts.DeepLink
	return m.run(OpLoad, func(ctx context.Context) error {
		return m.ctrl.Load(ctx, deepLink)
	})
}

// run wraps a blocking controller call as a command.
func (m Model) run(op Op, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return OpDoneMsg{Op: op, Err: fn(ctx)}
	}
}

// dispatch counts op as pending and returns its command.
func (m *Model) dispatch(op Op, fn func(context.Context) error) tea.Cmd {
	m.pending++
	return m.run(op, fn)
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.SetWidth(msg.Width)
		m.overlay.SetWidth(OverlayMaxWidth(msg.Width))
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StateMsg:
		return m, m.applyState(msg.State)

	case OpDoneMsg:
		return m.handleOpDone(msg)
	}

	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// applyState adopts st unless a newer state was already drawn, opening or
// dropping the form to follow the controller's modal flag.
func (m *Model) applyState(st controller.State) tea.Cmd {
	if st.Version < m.state.Version {
		return nil
	}
	m.state = st
	if m.cursor >= len(st.Profiles) {
		m.cursor = max(len(st.Profiles)-1, 0)
	}
	m.syncStatusBar()

	switch {
	case st.ModalOpen && m.form == nil:
		return m.openForm(st.Form)
	case !st.ModalOpen && m.form != nil:
		m.form = nil
		m.fields = nil
		m.submitting = false
		m.overlay = Overlay{}
	}
	return nil
}

func (m *Model) openForm(f profiles.Fields) tea.Cmd {
	m.fields = &f
	m.submitting = false
	m.form = NewProfileForm(m.fields, m.state.Placeholders, m.state.Mode)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.formWidth())
	}
	m.syncStatusBar()
	return m.form.Init()
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 80)
}

func (m Model) handleOpDone(msg OpDoneMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}
	if msg.Op == OpSubmit {
		m.submitting = false
	}
	cmd := m.applyState(m.ctrl.Snapshot())

	// A failed submit or a finished generate leaves the modal open with new
	// form contents. The old huh form is either completed or stale.
	if m.form != nil && m.state.ModalOpen {
		if msg.Op == OpGenerate || (msg.Op == OpSubmit && msg.Err != nil) {
			cmd = m.openForm(m.ctrl.Form())
		}
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Profiles)-1 {
			m.cursor++
		}
	case "n":
		m.ctrl.OpenNew()
		return m, m.applyState(m.ctrl.Snapshot())
	case "e", "enter":
		if name, ok := m.selected(); ok {
			_ = m.ctrl.OpenEdit(name) // failures surface as the alert
			return m, m.applyState(m.ctrl.Snapshot())
		}
	case "d":
		if name, ok := m.selected(); ok {
			return m, m.dispatch(OpDelete, func(ctx context.Context) error {
				return m.ctrl.Delete(ctx, name)
			})
		}
	case "c":
		if name, ok := m.selected(); ok {
			return m, m.dispatch(OpDuplicate, func(ctx context.Context) error {
				return m.ctrl.Duplicate(ctx, name)
			})
		}
	case "r":
		return m, m.dispatch(OpRefresh, m.ctrl.Refresh)
	case "x":
		m.ctrl.DismissAlert()
		return m, m.applyState(m.ctrl.Snapshot())
	}
	return m, nil
}

func (m Model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Profiles) {
		return "", false
	}
	return m.state.Profiles[m.cursor].Name, true
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.submitting {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil // the completed form stays until the submit finishes
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.state.Busy && key.String() != "ctrl+c" {
			return m, nil // form is about to be replaced by the generated one
		}
		switch key.String() {
		case "esc":
			m.ctrl.SetForm(*m.fields)
			m.ctrl.CloseModal()
			return m, m.applyState(m.ctrl.Snapshot())
		case "ctrl+g":
			m.overlay = NewTextInputOverlay("Generate profile", "Profession, e.g. lawyer", m.fields.Profession)
			m.overlay.SetWidth(OverlayMaxWidth(m.width))
			return m, nil
		}
	}

	fm, cmd := m.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Batch(cmd, m.submit())
	case huh.StateAborted:
		m.ctrl.CloseModal()
		return m, tea.Batch(cmd, m.applyState(m.ctrl.Snapshot()))
	}
	return m, cmd
}

// submit hands the form contents to the controller and sends them.
func (m *Model) submit() tea.Cmd {
	m.submitting = true
	m.ctrl.SetForm(*m.fields)
	return m.dispatch(OpSubmit, m.ctrl.Submit)
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// The closing command only produces an OverlayCloseMsg; handle it here
	// instead of sending it through the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg := extractOverlayClose(cmd); closeMsg != nil {
			return m.handleOverlayClose(*closeMsg)
		}
	}
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	if !msg.Confirmed || m.fields == nil {
		return m, nil
	}
	m.ctrl.SetForm(*m.fields)
	profession := msg.Result
	cmd := m.dispatch(OpGenerate, func(ctx context.Context) error {
		return m.ctrl.Generate(ctx, profession)
	})
	return m, cmd
}

func extractOverlayClose(cmd tea.Cmd) *OverlayCloseMsg {
	if cmd == nil {
		return nil
	}
	if m, ok := cmd().(OverlayCloseMsg); ok {
		return &m
	}
	return nil
}

func (m *Model) syncStatusBar() {
	mode, keys := "browse", browseShortcuts
	if m.form != nil {
		mode, keys = m.state.Mode.String(), formShortcuts
	}
	m.statusBar.Update(m.state.Username, len(m.state.Profiles), mode, keys)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var top strings.Builder
	top.WriteString(HeaderStyle.Render("AI Profiles"))
	top.WriteString("  " + UserStyle.Render("signed in as "+m.state.Username))
	if m.pending > 0 || m.state.Busy {
		top.WriteString("  " + m.spinner.View())
	}
	top.WriteString("\n")
	if alert := RenderAlert(m.state.Alert, m.width); alert != "" {
		top.WriteString(alert + "\n")
	}
	top.WriteString("\n")

	var body string
	switch {
	case m.form != nil:
		body = m.formView()
	case !m.state.Loaded && m.pending > 0:
		body = HelperTextStyle.Render("Loading profiles...")
	default:
		body = m.listView(m.bodyHeight(top.String()))
	}

	frame := top.String() + body
	if m.height > 0 {
		// Pin the status bar to the bottom row.
		if gap := m.height - lipgloss.Height(frame) - 1; gap > 0 {
			frame += strings.Repeat("\n", gap)
		}
	}
	frame += "\n" + m.statusBar.View()

	if m.overlay.Active() {
		height := m.height
		if height == 0 {
			height = lipgloss.Height(frame)
		}
		return Composite(frame, m.overlay.View(), max(m.width, lipgloss.Width(frame)), height)
	}
	return frame
}

func (m Model) formView() string {
	var b strings.Builder
	if m.state.Busy {
		b.WriteString(m.spinner.View() + " Generating profile...\n\n")
	}
	b.WriteString(m.form.View())
	return b.String()
}

func (m Model) bodyHeight(top string) int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-lipgloss.Height(top)-1, 1)
}

// listView renders the cards, scrolled so the selected card is visible
// within height lines. Zero height means unbounded.
func (m Model) listView(height int) string {
	if len(m.state.Profiles) == 0 {
		return HelperTextStyle.Render("No profiles yet. Press n to create one.")
	}

	width := CardWidth
	if m.width > 0 {
		width = min(m.width, 100)
	}

	var (
		lines    []string
		selStart int
		selEnd   int
	)
	for i, p := range m.state.Profiles {
		card := strings.Split(RenderCard(p, m.opts.Mode, width, i == m.cursor), "\n")
		if i == m.cursor {
			selStart = len(lines)
			selEnd = selStart + len(card)
		}
		lines = append(lines, card...)
	}

	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	start := max(0, min(selStart, selEnd-height))
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}
