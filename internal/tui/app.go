// Package tui implements the lume demo host: a Bubble Tea program
// wiring the theme store, the control primitives, and the modal
// controller together the way an embedding application would.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/lume/internal/controls"
	"github.com/opencode-ai/lume/internal/focus"
	"github.com/opencode-ai/lume/internal/modal"
	"github.com/opencode-ai/lume/internal/theme"
)

// Config selects the initial state of the demo host.
type Config struct {
	Theme theme.Theme
	// OnThemeChange observes theme switches (the CLI logs them).
	OnThemeChange func(theme.Theme)
}

// Run launches the demo with defaults.
func Run() error {
	return RunWithConfig(Config{Theme: theme.Dark})
}

// RunWithConfig launches the demo host program.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth  = 60
	minHeight = 15
)

// Focus element handles for the base view, in tab order.
const (
	elemProfileButton focus.Element = "profile-button"
	elemNameInput     focus.Element = "name-input"
	elemOpenModal     focus.Element = "open-modal-button"
)

var baseTabOrder = []focus.Element{elemProfileButton, elemNameInput, elemOpenModal}

// hostState is the host-owned state the kit's callbacks write into.
type hostState struct {
	modalOpen   bool
	closeCount  int
	connected   bool
	enteredName string
}

// appHost implements focus.Host over the demo's element handles.
type appHost struct {
	focused   focus.Element
	modalRoot focus.Element
}

func (h *appHost) FocusableDescendants(root focus.Element) []focus.Element {
	if root == h.modalRoot {
		return []focus.Element{focus.Element(string(root) + "-close")}
	}
	return baseTabOrder
}

func (h *appHost) CurrentFocus() focus.Element { return h.focused }

func (h *appHost) MoveFocus(el focus.Element) { h.focused = el }

func (h *appHost) IsAttached(focus.Element) bool {
	// Demo elements live for the life of the program.
	return true
}

func (h *appHost) Fallback() focus.Element { return elemProfileButton }

type model struct {
	width  int
	height int

	store  *theme.Store
	styles theme.Styles

	host      *appHost
	state     *hostState
	trap      *focus.Trap
	nameInput *controls.Input
	dialog    *modal.Controller

	baseFocus int
}

func initialModel(cfg Config) model {
	store := theme.NewStore(cfg.Theme)
	if cfg.OnThemeChange != nil {
		store.Subscribe(cfg.OnThemeChange)
	}

	state := &hostState{}
	host := &appHost{focused: elemProfileButton, modalRoot: "modal"}
	trap := focus.NewTrap(host)

	nameInput := controls.NewInput(controls.InputOptions{
		ID:          string(elemNameInput),
		Label:       "Display name",
		Placeholder: "e.g. Ada",
		OnChange:    func(v string) { state.enteredName = v },
	})

	dialog := modal.NewController(trap, modal.Options{
		ID:    string(host.modalRoot),
		Title: "Disconnect wallet?",
		Policy: modal.Policy{
			Dismissible:         true,
			CloseOnOverlayClick: false,
		},
		OnClose: func() {
			state.modalOpen = false
			state.closeCount++
		},
		Content: func(s theme.Styles) string {
			return s.Text.Render("Press enter to confirm, esc to keep the session.")
		},
	})

	return model{
		store:     store,
		styles:    theme.BuildStyles(store.Current()),
		host:      host,
		state:     state,
		trap:      trap,
		nameInput: nameInput,
		dialog:    dialog,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.modalOpen {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "t":
		m.styles = theme.BuildStyles(m.store.Toggle())
		return m, nil
	case "tab":
		m.moveBaseFocus(1)
		return m, nil
	case "shift+tab":
		m.moveBaseFocus(-1)
		return m, nil
	case "enter", " ":
		m.activateFocused()
		return m, nil
	}

	if m.host.CurrentFocus() == elemNameInput {
		return m, m.nameInput.Update(msg)
	}
	return m, nil
}

func (m model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog.Dismiss(modal.DismissEscape)
	case "b":
		// Backdrop activation; swallowed unless the policy opts in.
		m.dialog.Dismiss(modal.DismissOverlay)
	case "enter", " ":
		if m.host.CurrentFocus() == m.dialog.CloseControl() {
			m.state.connected = false
			m.dialog.Dismiss(modal.DismissCloseControl)
		}
	case "tab":
		m.trap.Cycle(1)
	case "shift+tab":
		m.trap.Cycle(-1)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) moveBaseFocus(delta int) {
	m.baseFocus += delta
	if m.baseFocus < 0 {
		m.baseFocus = len(baseTabOrder) - 1
	}
	if m.baseFocus >= len(baseTabOrder) {
		m.baseFocus = 0
	}
	m.host.MoveFocus(baseTabOrder[m.baseFocus])
	if m.host.CurrentFocus() == elemNameInput {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

func (m *model) activateFocused() {
	switch m.host.CurrentFocus() {
	case elemProfileButton:
		var intent string
		profile := m.profile(&intent)
		for _, b := range profile.Buttons() {
			b.Click()
		}
		switch intent {
		case "connect":
			m.state.connected = true
		case "disconnect":
			// Disconnecting is confirmed through the modal.
			m.state.modalOpen = true
			m.dialog.SetOpen(true)
		}
	case elemOpenModal:
		m.state.modalOpen = true
		m.dialog.SetOpen(true)
	}
}

func (m model) profile(intent *string) controls.UserProfile {
	name := m.state.enteredName
	if name == "" {
		name = "Anonymous"
	}
	return controls.UserProfile{
		Data: controls.UserProfileData{
			ID:            "demo-user",
			Name:          name,
			WalletAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			IsConnected:   m.state.connected,
		},
		OnConnect:    func() { *intent = "connect" },
		OnDisconnect: func() { *intent = "disconnect" },
	}
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return joinLines(m.smallViewLines()) + "\n"
		}
	}

	if m.state.modalOpen {
		return m.dialog.View(m.styles, m.width, m.height)
	}

	var intent string
	profile := m.profile(&intent)

	openButton := controls.Button{
		ID:      string(elemOpenModal),
		Label:   "Open confirm dialog",
		Variant: controls.VariantSecondary,
	}

	lines := []string{
		m.styles.Title.Render("lume component demo"),
		"",
		profile.View(m.styles, m.host.CurrentFocus() == elemProfileButton),
		"",
		m.nameInput.View(m.styles),
		"",
		openButton.View(m.styles, m.host.CurrentFocus() == elemOpenModal),
		"",
		m.styles.Muted.Render(fmt.Sprintf("theme: %s", m.store.Current())),
		m.styles.Muted.Render("tab focus | enter activate | t theme | q quit"),
	}
	return joinLines(lines) + "\n"
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Error.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, line := range lines[1:] {
		out += "\n" + line
	}
	return out
}
