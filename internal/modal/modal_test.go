package modal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/focus"
	"github.com/opencode-ai/lume/internal/theme"
)

// stubHost is a minimal focus.Host for driving a controller in tests.
type stubHost struct {
	focused  focus.Element
	detached map[focus.Element]bool
	moves    []focus.Element
}

func (h *stubHost) FocusableDescendants(root focus.Element) []focus.Element {
	return []focus.Element{focus.Element(string(root) + "-close")}
}
func (h *stubHost) CurrentFocus() focus.Element { return h.focused }
func (h *stubHost) MoveFocus(el focus.Element) {
	h.focused = el
	h.moves = append(h.moves, el)
}
func (h *stubHost) Fallback() focus.Element      { return "body" }
func (h *stubHost) IsAttached(el focus.Element) bool {
	return el != focus.None && !h.detached[el]
}

func TestTransition(t *testing.T) {
	policy := Policy{Dismissible: true}

	tests := []struct {
		name     string
		prev     Phase
		hostOpen bool
		ev       Dismissal
		policy   Policy
		want     Phase
		wantFx   Effects
	}{
		{
			name: "closed stays closed", prev: PhaseClosed, hostOpen: false,
			want: PhaseClosed, wantFx: Effects{},
		},
		{
			name: "host opens", prev: PhaseClosed, hostOpen: true,
			want: PhaseOpen, wantFx: Effects{ActivateTrap: true},
		},
		{
			name: "host withdraws without onClose", prev: PhaseOpen, hostOpen: false,
			want: PhaseClosed, wantFx: Effects{DeactivateTrap: true},
		},
		{
			name: "close control always accepted", prev: PhaseOpen, hostOpen: true,
			ev: DismissCloseControl, policy: policy,
			want: PhaseClosed, wantFx: Effects{DeactivateTrap: true, InvokeOnClose: true},
		},
		{
			name: "escape always accepted", prev: PhaseOpen, hostOpen: true,
			ev: DismissEscape, policy: policy,
			want: PhaseClosed, wantFx: Effects{DeactivateTrap: true, InvokeOnClose: true},
		},
		{
			name: "overlay accepted when opted in", prev: PhaseOpen, hostOpen: true,
			ev: DismissOverlay, policy: Policy{CloseOnOverlayClick: true},
			want: PhaseClosed, wantFx: Effects{DeactivateTrap: true, InvokeOnClose: true},
		},
		{
			name: "overlay swallowed by default", prev: PhaseOpen, hostOpen: true,
			ev: DismissOverlay, policy: policy,
			want: PhaseOpen, wantFx: Effects{},
		},
		{
			name: "no event keeps the modal open", prev: PhaseOpen, hostOpen: true,
			ev: DismissNone, policy: policy,
			want: PhaseOpen, wantFx: Effects{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, fx := Transition(tt.prev, tt.hostOpen, tt.ev, tt.policy)
			require.Equal(t, tt.want, next)
			require.Equal(t, tt.wantFx, fx)
		})
	}
}

func newController(host *stubHost, opts Options) *Controller {
	return NewController(focus.NewTrap(host), opts)
}

func TestControllerDismissalPolicy(t *testing.T) {
	t.Run("overlay click closes when opted in", func(t *testing.T) {
		closes := 0
		c := newController(&stubHost{}, Options{
			Title:   "Confirm",
			Policy:  Policy{Dismissible: true, CloseOnOverlayClick: true},
			OnClose: func() { closes++ },
		})
		c.SetOpen(true)
		c.Dismiss(DismissOverlay)

		require.Equal(t, PhaseClosed, c.Phase())
		require.Equal(t, 1, closes)
	})

	t.Run("overlay click is swallowed by default", func(t *testing.T) {
		closes := 0
		c := newController(&stubHost{}, Options{
			Title:   "Confirm",
			Policy:  Policy{Dismissible: true},
			OnClose: func() { closes++ },
		})
		c.SetOpen(true)
		c.Dismiss(DismissOverlay)

		require.Equal(t, PhaseOpen, c.Phase())
		require.Equal(t, 0, closes)
	})

	t.Run("escape always closes exactly once", func(t *testing.T) {
		closes := 0
		c := newController(&stubHost{}, Options{
			Title:   "Confirm",
			Policy:  Policy{}, // not even dismissible
			OnClose: func() { closes++ },
		})
		c.SetOpen(true)
		c.Dismiss(DismissEscape)
		c.Dismiss(DismissEscape) // already closed; swallowed

		require.Equal(t, PhaseClosed, c.Phase())
		require.Equal(t, 1, closes)
	})

	t.Run("dismissal while closed never reopens", func(t *testing.T) {
		host := &stubHost{focused: "open-button"}
		closes := 0
		c := newController(host, Options{
			Title:   "Confirm",
			Policy:  Policy{Dismissible: true, CloseOnOverlayClick: true},
			OnClose: func() { closes++ },
		})
		c.SetOpen(true)
		c.Dismiss(DismissEscape)

		movesAfterClose := len(host.moves)
		for _, ev := range []Dismissal{DismissEscape, DismissOverlay, DismissCloseControl} {
			c.Dismiss(ev)
			require.Equal(t, PhaseClosed, c.Phase(),
				"dismissal on a closed modal must not reopen it")
		}
		require.Equal(t, 1, closes)
		require.Len(t, host.moves, movesAfterClose,
			"the trap must not re-activate on a stray dismissal")
		_, ok := c.Describe()
		require.False(t, ok)
	})

	t.Run("close control always closes", func(t *testing.T) {
		closes := 0
		c := newController(&stubHost{}, Options{
			Title:   "Confirm",
			Policy:  Policy{Dismissible: true, CloseOnOverlayClick: false},
			OnClose: func() { closes++ },
		})
		c.SetOpen(true)
		c.Dismiss(DismissCloseControl)
		require.Equal(t, 1, closes)
	})
}

func TestControllerFocus(t *testing.T) {
	t.Run("open moves focus into the dialog, close restores it", func(t *testing.T) {
		host := &stubHost{focused: "open-button"}
		c := newController(host, Options{
			Title:  "Settings",
			Policy: Policy{Dismissible: true},
		})

		c.SetOpen(true)
		require.Equal(t, c.CloseControl(), host.CurrentFocus(),
			"focus must land on the close control before SetOpen returns")

		c.SetOpen(false)
		require.Equal(t, focus.Element("open-button"), host.CurrentFocus())
	})

	t.Run("detached opener falls back", func(t *testing.T) {
		host := &stubHost{focused: "open-button", detached: map[focus.Element]bool{}}
		c := newController(host, Options{Title: "Settings", Policy: Policy{Dismissible: true}})

		c.SetOpen(true)
		host.detached["open-button"] = true
		c.Dismiss(DismissEscape)

		require.Equal(t, focus.Element("body"), host.CurrentFocus())
	})
}

func TestControllerDescribe(t *testing.T) {
	c := newController(&stubHost{}, Options{Title: "Session expired", Policy: Policy{Dismissible: true}})

	t.Run("closed dialog is absent from the accessible tree", func(t *testing.T) {
		_, ok := c.Describe()
		require.False(t, ok)
	})

	t.Run("open dialog exposes role, name and modal flag", func(t *testing.T) {
		c.SetOpen(true)
		node, ok := c.Describe()
		require.True(t, ok)
		require.Equal(t, a11y.RoleDialog, node.Role)
		require.Equal(t, "Session expired", node.Name)
		require.True(t, node.Modal)
	})

	t.Run("absent again after dismissal", func(t *testing.T) {
		c.Dismiss(DismissEscape)
		_, ok := c.Describe()
		require.False(t, ok)
	})
}

func TestControllerView(t *testing.T) {
	styles := theme.DefaultStyles()

	t.Run("closed renders nothing", func(t *testing.T) {
		c := newController(&stubHost{}, Options{Title: "Hello"})
		require.Empty(t, c.View(styles, 80, 24))
	})

	t.Run("nil content still renders a valid dialog shell", func(t *testing.T) {
		c := newController(&stubHost{}, Options{Title: "Hello", Policy: Policy{Dismissible: true}})
		c.SetOpen(true)
		out := c.View(styles, 80, 24)
		require.Contains(t, out, "Hello")
	})

	t.Run("content renders inside the dialog", func(t *testing.T) {
		c := newController(&stubHost{}, Options{
			Title:   "Hello",
			Content: func(s theme.Styles) string { return s.Text.Render("body text") },
		})
		c.SetOpen(true)
		out := c.View(styles, 80, 24)
		require.Contains(t, out, "body text")
	})

	t.Run("zero viewport skips centering", func(t *testing.T) {
		c := newController(&stubHost{}, Options{Title: "Hello"})
		c.SetOpen(true)
		out := c.View(styles, 0, 0)
		require.True(t, strings.Contains(out, "Hello"))
	})
}
