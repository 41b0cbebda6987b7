package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/focus"
	"github.com/opencode-ai/lume/internal/theme"
)

// Options configure a Controller.
type Options struct {
	// ID names the dialog's focus subtree. Defaults to "modal".
	ID     string
	Title  string
	Policy Policy
	// OnClose runs exactly once per accepted dismissal.
	OnClose func()
	// Content renders the dialog body. Nil renders an empty content
	// region; a dialog with no content is still a valid dialog.
	Content func(theme.Styles) string
}

// Controller drives one modal: it reacts to the host's isOpen input
// and dismissal events, drives the focus trap, and describes itself to
// the accessible tree.
type Controller struct {
	opts  Options
	trap  *focus.Trap
	phase Phase
}

// NewController creates a closed modal controller over the given trap.
func NewController(trap *focus.Trap, opts Options) *Controller {
	if opts.ID == "" {
		opts.ID = "modal"
	}
	return &Controller{opts: opts, trap: trap}
}

// Phase returns the current visibility phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Root is the focus element handle of the dialog container.
func (c *Controller) Root() focus.Element {
	return focus.Element(c.opts.ID)
}

// CloseControl is the focus element handle of the close affordance.
func (c *Controller) CloseControl() focus.Element {
	return focus.Element(c.opts.ID + "-close")
}

// SetOpen feeds the host's isOpen input into the machine.
func (c *Controller) SetOpen(open bool) {
	next, fx := Transition(c.phase, open, DismissNone, c.opts.Policy)
	c.apply(next, fx)
}

// Dismiss feeds a dismissal event into the machine. Swallowed events
// leave the modal open and never reach OnClose. Events arriving while
// closed are dropped: only the host's isOpen input opens a modal.
func (c *Controller) Dismiss(ev Dismissal) {
	if c.phase != PhaseOpen {
		return
	}
	next, fx := Transition(c.phase, true, ev, c.opts.Policy)
	c.apply(next, fx)
}

func (c *Controller) apply(next Phase, fx Effects) {
	c.phase = next
	if fx.ActivateTrap {
		initial := c.CloseControl()
		if !c.opts.Policy.Dismissible {
			initial = focus.None
		}
		c.trap.Activate(c.Root(), initial)
	}
	if fx.DeactivateTrap {
		c.trap.Deactivate()
	}
	if fx.InvokeOnClose && c.opts.OnClose != nil {
		c.opts.OnClose()
	}
}

// Describe reports the dialog's accessible node. While closed the
// dialog is absent from the tree entirely, so ok is false.
func (c *Controller) Describe() (a11y.Node, bool) {
	if c.phase != PhaseOpen {
		return a11y.Node{}, false
	}
	return a11y.Node{
		Role:  a11y.RoleDialog,
		Name:  c.opts.Title,
		ID:    c.opts.ID,
		Modal: true,
	}, true
}

// View renders the open dialog centered over a dimmed backdrop. While
// closed it renders nothing.
func (c *Controller) View(styleSet theme.Styles, width, height int) string {
	if c.phase != PhaseOpen {
		return ""
	}

	var body strings.Builder
	title := styleSet.Title.Render(c.opts.Title)
	if c.opts.Policy.Dismissible {
		title += "  " + styleSet.Muted.Render("[esc] close")
	}
	body.WriteString(title)
	body.WriteString("\n\n")
	if c.opts.Content != nil {
		body.WriteString(c.opts.Content(styleSet))
	}

	dialog := styleSet.Dialog.Render(body.String())
	if width <= 0 || height <= 0 {
		return dialog
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
