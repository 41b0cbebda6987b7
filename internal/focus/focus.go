// Package focus keeps keyboard focus inside an overlay's subtree while
// it is open and restores focus when it closes. Terminal UIs have no
// document to query, so the Host capability interface owns element
// attachment and movement; the Trap owns only the trapping state
// machine and the focus memory for one open/close cycle.
package focus

// Element is an opaque handle for a focusable element, minted by the
// host. The zero value means "no element".
type Element string

// None is the absent element.
const None Element = ""

// Host is the capability surface a trap needs from the rendering
// layer. A test double satisfies it without a real UI.
type Host interface {
	// FocusableDescendants lists root's focusable subtree in tab order.
	FocusableDescendants(root Element) []Element
	// CurrentFocus reports which element holds focus, or None.
	CurrentFocus() Element
	// MoveFocus gives focus to el.
	MoveFocus(el Element)
	// IsAttached reports whether el still exists in the tree.
	IsAttached(el Element) bool
	// Fallback is the element to focus when a restore target is gone.
	Fallback() Element
}

type state int

const (
	idle state = iota
	trapping
)

// Trap is the focus-trap state machine: Idle -> Trapping -> Idle.
// It is owned by a single controller and not safe for concurrent use.
type Trap struct {
	host  Host
	state state
	root  Element
	// previous is the focus memory: captured on activate, used and
	// cleared on deactivate.
	previous Element
}

// NewTrap creates an idle trap over the given host.
func NewTrap(host Host) *Trap {
	return &Trap{host: host}
}

// Active reports whether the trap is currently holding focus.
func (t *Trap) Active() bool {
	return t.state == trapping
}

// Activate captures the currently focused element, then moves focus to
// initial, or the first focusable descendant of root when initial is
// None, or root itself when the subtree has no focusables (a modal with
// no interactive content is still valid). Focus has moved before
// Activate returns. Calling Activate while already trapping is a
// no-op: the still-valid focus memory must not be overwritten.
func (t *Trap) Activate(root, initial Element) {
	if t.state == trapping {
		return
	}
	t.previous = t.host.CurrentFocus()
	t.root = root

	target := initial
	if target == None {
		if focusables := t.host.FocusableDescendants(root); len(focusables) > 0 {
			target = focusables[0]
		} else {
			target = root
		}
	}
	t.host.MoveFocus(target)
	t.state = trapping
}

// Cycle moves focus forward (delta > 0) or backward (delta < 0) through
// root's focusable descendants, wrapping at either end so focus never
// leaves the subtree. It returns the newly focused element, or None
// when the trap is idle or the subtree has no focusables.
func (t *Trap) Cycle(delta int) Element {
	if t.state != trapping || delta == 0 {
		return None
	}
	focusables := t.host.FocusableDescendants(t.root)
	if len(focusables) == 0 {
		return None
	}

	idx := 0
	current := t.host.CurrentFocus()
	for i, el := range focusables {
		if el == current {
			idx = i + delta
			break
		}
	}
	idx %= len(focusables)
	if idx < 0 {
		idx += len(focusables)
	}
	t.host.MoveFocus(focusables[idx])
	return focusables[idx]
}

// Deactivate restores focus to the remembered element if it is still
// attached, otherwise to the host's fallback, and clears the focus
// memory. Calling Deactivate while idle is a no-op.
func (t *Trap) Deactivate() {
	if t.state != trapping {
		return
	}
	target := t.previous
	if target == None || !t.host.IsAttached(target) {
		target = t.host.Fallback()
	}
	t.host.MoveFocus(target)
	t.previous = None
	t.root = None
	t.state = idle
}
