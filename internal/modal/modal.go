// Package modal implements the overlay dialog lifecycle: an
// open/close phase machine with an explicit dismissal policy, composed
// with a focus trap. The host owns visibility (the isOpen input); the
// controller reacts to it and to dismissal events, returning side
// effects as data so the machine is testable without a rendering
// harness.
package modal

// Phase is the modal's visibility state.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
)

func (p Phase) String() string {
	if p == PhaseOpen {
		return "open"
	}
	return "closed"
}

// Dismissal identifies where a dismissal request came from. The
// sources are independently controllable: clicking outside is not the
// same intent as clicking the close affordance.
type Dismissal int

const (
	DismissNone Dismissal = iota
	// DismissCloseControl is the explicit close affordance. Always accepted.
	DismissCloseControl
	// DismissOverlay is a click on the backdrop. Accepted only when the
	// policy opts in.
	DismissOverlay
	// DismissEscape is the Escape key. Always accepted; part of the
	// accessibility contract, not optional.
	DismissEscape
)

// Policy configures how a modal may be dismissed.
type Policy struct {
	// Dismissible controls whether a close affordance is rendered.
	Dismissible bool
	// CloseOnOverlayClick accepts backdrop clicks as dismissals.
	CloseOnOverlayClick bool
}

// Effects are the side effects a transition asks the caller to run, in
// order: trap activation/deactivation first, then the host callback.
type Effects struct {
	ActivateTrap   bool
	DeactivateTrap bool
	InvokeOnClose  bool
}

// Transition computes the next phase and its side effects from the
// previous phase, the host's isOpen input, and a dismissal event.
// Swallowed dismissals produce no effects at all.
func Transition(prev Phase, hostOpen bool, ev Dismissal, p Policy) (Phase, Effects) {
	switch prev {
	case PhaseClosed:
		if hostOpen {
			return PhaseOpen, Effects{ActivateTrap: true}
		}
		return PhaseClosed, Effects{}
	default: // PhaseOpen
		if !hostOpen {
			// The host withdrew the modal itself; it already knows, so
			// onClose is not invoked.
			return PhaseClosed, Effects{DeactivateTrap: true}
		}
		if accepted(ev, p) {
			return PhaseClosed, Effects{DeactivateTrap: true, InvokeOnClose: true}
		}
		return PhaseOpen, Effects{}
	}
}

func accepted(ev Dismissal, p Policy) bool {
	switch ev {
	case DismissCloseControl, DismissEscape:
		return true
	case DismissOverlay:
		return p.CloseOnOverlayClick
	default:
		return false
	}
}
