// Package theme holds the active theme identifier and the token
// palettes the rest of the UI derives its styles from.
package theme

import "fmt"

// Theme identifies one of the available palettes.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// InvalidThemeError reports a theme value outside the known set.
type InvalidThemeError struct {
	Value string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q", e.Value)
}

// Valid reports whether t is one of the known themes.
func Valid(t Theme) bool {
	switch t {
	case Light, Dark:
		return true
	default:
		return false
	}
}

// Store holds the active theme and notifies subscribers on change.
// It is owned by a single host and not safe for concurrent use.
type Store struct {
	current Theme
	nextID  int
	subs    []subscription
}

type subscription struct {
	id int
	fn func(Theme)
}

// NewStore creates a store with the given initial theme. The initial
// value is host-validated: callers resolve it through Valid (or
// config.InitialTheme, which rejects unknown identifiers with
// InvalidThemeError) before construction. An unknown value still falls
// back to Dark here so that exactly one active value from the closed
// set holds from birth. After construction, Set is the only mutation
// path and it never coerces.
func NewStore(initial Theme) *Store {
	if !Valid(initial) {
		initial = Dark
	}
	return &Store{current: initial}
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	return s.current
}

// Set switches the active theme and synchronously notifies every
// subscriber, in subscription order, before returning.
func (s *Store) Set(t Theme) error {
	if !Valid(t) {
		return &InvalidThemeError{Value: string(t)}
	}
	s.current = t
	for _, sub := range s.subs {
		sub.fn(t)
	}
	return nil
}

// Toggle flips between Light and Dark and returns the new theme.
func (s *Store) Toggle() Theme {
	next := Dark
	if s.current == Dark {
		next = Light
	}
	// Set cannot fail here: next is always a member of the closed set.
	_ = s.Set(next)
	return next
}

// Subscribe registers fn to run on every theme change. The returned
// function removes the subscription; calling it twice is harmless.
func (s *Store) Subscribe(fn func(Theme)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
