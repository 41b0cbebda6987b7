// Package a11y describes what components expose to assistive
// technology. Components report Nodes; hosts and tests query the
// described tree instead of scraping rendered output.
package a11y

// Role identifies the kind of interactive element a node describes.
type Role string

const (
	RoleButton  Role = "button"
	RoleTextbox Role = "textbox"
	RoleDialog  Role = "dialog"
)

// Node is one entry in the accessible tree.
type Node struct {
	Role Role
	// Name is the accessible name: explicit label or fallback content.
	Name string
	// ID identifies the element for label association and focus.
	ID string
	// LabelFor carries the id a label is programmatically bound to.
	LabelFor string
	// Modal is set on dialog nodes that block the rest of the tree.
	Modal    bool
	Disabled bool
	// Invalid mirrors aria-invalid, as a string per the ARIA spec.
	Invalid string
}

// FindByName returns the first node whose accessible name matches.
func FindByName(nodes []Node, name string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// FindByRole returns every node with the given role.
func FindByRole(nodes []Node, role Role) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// FindByLabel resolves a labelled control: it follows LabelFor from a
// label-bearing node to the node with the matching ID.
func FindByLabel(nodes []Node, label string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == label && n.LabelFor != "" {
			for _, target := range nodes {
				if target.ID == n.LabelFor {
					return target, true
				}
			}
		}
	}
	return Node{}, false
}
