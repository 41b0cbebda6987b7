package controls

import (
	"strings"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/format"
	"github.com/opencode-ai/lume/internal/theme"
)

// ConnectLabel is the accessible name of the connect affordance.
const ConnectLabel = "Connect Wallet"

// DisconnectLabel is the accessible name of the disconnect affordance.
const DisconnectLabel = "Disconnect"

// UserProfileData is host-supplied and read-only to the kit.
type UserProfileData struct {
	ID            string
	Name          string
	WalletAddress string
	IsConnected   bool
}

// UserProfile formats a user's wallet identity for display. It owns no
// connection state: it reacts to IsConnected and forwards intent.
type UserProfile struct {
	Data         UserProfileData
	OnConnect    func()
	OnDisconnect func()
}

// Buttons returns the profile's affordances: exactly one connect
// button while disconnected, one disconnect button while connected.
func (p UserProfile) Buttons() []Button {
	if !p.Data.IsConnected {
		return []Button{{
			ID:      "profile-connect",
			Label:   ConnectLabel,
			Variant: VariantPrimary,
			OnClick: p.OnConnect,
		}}
	}
	return []Button{{
		ID:      "profile-disconnect",
		Label:   DisconnectLabel,
		Variant: VariantSecondary,
		OnClick: p.OnDisconnect,
	}}
}

// Describe reports the profile's accessible nodes.
func (p UserProfile) Describe() []a11y.Node {
	buttons := p.Buttons()
	nodes := make([]a11y.Node, 0, len(buttons))
	for _, b := range buttons {
		nodes = append(nodes, b.Describe())
	}
	return nodes
}

// View renders the formatted identity while connected, or the single
// connect affordance while not.
func (p UserProfile) View(styleSet theme.Styles, focused bool) string {
	if !p.Data.IsConnected {
		return p.Buttons()[0].View(styleSet, focused)
	}

	lines := []string{
		styleSet.Title.Render(p.Data.Name),
		styleSet.Muted.Render(format.TruncateAddress(p.Data.WalletAddress)),
		p.Buttons()[0].View(styleSet, focused),
	}
	return strings.Join(lines, "\n")
}
