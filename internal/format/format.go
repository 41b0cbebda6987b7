// Package format provides pure presentation helpers: display-string
// derivation and accessibility attribute values. Every function is
// stateless, deterministic, and total over nil/empty inputs.
package format

import "github.com/opencode-ai/lume/internal/theme"

// Default head/tail lengths for TruncateAddress. These match the
// acceptance data the kit ships with; hosts with different display
// widths should call TruncateAddressN instead.
const (
	AddressHeadLen = 26
	AddressTailLen = 4
)

// TruncateAddress shortens a wallet address for display using the
// default head/tail lengths. Addresses at or under the combined length
// are returned unchanged.
func TruncateAddress(address string) string {
	return TruncateAddressN(address, AddressHeadLen, AddressTailLen)
}

// TruncateAddressN keeps the first head and last tail runes of address
// with an ellipsis between them. The boundary is an inequality on total
// length: short addresses are never mangled.
func TruncateAddressN(address string, head, tail int) string {
	runes := []rune(address)
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}
	if len(runes) <= head+tail {
		return address
	}
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

// ThemeClassName maps a theme to its style class token. Unrecognized
// input is an InvalidThemeError, never a silent default, so a corrupt
// theme store surfaces early.
func ThemeClassName(t theme.Theme) (string, error) {
	switch t {
	case theme.Dark:
		return "dark-theme", nil
	case theme.Light:
		return "light-theme", nil
	default:
		return "", &theme.InvalidThemeError{Value: string(t)}
	}
}

// AriaInvalid derives the aria-invalid attribute value from an error
// message: "true" iff the message is non-empty.
func AriaInvalid(errorMessage string) string {
	if errorMessage != "" {
		return "true"
	}
	return "false"
}

// NormalizeControlledValue guarantees a control is never rendered with
// an absent value: nil becomes the empty string.
func NormalizeControlledValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ButtonAccessibleName resolves a button's accessible name. An explicit
// aria label wins when non-empty; otherwise the visible label, which
// may itself be empty — an empty name is valid.
func ButtonAccessibleName(label, ariaLabel string) string {
	if ariaLabel != "" {
		return ariaLabel
	}
	return label
}
