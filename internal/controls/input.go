package controls

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/format"
	"github.com/opencode-ai/lume/internal/theme"
)

// InputOptions configure a new Input.
type InputOptions struct {
	// ID names the control for label association and focus. When empty
	// one is minted so the association always resolves.
	ID          string
	Label       string
	Placeholder string
	// Value is the host-controlled value; nil displays as "".
	Value *string
	// Error marks the control invalid and is rendered adjacent to it.
	Error string
	// OnChange receives the normalized string value, never nil-derived.
	OnChange func(string)
}

// Input is a controlled text field: its displayed value is determined
// by the host, and every change reaches the host as a normalized
// string.
type Input struct {
	ID       string
	Label    string
	Error    string
	OnChange func(string)

	field textinput.Model
}

// NewInput creates an input from host props.
func NewInput(opts InputOptions) *Input {
	id := opts.ID
	if id == "" {
		id = "input-" + uuid.NewString()
	}

	field := textinput.New()
	field.Placeholder = opts.Placeholder
	field.SetValue(format.NormalizeControlledValue(opts.Value))

	return &Input{
		ID:       id,
		Label:    opts.Label,
		Error:    opts.Error,
		OnChange: opts.OnChange,
		field:    field,
	}
}

// SetValue applies a host-controlled value to the display.
func (in *Input) SetValue(value *string) {
	in.field.SetValue(format.NormalizeControlledValue(value))
}

// Value returns the currently displayed string.
func (in *Input) Value() string {
	return in.field.Value()
}

// HandleChange processes one raw change event: the value is normalized
// before it reaches the display or the host.
func (in *Input) HandleChange(raw *string) {
	normalized := format.NormalizeControlledValue(raw)
	in.field.SetValue(normalized)
	if in.OnChange != nil {
		in.OnChange(normalized)
	}
}

// Update forwards a terminal event to the field and reports edits to
// the host.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	before := in.field.Value()
	var cmd tea.Cmd
	in.field, cmd = in.field.Update(msg)
	if after := in.field.Value(); after != before && in.OnChange != nil {
		in.OnChange(after)
	}
	return cmd
}

// Focus gives the field the cursor.
func (in *Input) Focus() {
	in.field.Focus()
}

// Blur removes the cursor from the field.
func (in *Input) Blur() {
	in.field.Blur()
}

// AriaInvalid derives the control's aria-invalid attribute.
func (in *Input) AriaInvalid() string {
	return format.AriaInvalid(in.Error)
}

// Describe reports the label node and the textbox node it is bound to.
func (in *Input) Describe() []a11y.Node {
	nodes := []a11y.Node{
		{Name: in.Label, LabelFor: in.ID},
		{
			Role:    a11y.RoleTextbox,
			Name:    in.Label,
			ID:      in.ID,
			Invalid: in.AriaInvalid(),
		},
	}
	return nodes
}

// View renders the label, the field, and any error text adjacent to it.
func (in *Input) View(styleSet theme.Styles) string {
	var lines []string
	if in.Label != "" {
		lines = append(lines, styleSet.Label.Render(in.Label))
	}

	box := styleSet.InputBox
	if in.Error != "" {
		box = styleSet.InputError
	}
	lines = append(lines, box.Render(in.field.View()))

	if in.Error != "" {
		lines = append(lines, styleSet.Error.Render(in.Error))
	}
	return strings.Join(lines, "\n")
}
