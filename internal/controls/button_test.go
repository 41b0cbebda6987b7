package controls

import (
	"strings"
	"testing"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/theme"
)

func TestButtonClick(t *testing.T) {
	t.Run("forwards while interactive", func(t *testing.T) {
		clicks := 0
		b := Button{Label: "Save", OnClick: func() { clicks++ }}
		if !b.Click() {
			t.Error("expected the click to be forwarded")
		}
		if clicks != 1 {
			t.Errorf("clicks = %d, want 1", clicks)
		}
	})

	t.Run("disabled suppresses entirely", func(t *testing.T) {
		clicks := 0
		b := Button{Label: "Save", Disabled: true, OnClick: func() { clicks++ }}
		b.Click()
		b.Click()
		if clicks != 0 {
			t.Errorf("clicks = %d, want 0", clicks)
		}
	})

	t.Run("loading suppresses clicks", func(t *testing.T) {
		clicks := 0
		b := Button{Label: "Save", Loading: true, OnClick: func() { clicks++ }}
		if b.Click() {
			t.Error("loading button must not forward clicks")
		}
		if clicks != 0 {
			t.Errorf("clicks = %d, want 0", clicks)
		}
	})

	t.Run("nil callback is safe", func(t *testing.T) {
		b := Button{Label: "Save"}
		if b.Click() {
			t.Error("nothing to forward to")
		}
	})
}

func TestButtonAccessibleNameArea(t *testing.T) {
	t.Run("aria label takes precedence", func(t *testing.T) {
		b := Button{Label: "X", AriaLabel: "Close dialog"}
		if got := b.AccessibleName(); got != "Close dialog" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("loading indicator joins the name area", func(t *testing.T) {
		b := Button{Label: "Save", Loading: true}
		if got := b.AccessibleName(); got != "Save "+LoadingIndicator {
			t.Errorf("got %q", got)
		}
	})

	t.Run("loading with empty label is just the indicator", func(t *testing.T) {
		b := Button{Loading: true}
		if got := b.AccessibleName(); got != LoadingIndicator {
			t.Errorf("got %q", got)
		}
	})
}

func TestButtonEmptyLabel(t *testing.T) {
	b := Button{Label: ""}
	node := b.Describe()
	if node.Role != a11y.RoleButton {
		t.Errorf("role = %q, want button", node.Role)
	}
	if node.Name != "" {
		t.Errorf("name = %q, want empty (valid)", node.Name)
	}
	if out := b.View(theme.DefaultStyles(), false); out == "" {
		t.Error("empty-labelled button must still render")
	}
}

func TestButtonDescribeDisabled(t *testing.T) {
	b := Button{Label: "Save", Disabled: true}
	if !b.Describe().Disabled {
		t.Error("disabled button must describe itself as disabled")
	}
}

func TestVariantStyleToken(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{variant: VariantPrimary, want: "btn-primary"},
		{variant: VariantSecondary, want: "btn-secondary"},
		{variant: "", want: "btn-primary"},
	}
	for _, tt := range tests {
		if got := tt.variant.StyleToken(); got != tt.want {
			t.Errorf("StyleToken(%q) = %q, want %q", tt.variant, got, tt.want)
		}
	}
}

func TestButtonViewLoadingIndicator(t *testing.T) {
	b := Button{Label: "Save", Loading: true}
	out := b.View(theme.DefaultStyles(), false)
	if !strings.Contains(out, LoadingIndicator) {
		t.Errorf("expected loading indicator in output, got: %s", out)
	}
}

func TestButtonDisplayLabel(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		want   string
	}{
		{name: "plain label", button: Button{Label: "Save"}, want: "Save"},
		{name: "loading joins the label", button: Button{Label: "Save", Loading: true}, want: "Save " + LoadingIndicator},
		{name: "loading with empty label is just the indicator", button: Button{Loading: true}, want: LoadingIndicator},
		{name: "empty label stays visible", button: Button{}, want: " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.button.displayLabel(); got != tt.want {
				t.Errorf("displayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
