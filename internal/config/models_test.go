package config

import "testing"

func TestItemRender(t *testing.T) {
	x := "X"
	tip := "tip"
	cls := "cls"

	tests := []struct {
		name   string
		item   Item
		format string
		want   string
	}{
		{
			name:   "icon and percentage",
			item:   Item{Icon: &x, Percentage: 7},
			format: "{icon}-{percentage}",
			want:   "X-7",
		},
		{
			name:   "no placeholders",
			item:   Item{Icon: &x, Tooltip: &tip, Class: &cls, Percentage: 1},
			format: "plain text {not-a-token}",
			want:   "plain text {not-a-token}",
		},
		{
			name:   "all placeholders repeated",
			item:   Item{Icon: &x, Tooltip: &tip, Class: &cls, Percentage: 33},
			format: "{icon}{icon} {tooltip}|{class}|{percentage}|{percentage}",
			want:   "XX tip|cls|33|33",
		},
		{
			name:   "nil strings render empty",
			item:   Item{Percentage: 0},
			format: "[{icon}][{tooltip}][{class}][{percentage}]",
			want:   "[][][][0]",
		},
		{
			name:   "values are not rescanned",
			item:   Item{Icon: str("{tooltip}"), Tooltip: &tip},
			format: "{icon} {tooltip}",
			want:   "{tooltip} tip",
		},
		{
			name:   "values are not escaped",
			item:   Item{Tooltip: str(`say "hi"`)},
			format: `{"tooltip": "{tooltip}"}`,
			want:   `{"tooltip": "say "hi""}`,
		},
		{
			name:   "empty format",
			item:   Item{Icon: &x},
			format: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Render(tt.format); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestDefaultRender(t *testing.T) {
	cfg := Default()

	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryNative, `{"text" : "` + "\uf584" + `", "tooltip" : "wayland native", "class" : "wayland", "percentage" : "100" }`},
		{CategoryCompat, `{"text" : "` + "\uf5a5" + `", "tooltip" : "xwayland", "class" : "xwayland", "percentage" : "50" }`},
		{CategoryUnknown, `{"text" : "` + "\uf567" + `", "tooltip" : "unknown", "class" : "unknown", "percentage" : "0" }`},
	}

	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			if got := cfg.Render(tt.cat); got != tt.want {
				t.Errorf("Render(%s) =\n%s\nwant\n%s", tt.cat, got, tt.want)
			}
		})
	}
}

func TestItemSelectionIsTotal(t *testing.T) {
	cfg := Default()

	if got := cfg.Item(Category("bogus")); got.Percentage != cfg.Unknown.Percentage || deref(got.Class) != "unknown" {
		t.Errorf("Item(bogus) = %+v, want the unknown record", got)
	}
	if got := cfg.Item(""); deref(got.Class) != "unknown" {
		t.Errorf("Item(\"\") class = %q, want unknown", deref(got.Class))
	}
}

func TestCloneIsDeep(t *testing.T) {
	base := Default()
	c := base.clone()
	*c.Native.Icon = "changed"

	if *base.Native.Icon == "changed" {
		t.Error("clone shares string storage with the original")
	}
}
