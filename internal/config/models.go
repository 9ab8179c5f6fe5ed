package config

import (
	"strconv"
	"strings"
)

// Category is the display class a focused window falls into.
type Category string

const (
	CategoryNative  Category = "native"  // xdg-shell, i.e. native Wayland
	CategoryCompat  Category = "compat"  // Xwayland
	CategoryUnknown Category = "unknown" // anything else, or no window at all
)

// Categories lists every category in a stable order.
var Categories = []Category{CategoryNative, CategoryCompat, CategoryUnknown}

// Placeholder tokens understood by Item.Render.
const (
	PlaceholderIcon       = "{icon}"
	PlaceholderTooltip    = "{tooltip}"
	PlaceholderClass      = "{class}"
	PlaceholderPercentage = "{percentage}"
)

// DefaultFormat is the waybar custom-module JSON shape. The percentage is
// deliberately quoted.
const DefaultFormat = `{"text" : "{icon}", "tooltip" : "{tooltip}", "class" : "{class}", "percentage" : "{percentage}" }`

// Item holds what gets shown for one category. Nil strings render as empty.
type Item struct {
	Icon       *string `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
	Tooltip    *string `json:"tooltip,omitempty" yaml:"tooltip,omitempty" mapstructure:"tooltip"`
	Class      *string `json:"class,omitempty" yaml:"class,omitempty" mapstructure:"class"`
	Percentage uint32  `json:"percentage" yaml:"percentage" mapstructure:"percentage"`
}

// Render substitutes the item's fields into format. Replacement is a single
// literal pass: values are not escaped and are never re-scanned for tokens.
func (i Item) Render(format string) string {
	r := strings.NewReplacer(
		PlaceholderIcon, deref(i.Icon),
		PlaceholderTooltip, deref(i.Tooltip),
		PlaceholderClass, deref(i.Class),
		PlaceholderPercentage, strconv.FormatUint(uint64(i.Percentage), 10),
	)
	return r.Replace(format)
}

// Config is the full output configuration. Build it with Default, LoadFile
// and ParseArgs; treat it as read-only afterwards.
type Config struct {
	Format  string `json:"format" yaml:"format" mapstructure:"format"`
	Native  Item   `json:"native" yaml:"native" mapstructure:"native"`
	Compat  Item   `json:"compat" yaml:"compat" mapstructure:"compat"`
	Unknown Item   `json:"unknown" yaml:"unknown" mapstructure:"unknown"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: DefaultFormat,
		Native: Item{
			Icon:       str("\uf584"),
			Tooltip:    str("wayland native"),
			Class:      str("wayland"),
			Percentage: 100,
		},
		Compat: Item{
			Icon:       str("\uf5a5"),
			Tooltip:    str("xwayland"),
			Class:      str("xwayland"),
			Percentage: 50,
		},
		Unknown: Item{
			Icon:       str("\uf567"),
			Tooltip:    str("unknown"),
			Class:      str("unknown"),
			Percentage: 0,
		},
	}
}

// Item returns the record for a category. Unrecognised categories get the
// unknown record so that selection is total.
func (c Config) Item(cat Category) Item {
	switch cat {
	case CategoryNative:
		return c.Native
	case CategoryCompat:
		return c.Compat
	default:
		return c.Unknown
	}
}

// Render renders the record for cat through the configured format.
func (c Config) Render(cat Category) string {
	return c.Item(cat).Render(c.Format)
}

func (c *Config) item(cat Category) *Item {
	switch cat {
	case CategoryNative:
		return &c.Native
	case CategoryCompat:
		return &c.Compat
	default:
		return &c.Unknown
	}
}

// clone deep-copies the string pointers so that overrides applied to the
// copy never leak into the original.
func (c Config) clone() Config {
	out := c
	for _, cat := range Categories {
		it := out.item(cat)
		it.Icon = copyStr(it.Icon)
		it.Tooltip = copyStr(it.Tooltip)
		it.Class = copyStr(it.Class)
	}
	return out
}

func str(s string) *string { return &s }

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	return str(*p)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
