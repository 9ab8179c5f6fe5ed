package status

import (
	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	sway "github.com/joshuarubin/go-sway"
)

// Classify maps a focused window to its display category. sway reports X11
// window properties only for Xwayland views and an app_id only for
// xdg-shell views; a nil window or a container with neither is unknown.
func Classify(w *sway.Node) config.Category {
	switch {
	case w == nil:
		return config.CategoryUnknown
	case w.WindowProperties != nil:
		return config.CategoryCompat
	case w.AppID != nil:
		return config.CategoryNative
	default:
		return config.CategoryUnknown
	}
}
