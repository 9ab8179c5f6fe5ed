package status

import (
	"context"
	"time"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/swayipc"
)

// Snapshot renders the currently focused window once, using GET_TREE
// instead of a subscription.
func Snapshot(ctx context.Context, socketPath string, cfg config.Config) (Update, error) {
	w, err := swayipc.FocusedWindow(ctx, socketPath)
	if err != nil {
		return Update{}, err
	}

	cat := Classify(w)
	return Update{Category: cat, Line: cfg.Render(cat), Time: time.Now()}, nil
}
