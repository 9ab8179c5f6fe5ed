// Package swayipc connects to the sway control socket through go-sway and
// exposes window focus events as a pull-based stream.
package swayipc

import (
	"context"
	"os"

	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	sway "github.com/joshuarubin/go-sway"
	"github.com/pkg/errors"
)

// ChangeFocus is the change kind of a window event that moved focus.
const ChangeFocus = "focus"

// Replaced in tests.
var (
	newClient = sway.New
	subscribe = sway.Subscribe
)

// SocketPath returns the control socket advertised by the compositor.
func SocketPath() (string, error) {
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if path := os.Getenv(env); path != "" {
			return path, nil
		}
	}
	return "", errors.New("neither SWAYSOCK nor I3SOCK is set")
}

func resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := SocketPath()
	if err != nil {
		return "", &ConnectionError{Err: err}
	}
	return p, nil
}

// Connect dials path, or the discovered socket when path is empty. The
// connection lives until ctx is done.
func Connect(ctx context.Context, path string) (sway.Client, error) {
	path, err := resolve(path)
	if err != nil {
		return nil, err
	}

	client, err := newClient(ctx, sway.WithSocketPath(path))
	if err != nil {
		return nil, &ConnectionError{Path: path, Err: err}
	}

	logger.WithComponent("swayipc").Debug().Str("path", path).Msg("Connected")
	return client, nil
}

// FocusedWindow returns the focused node of the current layout tree, or nil
// when nothing has focus.
func FocusedWindow(ctx context.Context, path string) (*sway.Node, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := Connect(ctx, path)
	if err != nil {
		return nil, err
	}

	tree, err := client.GetTree(ctx)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "get tree")}
	}
	return tree.FocusedNode(), nil
}
