package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/bryanchriswhite/swaybar-helper/internal/shutdown"
	"github.com/bryanchriswhite/swaybar-helper/internal/swayipc"
	sway "github.com/joshuarubin/go-sway"
	"github.com/rs/zerolog"
)

// Stream is a subscribed sequence of window events.
type Stream interface {
	Next() (sway.WindowEvent, error)
	Close() error
}

// Subscriber opens a window event stream.
type Subscriber interface {
	Subscribe(ctx context.Context) (Stream, error)
}

// SwaySubscriber subscribes to window events on the sway control socket.
// An empty SocketPath uses SWAYSOCK/I3SOCK discovery.
type SwaySubscriber struct {
	SocketPath string
}

// Subscribe connects and subscribes to window events.
func (s SwaySubscriber) Subscribe(ctx context.Context) (Stream, error) {
	stream, err := swayipc.Subscribe(ctx, s.SocketPath)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// Runner turns focus changes into status lines, one per line on out.
type Runner struct {
	cfg  config.Config
	sub  Subscriber
	stop *shutdown.Flag
	out  io.Writer
	hub  *Hub
	now  func() time.Time
	log  *zerolog.Logger
}

// NewRunner creates a runner. cfg is copied and never modified.
func NewRunner(cfg config.Config, sub Subscriber, stop *shutdown.Flag, out io.Writer) *Runner {
	return &Runner{
		cfg:  cfg,
		sub:  sub,
		stop: stop,
		out:  out,
		now:  time.Now,
		log:  logger.WithComponent("runner"),
	}
}

// SetHub mirrors every emitted line to h.
func (r *Runner) SetHub(h *Hub) {
	r.hub = h
}

// Run prints the unknown line, subscribes, and then prints one line per
// focus event until the stream ends or the stop flag is seen. The flag is
// only checked when an item arrives, so a quiet stream delays shutdown
// until the next event. A clean end returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.emit(config.CategoryUnknown); err != nil {
		return err
	}

	stream, err := r.sub.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	r.log.Info().Msg("Watching window focus")

	for {
		ev, err := stream.Next()

		if r.stop.Requested() {
			r.log.Info().Msg("Interrupted, stopping")
			return nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				r.log.Info().Msg("Event stream closed")
				return nil
			}
			return err
		}

		if ev.Change != swayipc.ChangeFocus {
			continue
		}

		cat := Classify(&ev.Container)
		r.log.Debug().
			Interface("con_id", ev.Container.ID).
			Str("category", string(cat)).
			Msg("Focus changed")

		if err := r.emit(cat); err != nil {
			return err
		}
	}
}

func (r *Runner) emit(cat config.Category) error {
	line := r.cfg.Render(cat)
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("failed to write status line: %w", err)
	}

	if r.hub != nil {
		r.hub.Publish(Update{Category: cat, Line: line, Time: r.now()})
	}
	return nil
}
