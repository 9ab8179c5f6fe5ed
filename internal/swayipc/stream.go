package swayipc

import (
	"context"
	"io"
	"net"
	"os"

	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	sway "github.com/joshuarubin/go-sway"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EventStream is a pull-based sequence of window events. go-sway pushes
// events to a handler on its own goroutine; each one is handed over to
// Next unbuffered, so the subscription never runs ahead of the reader.
// Once Next reports an error the stream is finished.
type EventStream struct {
	events chan sway.WindowEvent
	done   chan struct{}
	err    error
	cancel context.CancelFunc
	log    *zerolog.Logger
}

type windowHandler struct {
	sway.EventHandler
	events    chan<- sway.WindowEvent
	delivered bool
}

func (h *windowHandler) Window(ctx context.Context, e sway.WindowEvent) {
	select {
	case h.events <- e:
		h.delivered = true
	case <-ctx.Done():
	}
}

// Subscribe connects to path, or the discovered socket when path is empty,
// and subscribes to window events.
func Subscribe(ctx context.Context, path string) (*EventStream, error) {
	path, err := resolve(path)
	if err != nil {
		return nil, err
	}

	// Dial once up front so an unreachable socket is reported as a
	// connection failure rather than a failed subscription.
	probeCtx, probeCancel := context.WithCancel(ctx)
	_, err = newClient(probeCtx, sway.WithSocketPath(path))
	probeCancel()
	if err != nil {
		return nil, &ConnectionError{Path: path, Err: err}
	}

	// go-sway's Subscribe dials $SWAYSOCK itself.
	if os.Getenv("SWAYSOCK") != path {
		if err := os.Setenv("SWAYSOCK", path); err != nil {
			return nil, &ConnectionError{Path: path, Err: err}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &EventStream{
		events: make(chan sway.WindowEvent),
		done:   make(chan struct{}),
		cancel: cancel,
		log:    logger.WithComponent("swayipc"),
	}

	h := &windowHandler{EventHandler: sway.NoOpEventHandler(), events: s.events}
	go func() {
		err := subscribe(ctx, h, sway.EventTypeWindow)
		s.err = s.finish(ctx, err, h.delivered)
		close(s.done)
	}()

	s.log.Debug().Str("path", path).Msg("Subscribed to window events")
	return s, nil
}

// finish maps the subscription's exit onto the stream's terminal error.
func (s *EventStream) finish(ctx context.Context, err error, delivered bool) error {
	switch {
	case err == nil, ctx.Err() != nil:
		return io.EOF
	case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
		return io.EOF
	case !delivered:
		return &SubscriptionError{Err: err}
	default:
		return &TransportError{Err: err}
	}
}

// Next blocks until the next window event. It returns io.EOF when the
// stream ends cleanly, a *SubscriptionError when it ends before the first
// event and a *TransportError otherwise.
func (s *EventStream) Next() (sway.WindowEvent, error) {
	select {
	case e := <-s.events:
		return e, nil
	case <-s.done:
		return sway.WindowEvent{}, s.err
	}
}

// Close ends the subscription and waits for it to unwind.
func (s *EventStream) Close() error {
	s.cancel()
	<-s.done
	return nil
}
