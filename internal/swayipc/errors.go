package swayipc

import "fmt"

// ConnectionError means the control socket could not be found or dialed.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sway ipc connection failed: %v", e.Err)
	}
	return fmt.Sprintf("sway ipc connection to %s failed: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SubscriptionError means the subscription ended before it delivered a
// single event, which is how a refused SUBSCRIBE shows up.
type SubscriptionError struct {
	Err error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscribe to window events failed: %v", e.Err)
}

func (e *SubscriptionError) Unwrap() error { return e.Err }

// TransportError is a failure on a stream that was already delivering
// events, or on a query over an established connection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sway ipc transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
