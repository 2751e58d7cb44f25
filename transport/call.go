package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Call is the pending reply to one outbound request. A Call completes
// exactly once, with either a reply payload or an error; later
// completions are no-ops. There is no way to abort a sent request from
// the caller's side, only to stop waiting for it.
type Call struct {
	// Event is the outbound event name the request was sent under.
	// Empty for calls that never correspond to a wire request.
	Event string

	once  sync.Once
	done  chan struct{}
	reply json.RawMessage
	err   error
}

// NewCall creates a pending call for the given outbound event.
func NewCall(event string) *Call {
	return &Call{
		Event: event,
		done:  make(chan struct{}),
	}
}

// FailedCall creates an already-rejected call. Used for failures
// detected before any request is sent.
func FailedCall(event string, err error) *Call {
	c := NewCall(event)
	c.Complete(nil, err)
	return c
}

// Complete resolves the call with a reply, or rejects it with an error.
// Only the first completion takes effect.
func (c *Call) Complete(reply json.RawMessage, err error) {
	c.once.Do(func() {
		c.reply = reply
		c.err = err
		close(c.done)
	})
}

// Done returns a channel that is closed once the call has completed.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Reply returns the reply payload. Valid only after Done is closed.
func (c *Call) Reply() json.RawMessage {
	return c.reply
}

// Err returns the rejection error, if any. Valid only after Done is
// closed.
func (c *Call) Err() error {
	return c.err
}

// Wait blocks until the call completes or ctx is done. Cancelling ctx
// abandons the wait, not the request itself.
func (c *Call) Wait(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-c.done:
		return c.reply, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Decode waits for the reply and unmarshals it into v.
func (c *Call) Decode(ctx context.Context, v any) error {
	reply, err := c.Wait(ctx)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, v); err != nil {
		return fmt.Errorf("decode %s reply: %w", c.Event, err)
	}
	return nil
}
