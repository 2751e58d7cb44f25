package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Errors
var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
	ErrDisconnected     = errors.New("connection lost")
	ErrStaleConnection  = errors.New("connection stale (no pong)")
	ErrReplyTimeout     = errors.New("reply timeout")
	ErrTooManyInFlight  = errors.New("too many requests in flight")
)

// ServerError is an error reply from the backend to a single request.
// It is delivered through the request's Call, never through the event
// surface.
type ServerError struct {
	Event   string // outbound event name the request was sent under
	Code    string // backend error code, empty when the backend sends none
	Message string
}

func (e *ServerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error on %s: %s: %s", e.Event, e.Code, e.Message)
	}
	return fmt.Sprintf("server error on %s: %s", e.Event, e.Message)
}

// envelope is the JSON frame exchanged with the server. Requests and
// correlated replies carry an id; push events carry none.
type envelope struct {
	ID      string          `json:"id,omitempty"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   *wireError      `json:"error,omitempty"`
}

// wireError is the error member of a reply envelope.
type wireError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Config configures a WebSocket transport.
type Config struct {
	URL              string        // WebSocket URL (e.g. wss://realtime.chatwire.io/v1)
	Header           http.Header   // Extra handshake headers (nil = none)
	HandshakeTimeout time.Duration // Dial timeout
	WriteTimeout     time.Duration // Write deadline for outbound frames
	PingInterval     time.Duration // Keepalive ping cadence
	PongTimeout      time.Duration // Max time without a pong before the connection is considered stale
	ReplyTimeout     time.Duration // Per-request reply deadline (0 = wait until disconnect)
	MaxInFlight      int64         // Cap on outstanding requests (0 = unlimited)
}

// DefaultConfig returns sensible defaults for the given URL.
func DefaultConfig(url string) Config {
	return Config{
		URL:              url,
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		PingInterval:     30 * time.Second,
		PongTimeout:      60 * time.Second,
		ReplyTimeout:     30 * time.Second,
	}
}

// Validate checks that all required fields are set.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	return nil
}
