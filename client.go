package chatwire

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/chatwire/chatwire-go/internal/emitter"
	"github.com/chatwire/chatwire-go/internal/router"
	"github.com/chatwire/chatwire-go/transport"
)

// Config holds the client settings.
type Config struct {
	// URL is the websocket endpoint of the backend. Required unless a
	// custom transport is supplied with WithTransport.
	URL string

	// Token is the bearer credential presented during the handshake.
	// Optional.
	Token string
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport replaces the bundled websocket transport. Config.URL
// and Config.Token are unused when set.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// Client is the SDK entry point. It owns the transport handle, the
// public event surface, and the Rooms and Clients facades.
type Client struct {
	logger    *slog.Logger
	transport transport.Transport

	connected atomic.Bool

	mu     sync.Mutex
	events map[string]*emitter.Emitter[json.RawMessage]

	connectedE    *emitter.Emitter[struct{}]
	disconnectedE *emitter.Emitter[struct{}]
	errorE        *emitter.Emitter[error]
	connectErrE   *emitter.Emitter[error]

	router  *router.Router
	rooms   *Rooms
	clients *Clients
}

// New creates a client for the backend at cfg.URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		logger:        slog.Default(),
		events:        make(map[string]*emitter.Emitter[json.RawMessage]),
		connectedE:    emitter.New[struct{}](),
		disconnectedE: emitter.New[struct{}](),
		errorE:        emitter.New[error](),
		connectErrE:   emitter.New[error](),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		tcfg := transport.DefaultConfig(cfg.URL)
		if cfg.Token != "" {
			tcfg.Header = http.Header{"Authorization": []string{"Bearer " + cfg.Token}}
		}
		c.transport = transport.NewWebSocket(tcfg, c.logger.With("component", "transport"))
	}

	d := newDispatcher(c.transport, c.logger.With("component", "dispatcher"))
	c.rooms = newRooms(d, c.logger.With("component", "rooms"))
	c.clients = newClients(d, c.logger.With("component", "clients"))

	c.router = router.Bind(c.transport, c.emit, c.logger.With("component", "router"))

	// The connected flag is written here and nowhere else.
	c.transport.On(transport.EventConnected, func(transport.Message) {
		c.connected.Store(true)
		c.connectedE.Emit(struct{}{})
	})
	c.transport.On(transport.EventDisconnected, func(transport.Message) {
		c.connected.Store(false)
		c.disconnectedE.Emit(struct{}{})
	})
	c.transport.On(transport.EventError, func(m transport.Message) {
		c.errorE.Emit(m.Err)
	})
	c.transport.On(transport.EventConnectingError, func(m transport.Message) {
		c.connectErrE.Emit(m.Err)
	})

	return c, nil
}

// Connect opens the transport connection.
func (c *Client) Connect(ctx context.Context) error {
	return c.transport.Connect(ctx)
}

// Disconnect closes the transport connection.
func (c *Client) Disconnect() error {
	return c.transport.Disconnect()
}

// IsConnected reports the connection state tracked by the client's
// lifecycle handler.
func (c *Client) IsConnected() bool {
	return c.connected.Load()
}

// Rooms returns the room operations facade.
func (c *Client) Rooms() *Rooms {
	return c.rooms
}

// Clients returns the participant identity operations facade.
func (c *Client) Clients() *Clients {
	return c.clients
}

// On registers h for a public event (see the Event constants) and
// returns a function that removes the registration. Events with no
// listeners are dropped silently.
func (c *Client) On(event string, h func(json.RawMessage)) (off func()) {
	c.mu.Lock()
	e := c.events[event]
	if e == nil {
		e = emitter.New[json.RawMessage]()
		c.events[event] = e
	}
	c.mu.Unlock()
	return e.On(h)
}

// OnConnected registers fn for the connected lifecycle event.
func (c *Client) OnConnected(fn func()) (off func()) {
	return c.connectedE.On(func(struct{}) { fn() })
}

// OnDisconnected registers fn for the disconnected lifecycle event.
func (c *Client) OnDisconnected(fn func()) (off func()) {
	return c.disconnectedE.On(func(struct{}) { fn() })
}

// OnError registers fn for transport errors surfaced outside any
// single request, such as read failures.
func (c *Client) OnError(fn func(error)) (off func()) {
	return c.errorE.On(fn)
}

// OnConnectingError registers fn for dial failures.
func (c *Client) OnConnectingError(fn func(error)) (off func()) {
	return c.connectErrE.On(fn)
}

// emit delivers a routed public event to its listeners.
func (c *Client) emit(event string, payload json.RawMessage) {
	c.mu.Lock()
	e := c.events[event]
	c.mu.Unlock()
	if e == nil {
		return
	}
	e.Emit(payload)
}
