package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/chatwire/chatwire-go/internal/emitter"
	"github.com/chatwire/chatwire-go/internal/version"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/semaphore"
)

// wsConn bundles the state of one established connection.
type wsConn struct {
	conn      *websocket.Conn
	done      chan struct{}
	closeOnce sync.Once
}

// shutdown signals the loops to stop and closes the socket. Safe to
// call more than once.
func (c *wsConn) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// pendingCall is one in-flight request awaiting its correlated reply.
type pendingCall struct {
	call  *Call
	timer *time.Timer // reply deadline, nil when ReplyTimeout is 0
}

// WebSocket is the bundled Transport implementation: JSON frames over a
// single websocket connection, with request/reply correlation by id.
// It never reconnects on its own; after a disconnect the owner dials
// again with Connect.
type WebSocket struct {
	cfg    Config
	logger *slog.Logger

	sem *semaphore.Weighted // in-flight cap, nil when unlimited

	// Write serialization
	writeMu sync.Mutex

	// Connection state
	mu         sync.RWMutex
	cur        *wsConn
	connected  bool
	lastPongAt time.Time

	// Request correlation
	pendingMu sync.Mutex
	pending   map[string]*pendingCall

	// Event subscriptions
	subsMu sync.RWMutex
	subs   map[string]*emitter.Emitter[Message]
}

// NewWebSocket creates a websocket transport. A nil logger falls back
// to slog.Default().
func NewWebSocket(cfg Config, logger *slog.Logger) *WebSocket {
	if logger == nil {
		logger = slog.Default()
	}

	var sem *semaphore.Weighted
	if cfg.MaxInFlight > 0 {
		sem = semaphore.NewWeighted(cfg.MaxInFlight)
	}

	return &WebSocket{
		cfg:     cfg,
		logger:  logger,
		sem:     sem,
		pending: make(map[string]*pendingCall),
		subs:    make(map[string]*emitter.Emitter[Message]),
	}
}

// Connect dials the server and starts the read and keepalive loops.
// A failed dial emits connecting_error; a successful one emits
// connected.
func (w *WebSocket) Connect(ctx context.Context) error {
	w.mu.Lock()
	if w.connected {
		w.mu.Unlock()
		return ErrAlreadyConnected
	}
	w.mu.Unlock()

	header := http.Header{}
	for k, vs := range w.cfg.Header {
		header[k] = vs
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", version.UserAgent())
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: w.cfg.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, w.cfg.URL, header)
	if err != nil {
		w.dispatch(Message{Event: EventConnectingError, Err: err})
		return fmt.Errorf("dial %s: %w", w.cfg.URL, err)
	}

	c := &wsConn{
		conn: conn,
		done: make(chan struct{}),
	}

	// Server pings are answered and both directions refresh liveness.
	conn.SetPingHandler(func(data string) error {
		w.markAlive()
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})
	conn.SetPongHandler(func(string) error {
		w.markAlive()
		return nil
	})

	w.mu.Lock()
	w.cur = c
	w.connected = true
	w.lastPongAt = time.Now()
	w.mu.Unlock()

	go w.readLoop(c)
	go w.pingLoop(c)

	w.logger.Debug("websocket connected", "url", w.cfg.URL)
	w.dispatch(Message{Event: EventConnected})

	return nil
}

// Disconnect closes the connection and fails every pending call with
// ErrDisconnected. Disconnecting a transport that is not connected is
// a no-op.
func (w *WebSocket) Disconnect() error {
	w.mu.RLock()
	c := w.cur
	w.mu.RUnlock()

	if c == nil || !w.claim(c) {
		return nil
	}

	c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	c.shutdown()

	w.failPending(ErrDisconnected)
	w.logger.Debug("websocket disconnected", "url", w.cfg.URL)
	w.dispatch(Message{Event: EventDisconnected})

	return nil
}

// claim takes ownership of tearing down c. Exactly one of Disconnect
// and the read loop wins the claim and runs the teardown.
func (w *WebSocket) claim(c *wsConn) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cur != c {
		return false
	}
	w.cur = nil
	w.connected = false
	return true
}

// Send transmits one request. The returned call completes when the
// correlated reply arrives, the reply deadline passes, or the
// connection is lost.
func (w *WebSocket) Send(event string, payload any) *Call {
	call := NewCall(event)

	if !w.IsConnected() {
		call.Complete(nil, ErrNotConnected)
		return call
	}

	if w.sem != nil && !w.sem.TryAcquire(1) {
		call.Complete(nil, ErrTooManyInFlight)
		return call
	}

	body, err := json.Marshal(payload)
	if err != nil {
		w.release()
		call.Complete(nil, fmt.Errorf("encode %s payload: %w", event, err))
		return call
	}

	id := uuid.NewString()
	frame, err := json.Marshal(envelope{ID: id, Event: event, Payload: body})
	if err != nil {
		w.release()
		call.Complete(nil, fmt.Errorf("encode %s frame: %w", event, err))
		return call
	}

	w.track(id, call)

	if err := w.write(frame); err != nil {
		if pc := w.take(id); pc != nil {
			w.settle(pc, nil, err)
		}
		return call
	}

	w.logger.Debug("request sent", "event", event, "id", id)
	return call
}

// On subscribes to inbound messages for an event name.
func (w *WebSocket) On(event string, h Handler) (off func()) {
	w.subsMu.Lock()
	em, ok := w.subs[event]
	if !ok {
		em = emitter.New[Message]()
		w.subs[event] = em
	}
	w.subsMu.Unlock()

	return em.On(h)
}

// IsConnected reports the current connection state.
func (w *WebSocket) IsConnected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.connected
}

// track registers an in-flight request before it is written, so a fast
// reply cannot race the registration.
func (w *WebSocket) track(id string, call *Call) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	pc := &pendingCall{call: call}
	if w.cfg.ReplyTimeout > 0 {
		pc.timer = time.AfterFunc(w.cfg.ReplyTimeout, func() {
			if late := w.take(id); late != nil {
				w.logger.Warn("reply timeout", "event", call.Event, "id", id)
				w.settle(late, nil, ErrReplyTimeout)
			}
		})
	}
	w.pending[id] = pc
}

// take removes and returns the pending entry for id, or nil when
// something else already settled it.
func (w *WebSocket) take(id string) *pendingCall {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	pc, ok := w.pending[id]
	if !ok {
		return nil
	}
	delete(w.pending, id)
	return pc
}

// settle completes a taken entry and frees its in-flight slot.
func (w *WebSocket) settle(pc *pendingCall, reply json.RawMessage, err error) {
	if pc.timer != nil {
		pc.timer.Stop()
	}
	pc.call.Complete(reply, err)
	w.release()
}

// failPending rejects every in-flight request.
func (w *WebSocket) failPending(err error) {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = make(map[string]*pendingCall)
	w.pendingMu.Unlock()

	for _, pc := range pending {
		w.settle(pc, nil, err)
	}
}

func (w *WebSocket) release() {
	if w.sem != nil {
		w.sem.Release(1)
	}
}

func (w *WebSocket) markAlive() {
	w.mu.Lock()
	w.lastPongAt = time.Now()
	w.mu.Unlock()
}

// write sends one frame. Writes are serialized; gorilla permits a
// single concurrent writer.
func (w *WebSocket) write(frame []byte) error {
	w.mu.RLock()
	c := w.cur
	w.mu.RUnlock()
	if c == nil {
		return ErrNotConnected
	}

	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	if w.cfg.WriteTimeout > 0 {
		c.conn.SetWriteDeadline(time.Now().Add(w.cfg.WriteTimeout))
	}
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

// dispatch fans a message out to its subscribers. No subscriber is a
// no-op.
func (w *WebSocket) dispatch(msg Message) {
	w.subsMu.RLock()
	em := w.subs[msg.Event]
	w.subsMu.RUnlock()

	if em == nil || em.Len() == 0 {
		w.logger.Debug("no subscriber for event", "event", msg.Event)
		return
	}
	em.Emit(msg)
}

// readLoop consumes frames until the connection goes away, then runs
// the teardown unless Disconnect already claimed it.
func (w *WebSocket) readLoop(c *wsConn) {
	defer w.finalize(c)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				// Local shutdown already in progress.
			default:
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					w.logger.Warn("read failed", "error", err)
					w.dispatch(Message{Event: EventError, Err: err})
				}
			}
			return
		}
		w.handleFrame(data)
	}
}

// finalize is the remote-drop half of the teardown. When Disconnect ran
// first the claim fails and there is nothing left to do.
func (w *WebSocket) finalize(c *wsConn) {
	if !w.claim(c) {
		c.shutdown()
		return
	}
	c.shutdown()

	w.failPending(ErrDisconnected)
	w.logger.Debug("websocket disconnected", "url", w.cfg.URL)
	w.dispatch(Message{Event: EventDisconnected})
}

// handleFrame routes one inbound frame: correlated reply or push event.
func (w *WebSocket) handleFrame(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		w.logger.Warn("malformed frame", "error", err)
		return
	}

	if env.ID == "" {
		w.dispatch(Message{Event: env.Event, Payload: env.Payload})
		return
	}

	pc := w.take(env.ID)
	if pc == nil {
		w.logger.Debug("reply for unknown id", "id", env.ID, "event", env.Event)
		return
	}

	if env.Error != nil {
		w.settle(pc, nil, &ServerError{
			Event:   pc.call.Event,
			Code:    env.Error.Code,
			Message: env.Error.Message,
		})
		return
	}

	w.settle(pc, env.Payload, nil)
}

// pingLoop sends keepalive pings and tears the connection down when the
// peer stops answering.
func (w *WebSocket) pingLoop(c *wsConn) {
	if w.cfg.PingInterval <= 0 {
		return
	}

	ticker := time.NewTicker(w.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			timeout := w.cfg.WriteTimeout
			if timeout <= 0 {
				timeout = time.Second
			}
			if err := c.conn.WriteControl(websocket.PingMessage, []byte("keepalive"), time.Now().Add(timeout)); err != nil {
				w.logger.Debug("failed to send ping", "error", err)
			}

			w.mu.RLock()
			last := w.lastPongAt
			w.mu.RUnlock()

			if w.cfg.PongTimeout > 0 && time.Since(last) > w.cfg.PongTimeout {
				w.logger.Warn("no pong received, closing stale connection",
					"last_pong", last,
					"timeout", w.cfg.PongTimeout,
				)
				w.dispatch(Message{Event: EventError, Err: ErrStaleConnection})
				c.shutdown()
				return
			}
		}
	}
}
