// Package transport owns the persistent connection to the Chatwire
// backend.
//
// The transport:
//   - Frames requests as JSON {"id", "event", "payload"} text messages
//   - Correlates replies to requests by id and resolves one Call each
//   - Delivers push events and lifecycle events through On
//   - Serializes writes and keeps the connection alive with pings
//
// Transport is the seam consumers program against; WebSocket is the
// bundled implementation. It never reconnects on its own.
package transport
