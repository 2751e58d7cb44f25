// Package chatwire is the Go client SDK for the Chatwire real-time
// room and messaging backend.
//
// The client:
//   - Serializes method calls into request events over one persistent
//     connection and resolves a per-call future when the correlated
//     reply arrives
//   - Validates required fields locally, failing the call before
//     anything is sent
//   - Re-emits inbound room and client events to registered listeners
//     under their public names
//   - Ships a WebSocket transport and accepts custom
//     transport.Transport implementations
package chatwire
