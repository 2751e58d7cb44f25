package chatwire

import (
	"log/slog"

	"github.com/chatwire/chatwire-go/internal/wire"
	"github.com/chatwire/chatwire-go/transport"
)

// Clients groups the participant identity operations of the backend.
// Obtain it from Client.Clients. Like Rooms, every method issues at
// most one request and returns the transport's call unmodified.
type Clients struct {
	d      *dispatcher
	logger *slog.Logger
}

func newClients(d *dispatcher, logger *slog.Logger) *Clients {
	return &Clients{d: d, logger: logger}
}

// Create registers a new client identity under key. Token and
// Properties are both required; pass an empty map for a client with
// no properties.
func (c *Clients) Create(key string, opts ClientOptions) *transport.Call {
	return c.d.send(wire.EventAddClient, wire.AddClient{
		UniqueClientKey: key,
		Token:           opts.Token,
		Properties:      opts.Properties,
	})
}

// Upsert creates or replaces the client identity under key. The
// payload always carries upsert set true, which is what separates it
// from Create on the wire.
func (c *Clients) Upsert(key string, opts ClientOptions) *transport.Call {
	return c.d.send(wire.EventAddClient, wire.AddClient{
		UniqueClientKey: key,
		Token:           opts.Token,
		Properties:      opts.Properties,
		Upsert:          true,
	})
}

// Update mutates the client identity under key. An empty Token is
// omitted from the payload and leaves the stored token untouched.
func (c *Clients) Update(key string, opts ClientOptions) *transport.Call {
	return c.d.send(wire.EventUpdateClient, wire.UpdateClient{
		UniqueClientKey: key,
		Token:           opts.Token,
		Properties:      orEmpty(opts.Properties),
	})
}

// Delete removes the client identity under key.
func (c *Clients) Delete(key string) *transport.Call {
	return c.d.send(wire.EventDeleteClient, wire.ClientRef{UniqueClientKey: key})
}

// FindByKey fetches the client identity under key. The reply decodes
// into ClientInfo.
func (c *Clients) FindByKey(key string) *transport.Call {
	return c.d.send(wire.EventGetClient, wire.ClientRef{UniqueClientKey: key})
}

// GetCurrent fetches the identity the connection is authenticated as.
func (c *Clients) GetCurrent() *transport.Call {
	return c.d.send(wire.EventGetCurrentClient, wire.Empty{})
}
