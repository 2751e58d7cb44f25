package chatwire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/chatwire/chatwire-go/transport"
)

func TestClients_Payloads(t *testing.T) {
	tests := []struct {
		name      string
		call      func(c *Clients) *transport.Call
		wantEvent string
		wantJSON  string
	}{
		{
			name: "create",
			call: func(c *Clients) *transport.Call {
				return c.Create("k", ClientOptions{Token: "t", Properties: map[string]any{}})
			},
			wantEvent: "add_client",
			wantJSON:  `{"uniqueClientKey":"k","token":"t","properties":{}}`,
		},
		{
			name: "upsert",
			call: func(c *Clients) *transport.Call {
				return c.Upsert("k", ClientOptions{Token: "t", Properties: map[string]any{}})
			},
			wantEvent: "add_client",
			wantJSON:  `{"uniqueClientKey":"k","token":"t","properties":{},"upsert":true}`,
		},
		{
			name: "update",
			call: func(c *Clients) *transport.Call {
				return c.Update("k", ClientOptions{Token: "t2"})
			},
			wantEvent: "update_client",
			wantJSON:  `{"uniqueClientKey":"k","token":"t2","properties":{}}`,
		},
		{
			name: "update without token",
			call: func(c *Clients) *transport.Call {
				return c.Update("k", ClientOptions{})
			},
			wantEvent: "update_client",
			wantJSON:  `{"uniqueClientKey":"k","properties":{}}`,
		},
		{
			name:      "delete",
			call:      func(c *Clients) *transport.Call { return c.Delete("k") },
			wantEvent: "delete_client",
			wantJSON:  `{"uniqueClientKey":"k"}`,
		},
		{
			name:      "find by key",
			call:      func(c *Clients) *transport.Call { return c.FindByKey("k") },
			wantEvent: "get_client",
			wantJSON:  `{"uniqueClientKey":"k"}`,
		},
		{
			name:      "get current",
			call:      func(c *Clients) *transport.Call { return c.GetCurrent() },
			wantEvent: "get_current_client",
			wantJSON:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newTestClient(t)
			call := tt.call(c.Clients())

			select {
			case <-call.Done():
				t.Fatalf("call failed before send: %v", call.Err())
			default:
			}

			if n := mt.sendCount(); n != 1 {
				t.Fatalf("sends = %d, want 1", n)
			}
			req := mt.lastSent(t)
			if req.event != tt.wantEvent {
				t.Errorf("event = %q, want %q", req.event, tt.wantEvent)
			}
			data, err := json.Marshal(req.payload)
			if err != nil {
				t.Fatalf("marshal payload: %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("payload = %s, want %s", data, tt.wantJSON)
			}
		})
	}
}

func TestClients_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		call  func(c *Clients) *transport.Call
		field string
	}{
		{"create without key", func(c *Clients) *transport.Call {
			return c.Create("", ClientOptions{Token: "t", Properties: map[string]any{}})
		}, "uniqueClientKey"},
		{"create without token", func(c *Clients) *transport.Call {
			return c.Create("k", ClientOptions{Properties: map[string]any{}})
		}, "token"},
		{"create without properties", func(c *Clients) *transport.Call {
			return c.Create("k", ClientOptions{Token: "t"})
		}, "properties"},
		{"upsert without properties", func(c *Clients) *transport.Call {
			return c.Upsert("k", ClientOptions{Token: "t"})
		}, "properties"},
		{"update without key", func(c *Clients) *transport.Call {
			return c.Update("", ClientOptions{Token: "t"})
		}, "uniqueClientKey"},
		{"delete without key", func(c *Clients) *transport.Call { return c.Delete("") }, "uniqueClientKey"},
		{"find without key", func(c *Clients) *transport.Call { return c.FindByKey("") }, "uniqueClientKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newTestClient(t)
			call := tt.call(c.Clients())

			select {
			case <-call.Done():
			default:
				t.Fatal("call not failed")
			}
			if !errors.Is(call.Err(), ErrMissingField) {
				t.Errorf("err = %v, want ErrMissingField", call.Err())
			}
			want := tt.field + " is required"
			if call.Err() == nil || call.Err().Error() != want {
				t.Errorf("err = %v, want %q", call.Err(), want)
			}
			if n := mt.sendCount(); n != 0 {
				t.Errorf("sends = %d, want 0", n)
			}
		})
	}
}

func TestClients_ValidationReportsFirstField(t *testing.T) {
	c, _ := newTestClient(t)

	// Everything is missing; declaration order wins.
	call := c.Clients().Create("", ClientOptions{})

	want := "uniqueClientKey is required"
	if call.Err() == nil || call.Err().Error() != want {
		t.Errorf("err = %v, want %q", call.Err(), want)
	}
}

func TestClients_EmptyPropertiesAccepted(t *testing.T) {
	c, mt := newTestClient(t)

	// Required means present, not non-empty: an empty map passes.
	call := c.Clients().Create("k", ClientOptions{Token: "t", Properties: map[string]any{}})

	select {
	case <-call.Done():
		t.Fatalf("call failed: %v", call.Err())
	default:
	}
	if n := mt.sendCount(); n != 1 {
		t.Errorf("sends = %d, want 1", n)
	}
}
