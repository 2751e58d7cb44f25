package transport

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCall_Complete(t *testing.T) {
	call := NewCall("create_room")

	select {
	case <-call.Done():
		t.Fatal("new call should not be completed")
	default:
	}

	call.Complete(json.RawMessage(`{"roomId":5}`), nil)

	select {
	case <-call.Done():
	default:
		t.Fatal("expected call to be completed")
	}

	if call.Err() != nil {
		t.Errorf("Err = %v, want nil", call.Err())
	}
	if string(call.Reply()) != `{"roomId":5}` {
		t.Errorf("Reply = %s, want {\"roomId\":5}", call.Reply())
	}
	if call.Event != "create_room" {
		t.Errorf("Event = %s, want create_room", call.Event)
	}
}

func TestCall_CompleteTwice(t *testing.T) {
	call := NewCall("get_room_info")

	call.Complete(json.RawMessage(`{"first":true}`), nil)
	call.Complete(nil, errors.New("too late"))

	if call.Err() != nil {
		t.Errorf("Err = %v, want nil (first completion wins)", call.Err())
	}
	if string(call.Reply()) != `{"first":true}` {
		t.Errorf("Reply = %s, want {\"first\":true}", call.Reply())
	}
}

func TestCall_FailedCall(t *testing.T) {
	wantErr := errors.New("boom")
	call := FailedCall("update_room", wantErr)

	select {
	case <-call.Done():
	default:
		t.Fatal("expected failed call to be completed immediately")
	}

	if !errors.Is(call.Err(), wantErr) {
		t.Errorf("Err = %v, want %v", call.Err(), wantErr)
	}
}

func TestCall_Wait(t *testing.T) {
	call := NewCall("get_messages")

	go func() {
		time.Sleep(20 * time.Millisecond)
		call.Complete(json.RawMessage(`[]`), nil)
	}()

	reply, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if string(reply) != `[]` {
		t.Errorf("reply = %s, want []", reply)
	}
}

func TestCall_WaitCancelled(t *testing.T) {
	call := NewCall("get_client_rooms")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := call.Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait error = %v, want context.Canceled", err)
	}

	// Abandoning the wait does not abort the request; the call can
	// still resolve afterwards.
	call.Complete(json.RawMessage(`{}`), nil)
	if call.Err() != nil {
		t.Errorf("Err = %v, want nil", call.Err())
	}
}

func TestCall_Decode(t *testing.T) {
	call := NewCall("get_room_info")
	call.Complete(json.RawMessage(`{"roomId":7,"title":"lobby"}`), nil)

	var got struct {
		RoomID int64  `json:"roomId"`
		Title  string `json:"title"`
	}
	if err := call.Decode(context.Background(), &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.RoomID != 7 {
		t.Errorf("RoomID = %d, want 7", got.RoomID)
	}
	if got.Title != "lobby" {
		t.Errorf("Title = %s, want lobby", got.Title)
	}
}

func TestCall_DecodeError(t *testing.T) {
	wantErr := errors.New("rejected")
	call := FailedCall("get_room_info", wantErr)

	var got struct{}
	err := call.Decode(context.Background(), &got)
	if !errors.Is(err, wantErr) {
		t.Errorf("Decode error = %v, want %v", err, wantErr)
	}
}
