package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/sign"
)

func TestEventsHandler_Publish(t *testing.T) {
	handler := NewEventsHandler()
	ts := httptest.NewServer(handler)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// The server registers the client inside its handler goroutine;
	// wait until it shows up before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for {
		handler.mu.RLock()
		n := len(handler.clients)
		handler.mu.RUnlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client was never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	sent := session.Event{Token: sign.TokenHello, Timestamp: time.Now()}
	handler.Publish(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message error = %v", err)
	}

	var received session.Event
	if err := json.Unmarshal(msg, &received); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if received.Token != sign.TokenHello {
		t.Errorf("received token %q, want %q", received.Token, sign.TokenHello)
	}
}

func TestEventsHandler_PublishWithoutClients(t *testing.T) {
	handler := NewEventsHandler()

	// Publishing with no connected clients must be a no-op.
	handler.Publish(session.Event{Token: sign.TokenYes, Timestamp: time.Now()})
}
