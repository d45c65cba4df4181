package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func dialTranscript(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws/transcript", TranscriptHandler)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/transcript"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	var msg serverMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

func TestTranscriptRelayCommitsOnlyFinalFragments(t *testing.T) {
	conn := dialTranscript(t)

	if msg := readMessage(t, conn); msg.State != StateIdle {
		t.Fatalf("initial state = %q, want idle", msg.State)
	}

	conn.WriteJSON(clientMessage{Type: MessageTypeStart})
	if msg := readMessage(t, conn); msg.State != StateListening {
		t.Fatalf("state after start = %q, want listening", msg.State)
	}

	conn.WriteJSON(clientMessage{Type: MessageTypeFragment, Text: "we sell", IsFinal: false})
	conn.WriteJSON(clientMessage{Type: MessageTypeFragment, Text: "we sell to CFOs", IsFinal: true})
	conn.WriteJSON(clientMessage{Type: MessageTypeFragment, Text: "at mid-market firms", IsFinal: true})
	conn.WriteJSON(clientMessage{Type: MessageTypeStop})

	committed := readMessage(t, conn)
	if committed.Type != "COMMITTED" {
		t.Fatalf("message type = %q, want COMMITTED", committed.Type)
	}
	if committed.Transcript != "we sell to CFOs at mid-market firms" {
		t.Errorf("transcript = %q", committed.Transcript)
	}
	if msg := readMessage(t, conn); msg.State != StateIdle {
		t.Errorf("state after stop = %q, want idle", msg.State)
	}
}

func TestTranscriptRelayStartDiscardsPreviousFragments(t *testing.T) {
	conn := dialTranscript(t)
	readMessage(t, conn) // initial state

	conn.WriteJSON(clientMessage{Type: MessageTypeStart})
	readMessage(t, conn)
	conn.WriteJSON(clientMessage{Type: MessageTypeFragment, Text: "abandoned take", IsFinal: true})

	// Restarting discards the uncommitted transcript.
	conn.WriteJSON(clientMessage{Type: MessageTypeStart})
	readMessage(t, conn)
	conn.WriteJSON(clientMessage{Type: MessageTypeFragment, Text: "fresh take", IsFinal: true})
	conn.WriteJSON(clientMessage{Type: MessageTypeStop})

	committed := readMessage(t, conn)
	if committed.Transcript != "fresh take" {
		t.Errorf("transcript = %q, want %q", committed.Transcript, "fresh take")
	}
}

func TestTranscriptRelayErrorState(t *testing.T) {
	conn := dialTranscript(t)
	readMessage(t, conn)

	conn.WriteJSON(clientMessage{Type: MessageTypeStart})
	readMessage(t, conn)
	conn.WriteJSON(clientMessage{Type: MessageTypeError, Error: "no-speech"})

	if msg := readMessage(t, conn); msg.State != StateError {
		t.Errorf("state after error = %q, want error", msg.State)
	}
}
