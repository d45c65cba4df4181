// Package websocket carries the browser speech capability's transcript
// stream. The orchestrator never manages microphone lifecycle; it only ever
// receives the finalized text this relay commits.
package websocket

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Relay states for one answer's transcription.
const (
	StateIdle      = "idle"
	StateListening = "listening"
	StateError     = "error"
)

// Client message types
const (
	MessageTypeStart    = "START"
	MessageTypeFragment = "FRAGMENT"
	MessageTypeStop     = "STOP"
	MessageTypeError    = "ERROR"
)

type clientMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	IsFinal bool   `json:"isFinal,omitempty"`
	Error   string `json:"error,omitempty"`
}

type serverMessage struct {
	Type       string `json:"type"`
	State      string `json:"state,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// TranscriptHandler relays speech-recognition fragments for one connection.
// Only fragments tagged final are accumulated; stopping commits the trimmed
// transcript back to the client and discards anything interim. Stopping
// before an answer is submitted never touches committed answer records.
func TranscriptHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade transcript connection: %v", err)
		return
	}
	defer conn.Close()

	state := StateIdle
	var fragments []string

	sendState := func() {
		if err := conn.WriteJSON(serverMessage{Type: "STATE", State: state}); err != nil {
			log.Printf("Failed to send transcript state: %v", err)
		}
	}
	sendState()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Transcript connection closed unexpectedly: %v", err)
			}
			return
		}

		switch msg.Type {
		case MessageTypeStart:
			fragments = fragments[:0]
			state = StateListening
			sendState()

		case MessageTypeFragment:
			if state != StateListening {
				continue
			}
			// Interim fragments are display-only on the client side.
			if msg.IsFinal {
				if text := strings.TrimSpace(msg.Text); text != "" {
					fragments = append(fragments, text)
				}
			}

		case MessageTypeStop:
			transcript := strings.TrimSpace(strings.Join(fragments, " "))
			fragments = fragments[:0]
			state = StateIdle
			if err := conn.WriteJSON(serverMessage{Type: "COMMITTED", Transcript: transcript}); err != nil {
				log.Printf("Failed to send committed transcript: %v", err)
				return
			}
			sendState()

		case MessageTypeError:
			log.Printf("Speech recognition error from client: %s", msg.Error)
			fragments = fragments[:0]
			state = StateError
			sendState()

		default:
			log.Printf("Unknown transcript message type: %s", msg.Type)
		}
	}
}
