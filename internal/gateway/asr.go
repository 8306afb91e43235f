package gateway

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// WSListener talks to a speech recognizer daemon over a websocket. The daemon
// owns the microphone and the model; we only ask it for one utterance at a
// time and wait for the transcript.
type WSListener struct {
	URL    string
	Dialer *websocket.Dialer
}

func NewWSListener(url string) *WSListener {
	return &WSListener{URL: url, Dialer: websocket.DefaultDialer}
}

type listenRequest struct {
	Action        string `json:"action"`
	TimeoutMs     int64  `json:"timeout_ms"`
	PhraseLimitMs int64  `json:"phrase_limit_ms"`
}

type listenResult struct {
	Event string `json:"event"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// Listen opens a fresh connection per utterance; the recognizer holds the
// mic only while a request is in flight. timeout == 0 waits for speech
// indefinitely.
func (l *WSListener) Listen(timeout, phraseLimit time.Duration) (string, error) {
	conn, _, err := l.Dialer.Dial(l.URL, nil)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("dial recognizer: %w", err)}
	}
	defer conn.Close()

	req := listenRequest{
		Action:        "listen",
		TimeoutMs:     timeout.Milliseconds(),
		PhraseLimitMs: phraseLimit.Milliseconds(),
	}
	if err := conn.WriteJSON(req); err != nil {
		return "", &TransportError{Err: fmt.Errorf("send listen request: %w", err)}
	}

	for {
		var res listenResult
		if err := conn.ReadJSON(&res); err != nil {
			return "", &TransportError{Err: fmt.Errorf("read recognizer: %w", err)}
		}

		switch res.Event {
		case "partial":
			slog.Debug("Partial transcript", "text", res.Text)
		case "transcript":
			return res.Text, nil
		case "timeout":
			return "", ErrListenTimeout
		case "no-speech":
			return "", ErrUnintelligible
		case "error":
			return "", &TransportError{Err: fmt.Errorf("recognizer: %s", res.Error)}
		default:
			slog.Warn("Unknown recognizer event", "event", res.Event)
		}
	}
}
