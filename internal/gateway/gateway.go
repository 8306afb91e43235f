// Package gateway holds the external capability boundaries of the assistant.
// Everything that touches a microphone, a speaker or a third-party API lives
// behind one of these interfaces, so the core stays testable offline.
package gateway

import (
	"context"
	"errors"
	"time"
)

// Listener turns captured speech into text. A zero timeout means block
// forever waiting for speech to start (used while idle); phraseLimit bounds
// the length of the utterance itself once speech has started.
type Listener interface {
	Listen(timeout, phraseLimit time.Duration) (string, error)
}

// Speaker renders text as audio. Best effort: implementations log failures
// and never surface them to the caller.
type Speaker interface {
	Speak(text string)
}

// Completer sends a prompt to a chat-completion service.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Headliner fetches top news headlines for a region.
type Headliner interface {
	TopHeadlines(ctx context.Context, region string, count int) ([]string, error)
}

// Opener opens a URL in whatever the host considers a browser.
// Fire-and-forget: failures are logged, not returned.
type Opener interface {
	Open(url string)
}

var (
	// ErrListenTimeout means no speech started before the listen timeout.
	ErrListenTimeout = errors.New("listen timed out")
	// ErrUnintelligible means speech was captured but could not be transcribed.
	ErrUnintelligible = errors.New("speech not intelligible")
	// ErrNoCredential means the gateway has no API key configured.
	ErrNoCredential = errors.New("credential not set")
)

// TransportError wraps connectivity failures so callers can tell them apart
// from the conversational errors above with errors.As.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
