package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pinky/internal/gateway"
)

const netApology = "Sorry, I'm having trouble connecting to the internet."

// WakeLoop is the top-level cycle: listen for the wake word, activate,
// capture one command, dispatch, repeat. It never exits on its own except
// through the shutdown intent or context cancellation.
type WakeLoop struct {
	Listener    gateway.Listener
	Speaker     gateway.Speaker
	Interpreter *Interpreter

	// WakeWord is matched as a case-insensitive substring of the idle
	// transcript.
	WakeWord string

	// CommandTimeout bounds the single active-state listen turn. The idle
	// listen has no timeout at all, which is deliberate: while idle there is
	// nothing better to do than wait.
	CommandTimeout time.Duration

	// Wake receives forced activations from the control socket. A forced
	// wake skips the wake word: the next utterance heard is taken as the
	// command itself. nil is fine.
	Wake <-chan struct{}

	// Chime plays the activation sound, best effort; nil skips it.
	Chime func()
}

type listenOutcome struct {
	text string
	err  error
}

// Run blocks until the shutdown intent fires or ctx is cancelled.
//
// The listener is never called from two goroutines at once: exactly one
// Listen is in flight at any moment. The idle listen runs in its own
// goroutine only so the loop can also watch for cancellation and forced
// wakes, and a new one starts only after the previous outcome has been
// consumed.
func (w *WakeLoop) Run(ctx context.Context) {
	slog.Info("Listening for wake word", "word", w.WakeWord)

	res := make(chan listenOutcome, 1)
	idleListen := func() {
		go func() {
			text, err := w.Listener.Listen(0, 0)
			res <- listenOutcome{text: text, err: err}
		}()
	}
	idleListen()

	// armed means a forced wake has been acknowledged and the pending idle
	// listen doubles as the command capture; no second listen is issued.
	armed := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.Wake:
			if armed {
				continue
			}
			slog.Info("Forced wake via control socket")
			armed = true
			w.acknowledge()
		case out := <-res:
			if out.err != nil {
				armed = false
				w.recoverListen(out.err)
				idleListen()
				continue
			}
			if armed {
				armed = false
				slog.Info("Command captured", "text", out.text)
				if w.Interpreter.Interpret(ctx, out.text) == ShutdownRequested {
					return
				}
				idleListen()
				continue
			}
			slog.Debug("Heard while idle", "text", out.text)
			if !strings.Contains(strings.ToLower(out.text), w.WakeWord) {
				idleListen()
				continue
			}
			if w.activate(ctx) == ShutdownRequested {
				return
			}
			idleListen()
		}
	}
}

func (w *WakeLoop) acknowledge() {
	if w.Chime != nil {
		w.Chime()
	}
	w.Speaker.Speak("Yes?")
}

// activate runs one Active-state cycle: acknowledge, capture one command,
// dispatch it, fall back to idle regardless of the outcome. It is only
// called with no idle listen pending, so its bounded listen is the sole
// user of the listener.
func (w *WakeLoop) activate(ctx context.Context) Result {
	w.acknowledge()

	slog.Info("Active, listening for a command")

	command, err := w.Listener.Listen(w.CommandTimeout, w.CommandTimeout)
	if err != nil {
		w.recoverListen(err)
		return Continue
	}

	slog.Info("Command captured", "text", command)
	return w.Interpreter.Interpret(ctx, command)
}

// recoverListen maps a listen failure to the loop's recovery policy: log a
// timeout, stay silent on unintelligible speech, apologize once for
// connectivity trouble, log anything else. Nothing here is fatal.
func (w *WakeLoop) recoverListen(err error) {
	var terr *gateway.TransportError
	switch {
	case errors.Is(err, gateway.ErrListenTimeout):
		slog.Warn("Listening timed out")
	case errors.Is(err, gateway.ErrUnintelligible):
		slog.Debug("Could not make out speech")
	case errors.As(err, &terr):
		slog.Error("Recognizer unreachable", "err", terr.Err)
		w.Speaker.Speak(netApology)
	default:
		slog.Error("Unexpected listen failure", "err", err)
	}
}
