// Package assistant is the command core: it classifies a transcript, runs
// the matching handler (including the multi-turn reminder and song
// dialogues) and speaks the outcome. All I/O goes through the gateway
// interfaces so the whole package runs offline under test.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"pinky/internal/gateway"
	"pinky/internal/intent"
	"pinky/internal/music"
	"pinky/internal/reminder"
)

const (
	persona = "You are Pinky, a concise and helpful virtual assistant."

	aiApology       = "Sorry, I ran into an error with the AI service."
	newsApology     = "Sorry, I encountered an error while fetching the news."
	reminderApology = "Sorry, I couldn't set the reminder."
	timeApology     = "Sorry, I didn't understand the time. Please try again."
	catchApology    = "Sorry, I didn't catch that."

	clockFormat = "03:04 PM"
	dateFormat  = "January 02, 2006"
)

// Result tells the wake loop whether to keep cycling.
type Result int

const (
	Continue Result = iota
	ShutdownRequested
)

// Interpreter executes one classified command per call. It owns no
// goroutines; the reminder store is the only thing it shares with the rest
// of the process.
type Interpreter struct {
	Listener  gateway.Listener
	Speaker   gateway.Speaker
	Completer gateway.Completer
	Headliner gateway.Headliner
	Opener    gateway.Opener

	Reminders *reminder.Store
	Music     *music.Library

	// DialogueTimeout bounds the follow-up listen turns of the reminder and
	// song dialogues. Zero means wait forever, which is never what you want
	// mid-dialogue.
	DialogueTimeout time.Duration

	// Now is replaceable in tests.
	Now func() time.Time
}

func (in *Interpreter) now() time.Time {
	if in.Now != nil {
		return in.Now()
	}
	return time.Now()
}

// Interpret classifies and runs one transcript. Handler failures are spoken,
// never returned; the only signal back to the caller is the shutdown result.
func (in *Interpreter) Interpret(ctx context.Context, transcript string) Result {
	lowered := strings.ToLower(transcript)
	m := intent.Classify(lowered)

	slog.Info("Dispatching command", "intent", m.Kind.String(), "trigger", m.Trigger)

	switch m.Kind {
	case intent.KindOpenSite:
		in.Speaker.Speak("Opening " + m.Site.Name + ".")
		in.Opener.Open(m.Site.URL)
	case intent.KindTime:
		in.Speaker.Speak("The current time is " + in.now().Format(clockFormat))
	case intent.KindDate:
		in.Speaker.Speak("Today's date is " + in.now().Format(dateFormat))
	case intent.KindSearch:
		in.search(lowered, m.Trigger)
	case intent.KindSetReminder:
		in.setReminder()
	case intent.KindPlayMusic:
		in.playMusic(lowered)
	case intent.KindFetchNews:
		in.fetchNews(ctx)
	case intent.KindShutdown:
		in.Speaker.Speak("Goodbye!")
		return ShutdownRequested
	default:
		in.askAI(ctx, transcript)
	}

	return Continue
}

func (in *Interpreter) search(lowered, trigger string) {
	query := strings.TrimSpace(strings.Replace(lowered, trigger, "", 1))
	in.Speaker.Speak("Searching Google for " + query)
	in.Opener.Open("https://www.google.com/search?q=" + url.QueryEscape(query))
}

// setReminder runs the two-turn slot-filling dialogue. Any listen failure
// aborts the whole dialogue; no partial reminder is ever stored.
func (in *Interpreter) setReminder() {
	in.Speaker.Speak("What should I remind you about?")
	message, err := in.Listener.Listen(in.DialogueTimeout, in.DialogueTimeout)
	if err != nil {
		slog.Warn("Reminder message turn failed", "err", err)
		in.Speaker.Speak(reminderApology)
		return
	}

	in.Speaker.Speak("When should I remind you? For example, in 10 seconds, 5 minutes, or 1 hour.")
	phrase, err := in.Listener.Listen(in.DialogueTimeout, in.DialogueTimeout)
	if err != nil {
		slog.Warn("Reminder time turn failed", "err", err)
		in.Speaker.Speak(reminderApology)
		return
	}

	delay, err := reminder.ParseDelay(phrase)
	if err != nil {
		slog.Warn("Bad time phrase", "phrase", phrase, "err", err)
		in.Speaker.Speak(timeApology)
		return
	}

	fireAt := in.now().Add(delay)
	in.Reminders.Add(reminder.Reminder{FireAt: fireAt, Message: message})

	slog.Info("Reminder set", "message", message, "fireAt", fireAt)
	in.Speaker.Speak(fmt.Sprintf("Okay, I will remind you to %s at %s.", message, fireAt.Format(clockFormat)))
}

func (in *Interpreter) playMusic(lowered string) {
	title := strings.TrimSpace(strings.ReplaceAll(lowered, "play", ""))

	// Bare "play song" / "play a song" carries no title; ask for one.
	if strings.Contains(lowered, "song") && len(strings.Fields(lowered)) < 3 {
		in.Speaker.Speak("Which song would you like to play?")
		heard, err := in.Listener.Listen(in.DialogueTimeout, in.DialogueTimeout)
		if err != nil {
			slog.Warn("Song title turn failed", "err", err)
			in.Speaker.Speak(catchApology)
			return
		}
		title = strings.ToLower(strings.TrimSpace(heard))
	}

	if title == "" {
		return
	}

	if songURL, ok := in.Music.Lookup(title); ok {
		in.Opener.Open(songURL)
		in.Speaker.Speak("Playing " + title)
		return
	}
	in.Speaker.Speak("Sorry, I couldn't find the song " + title + ".")
}

func (in *Interpreter) fetchNews(ctx context.Context) {
	in.Speaker.Speak("Fetching the latest news headlines from India.")

	titles, err := in.Headliner.TopHeadlines(ctx, "in", 5)
	if err != nil {
		slog.Error("Failed to fetch headlines", "err", err)
		in.Speaker.Speak(newsApology)
		return
	}

	in.Speaker.Speak(strings.Join(titles, ". "))
}

// askAI forwards the transcript with its original casing; lowering is only
// for trigger matching.
func (in *Interpreter) askAI(ctx context.Context, transcript string) {
	in.Speaker.Speak("Let me think...")

	answer, err := in.Completer.Complete(ctx, persona, transcript)
	if err != nil {
		var terr *gateway.TransportError
		switch {
		case errors.Is(err, gateway.ErrNoCredential):
			slog.Error("Completion credential missing")
		case errors.As(err, &terr):
			slog.Error("Completion transport failure", "err", terr.Err)
		default:
			slog.Error("Completion failed", "err", err)
		}
		in.Speaker.Speak(aiApology)
		return
	}

	in.Speaker.Speak(answer)
}
