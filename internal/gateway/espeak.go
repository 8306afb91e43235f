package gateway

import (
	"log/slog"
	"os/exec"
)

// EspeakSpeaker shells out to espeak-ng for synthesis. Playback is
// synchronous: Speak returns after the utterance has been voiced.
type EspeakSpeaker struct {
	// Voice selects the espeak-ng voice, e.g. "en". Empty uses the default.
	Voice string
}

func (s *EspeakSpeaker) Speak(text string) {
	if text == "" {
		slog.Debug("Skipping empty utterance")
		return
	}

	slog.Info("Speaking", "text", text)

	args := []string{}
	if s.Voice != "" {
		args = append(args, "-v", s.Voice)
	}
	args = append(args, text)

	if err := exec.Command("espeak-ng", args...).Run(); err != nil {
		slog.Error("Failed to voice out", "err", err)
	}
}
