package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Announcer is the slice of the speech capability the scheduler needs.
type Announcer interface {
	Speak(text string)
}

// Scheduler polls the store once a second and announces due reminders. It is
// started once at boot and stopped by cancelling its context; Wait blocks
// until the loop has drained.
type Scheduler struct {
	store    *Store
	speaker  Announcer
	interval time.Duration
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewScheduler(store *Store, speaker Announcer) *Scheduler {
	return &Scheduler{
		store:    store,
		speaker:  speaker,
		interval: time.Second,
		now:      time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		slog.Debug("Reminder scheduler started", "interval", s.interval)

		for {
			select {
			case <-ctx.Done():
				slog.Debug("Reminder scheduler stopped")
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) tick() {
	for _, r := range s.store.TakeDue(s.now()) {
		slog.Info("Reminder due", "message", r.Message, "fireAt", r.FireAt)
		s.speaker.Speak("Reminder: " + r.Message)
	}
}
