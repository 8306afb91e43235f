package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (r *recordingSpeaker) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spoken = append(r.spoken, text)
}

func (r *recordingSpeaker) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.spoken...)
}

func TestSchedulerAnnouncesDueReminderOnce(t *testing.T) {
	store := NewStore()
	spk := &recordingSpeaker{}

	sched := NewScheduler(store, spk)
	sched.interval = 5 * time.Millisecond

	store.Add(Reminder{FireAt: time.Now().Add(20 * time.Millisecond), Message: "drink water"})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	require.Eventually(t, func() bool {
		return len(spk.all()) == 1
	}, time.Second, 5*time.Millisecond, "reminder never announced")

	assert.Equal(t, "Reminder: drink water", spk.all()[0])
	assert.Equal(t, 0, store.Len())

	// Give the loop a few more ticks; the reminder must not fire again.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, spk.all(), 1)

	cancel()
	sched.Wait()
}

func TestSchedulerAppendDuringRunDoesNotSkip(t *testing.T) {
	store := NewStore()
	spk := &recordingSpeaker{}

	sched := NewScheduler(store, spk)
	sched.interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	// Appends arrive while the loop is already scanning.
	for i := 0; i < 5; i++ {
		store.Add(Reminder{FireAt: time.Now().Add(10 * time.Millisecond), Message: "tick"})
		time.Sleep(3 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(spk.all()) == 5 && store.Len() == 0
	}, time.Second, 5*time.Millisecond, "appended reminders were skipped")

	cancel()
	sched.Wait()
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	store := NewStore()
	sched := NewScheduler(store, &recordingSpeaker{})
	sched.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		sched.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
