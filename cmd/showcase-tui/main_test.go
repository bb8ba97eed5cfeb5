package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPollEventsStopsOnQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	events := pollEvents(screen, quit)

	// fill the buffer while nobody reads, then leave one event pending
	deadline := time.Now().Add(2 * time.Second)
	for len(events) < cap(events) {
		if time.Now().After(deadline) {
			t.Fatalf("buffer holds %d events, want %d", len(events), cap(events))
		}
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		time.Sleep(time.Millisecond)
	}
	screen.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	time.Sleep(50 * time.Millisecond)

	close(quit)
	time.Sleep(50 * time.Millisecond)

	// the poller has returned, so the channel drains and closes
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event poller did not stop after quit")
		}
	}
}
