package gui_test

import (
	"sync"
	"testing"

	"github.com/crossgui/gui"
)

func TestEventFIFODelivery(t *testing.T) {
	app, d := newTestApp()

	ev := gui.NewEvent()
	var got []any
	ev.Connect(func(arg any) { got = append(got, arg) })

	app.Trigger(ev, 1)
	app.Trigger(ev, 2)
	app.Trigger(ev, 3)
	d.pump()

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("delivery = %v, want [1 2 3]", got)
	}
}

func TestEventTriggeredDuringDrainDeliversSamePass(t *testing.T) {
	app, d := newTestApp()

	second := gui.NewEvent()
	var got []string
	second.Connect(func(any) { got = append(got, "second") })

	first := gui.NewEvent()
	first.Connect(func(any) {
		got = append(got, "first")
		app.Trigger(second, nil)
	})

	app.Trigger(first, nil)
	d.pump()

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("delivery = %v, want [first second]", got)
	}
}

func TestEventMultipleHandlers(t *testing.T) {
	app, d := newTestApp()

	ev := gui.NewEvent()
	var got []string
	ev.Connect(func(any) { got = append(got, "a") })
	ev.Connect(func(any) { got = append(got, "b") })

	app.Trigger(ev, nil)
	d.pump()

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("delivery = %v, want handlers in registration order", got)
	}
}

func TestTriggerFromManyGoroutines(t *testing.T) {
	app, d := newTestApp()

	ev := gui.NewEvent()
	seen := 0
	ev.Connect(func(any) { seen++ })

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			app.Trigger(ev, nil)
		}()
	}
	wg.Wait()
	d.pump()

	if seen != n {
		t.Errorf("seen = %d, want %d", seen, n)
	}
}

func TestPostRunsFunction(t *testing.T) {
	app, d := newTestApp()

	ran := 0
	app.Post(func() { ran++ })
	d.pump()
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}
