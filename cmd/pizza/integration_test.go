package main

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const (
	termWidth  = 100
	termHeight = 40
)

type testHarness struct {
	t  *testing.T
	tm *teatest.TestModel
}

func newTestHarness(t *testing.T, m Model) *testHarness {
	t.Helper()
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(termWidth, termHeight),
	)
	return &testHarness{t: t, tm: tm}
}

func (h *testHarness) Send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.tm.Send(msg)
	}
}

func (h *testHarness) WaitFor(content string, timeout time.Duration) {
	h.t.Helper()
	teatest.WaitFor(h.t, h.tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(content))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(timeout),
	)
}

// Quit sends q and returns the final model
func (h *testHarness) Quit(timeout time.Duration) Model {
	h.t.Helper()
	h.Send(keyRunes("q"))
	h.tm.WaitFinished(h.t, teatest.WithFinalTimeout(timeout))
	final, ok := h.tm.FinalModel(h.t).(Model)
	if !ok {
		h.t.Fatalf("expected Model, got %T", h.tm.FinalModel(h.t))
	}
	return final
}

func TestIntegration_CustomizeAndAddToCart(t *testing.T) {
	h := newTestHarness(t, newTestModel(t))
	h.WaitFor("$15", 3*time.Second)

	h.Send(keyRunes("L"))
	h.WaitFor("$17", 3*time.Second)

	h.Send(keyRunes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	h.WaitFor("Added L bread_1 (onion) $17", 3*time.Second)

	final := h.Quit(3 * time.Second)
	snap := final.session.Snapshot()
	if snap.Price != 17 || snap.Customization.Toppings.Len() != 1 {
		t.Errorf("unexpected final state: $%d with %d toppings", snap.Price, snap.Customization.Toppings.Len())
	}
}

func TestIntegration_SwipeBetweenBreads(t *testing.T) {
	h := newTestHarness(t, newTestModel(t))
	h.WaitFor("bread_1", 3*time.Second)

	h.Send(keyRunes("S"))
	h.WaitFor("$12", 3*time.Second)

	h.Send(press(40), motion(30), motion(20), release(20))
	h.WaitFor("bread_2", 3*time.Second)

	h.Send(press(20), motion(30), release(30))
	h.WaitFor("$12", 3*time.Second)

	final := h.Quit(3 * time.Second)
	if got := final.session.State().ActiveIndex(); got != 0 {
		t.Errorf("expected to swipe back to the first bread, got %d", got)
	}
}

func TestIntegration_Help(t *testing.T) {
	h := newTestHarness(t, newTestModel(t))
	h.WaitFor("Pizza", 3*time.Second)

	h.Send(keyRunes("?"))
	h.WaitFor("Keyboard Shortcuts", 3*time.Second)

	h.Send(keyRunes("?"))
	h.WaitFor("Add to cart", 3*time.Second)

	h.Quit(3 * time.Second)
}
