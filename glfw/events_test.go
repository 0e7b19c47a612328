package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core/std"
)

// newTestDevice builds a Device without a window, so the callbacks can be
// driven directly the way PollEvents would.
func newTestDevice() *Device {
	return &Device{
		kbd:    make(chan KeyEvent, eventBacklog),
		mouse:  make(chan MouseEvent, eventBacklog),
		cursor: make(chan std.XY[float32], eventBacklog),
		scroll: make(chan std.XY[float32], eventBacklog),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func TestOnKey_ForwardsKeyAndAction(t *testing.T) {
	d := newTestDevice()
	d.onKey(nil, glfw.KeyA, 30, glfw.Press, 0)

	select {
	case ev := <-d.Kbd():
		if ev.Key != glfw.KeyA || ev.Action != glfw.Press {
			t.Fatalf("expected {KeyA Press}, got %+v", ev)
		}
	default:
		t.Fatalf("expected one keyboard event")
	}
}

func TestOnKey_DropsUnknownKeys(t *testing.T) {
	d := newTestDevice()
	d.onKey(nil, glfw.KeyUnknown, 0, glfw.Press, 0)

	if len(d.kbd) != 0 {
		t.Fatalf("unknown key should be dropped, got %d events", len(d.kbd))
	}
}

func TestOnMouseButton_ForwardsButtonAndAction(t *testing.T) {
	d := newTestDevice()
	d.onMouseButton(nil, glfw.MouseButtonRight, glfw.Release, 0)

	ev := <-d.Mouse()
	if ev.Button != glfw.MouseButtonRight || ev.Action != glfw.Release {
		t.Fatalf("expected {MouseButtonRight Release}, got %+v", ev)
	}
}

func TestOnCursorPos_ForwardsPixelPosition(t *testing.T) {
	d := newTestDevice()
	d.onCursorPos(nil, 12.5, 8.25)

	pos := <-d.Cursor()
	if pos != (std.XY[float32]{X: 12.5, Y: 8.25}) {
		t.Fatalf("expected {12.5 8.25}, got %+v", pos)
	}
}

func TestOnScroll_ForwardsDelta(t *testing.T) {
	d := newTestDevice()
	d.onScroll(nil, 0, -1)

	delta := <-d.Scroll()
	if delta != (std.XY[float32]{X: 0, Y: -1}) {
		t.Fatalf("expected {0 -1}, got %+v", delta)
	}
}

func TestRelay_PreservesDeliveryOrder(t *testing.T) {
	d := newTestDevice()
	keys := []Key{glfw.KeyA, glfw.KeyB, glfw.KeyC}
	for _, k := range keys {
		d.onKey(nil, k, 0, glfw.Press, 0)
	}

	for i, want := range keys {
		ev := <-d.Kbd()
		if ev.Key != want {
			t.Fatalf("event %d: expected key %v, got %v", i, want, ev.Key)
		}
	}
}

func TestSend_DropsWhenReceiverLagsBehind(t *testing.T) {
	d := newTestDevice()
	d.kbd = make(chan KeyEvent, 1)

	d.onKey(nil, glfw.KeyA, 0, glfw.Press, 0)
	d.onKey(nil, glfw.KeyB, 0, glfw.Press, 0)

	if len(d.kbd) != 1 {
		t.Fatalf("expected the overflow event to be dropped, got %d queued", len(d.kbd))
	}
	if ev := <-d.Kbd(); ev.Key != glfw.KeyA {
		t.Fatalf("the first event should survive, got %v", ev.Key)
	}
}
