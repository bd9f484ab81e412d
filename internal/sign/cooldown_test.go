package sign

import (
	"testing"
	"time"
)

func TestGate_FirstEmissionImmediate(t *testing.T) {
	gate := NewGate(DefaultCooldown)

	now := time.Now()
	if !gate.Ready(now) {
		t.Error("a fresh gate should allow immediate emission")
	}
	if remaining := gate.Remaining(now); remaining != 0 {
		t.Errorf("Remaining() = %v, want 0 before any emission", remaining)
	}
}

func TestGate_BlocksWithinCooldown(t *testing.T) {
	gate := NewGate(1500 * time.Millisecond)

	start := time.Now()
	gate.Mark(start)

	if gate.Ready(start.Add(100 * time.Millisecond)) {
		t.Error("gate open 100ms after emission")
	}
	if gate.Ready(start.Add(1499 * time.Millisecond)) {
		t.Error("gate open 1ms before the cooldown elapses")
	}
	if !gate.Ready(start.Add(1500 * time.Millisecond)) {
		t.Error("gate closed exactly at the cooldown boundary")
	}
	if !gate.Ready(start.Add(2 * time.Second)) {
		t.Error("gate closed after the cooldown elapsed")
	}
}

func TestGate_Remaining(t *testing.T) {
	gate := NewGate(1 * time.Second)

	start := time.Now()
	gate.Mark(start)

	if remaining := gate.Remaining(start.Add(400 * time.Millisecond)); remaining != 600*time.Millisecond {
		t.Errorf("Remaining() = %v, want 600ms", remaining)
	}
	if remaining := gate.Remaining(start.Add(5 * time.Second)); remaining != 0 {
		t.Errorf("Remaining() = %v, want 0 after the window", remaining)
	}
}

func TestGate_MarkRestartsWindow(t *testing.T) {
	gate := NewGate(1 * time.Second)

	start := time.Now()
	gate.Mark(start)
	gate.Mark(start.Add(2 * time.Second))

	if gate.Ready(start.Add(2500 * time.Millisecond)) {
		t.Error("gate open inside the restarted window")
	}
	if !gate.Ready(start.Add(3 * time.Second)) {
		t.Error("gate closed after the restarted window elapsed")
	}
}
