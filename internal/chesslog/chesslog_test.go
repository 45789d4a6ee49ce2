package chesslog

import "testing"

func TestDebugKnobsAreIndependent(t *testing.T) {
	defer func() {
		SetDebug(false)
		SetUCIDebug(false)
	}()

	SetDebug(false)
	SetUCIDebug(false)
	if DebugEnabled() {
		t.Fatal("expected debug output disabled with both knobs off")
	}

	SetDebug(true)
	if !DebugEnabled() {
		t.Error("expected the process-level flag alone to enable debug output")
	}

	SetUCIDebug(false)
	if !DebugEnabled() {
		t.Error("expected debug on|off=false to leave the process-level flag untouched")
	}

	SetDebug(false)
	if DebugEnabled() {
		t.Fatal("expected debug output disabled once more with both knobs off")
	}

	SetUCIDebug(true)
	if !DebugEnabled() {
		t.Error("expected the UCI session's own toggle alone to enable debug output")
	}

	SetDebug(false)
	if !DebugEnabled() {
		t.Error("expected the process-level flag staying off to leave the UCI toggle untouched")
	}
}
