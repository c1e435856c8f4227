package fichecompiler

import "testing"

func TestPhaseStateLabelPrintedOnce(t *testing.T) {
	var st PhaseState
	st.Start("5")

	if got := st.TakeLabel(); got != "5 min" {
		t.Fatalf("first TakeLabel = %q, want %q", got, "5 min")
	}
	if got := st.TakeLabel(); got != "" {
		t.Fatalf("second TakeLabel = %q, want empty", got)
	}
	if got := st.TakeLabel(); got != "" {
		t.Fatalf("third TakeLabel = %q, want empty", got)
	}
}

func TestPhaseStateUntimedPhase(t *testing.T) {
	var st PhaseState
	st.Start("")

	for i := 0; i < 3; i++ {
		if got := st.TakeLabel(); got != "" {
			t.Fatalf("TakeLabel on untimed phase = %q, want empty", got)
		}
	}
}

func TestPhaseStateResetClearsPendingLabel(t *testing.T) {
	var st PhaseState
	st.Start("10")
	st.Reset()

	if got := st.TakeLabel(); got != "" {
		t.Fatalf("TakeLabel after Reset = %q, want empty", got)
	}
}

func TestPhaseStateNewPhaseReplacesOldOne(t *testing.T) {
	var st PhaseState
	st.Start("5")
	if st.TakeLabel() == "" {
		t.Fatal("expected label for first phase")
	}

	// The next phase heading re-arms the gutter.
	st.Start("10")
	if got := st.TakeLabel(); got != "10 min" {
		t.Fatalf("TakeLabel after new phase = %q, want %q", got, "10 min")
	}
	if got := st.TakeLabel(); got != "" {
		t.Fatalf("label re-emitted within one phase: %q", got)
	}
}
