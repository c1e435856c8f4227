package fichecompiler

// PhaseState tracks the currently open timed phase of the lesson body. A
// phase opens on a phase heading and closes on the next section or phase
// heading. The duration label is printed in the gutter at most once per
// phase, on the first bullet after the heading.
type PhaseState struct {
	// Duration is the label to print in the gutter ("5 min"), empty when
	// the active phase carries no recognizable duration.
	Duration string
	// Printed flips once the label has been drawn.
	Printed bool
}

// Reset returns to the idle state. Called on section headings and at the
// start of the document body.
func (s *PhaseState) Reset() {
	s.Duration = ""
	s.Printed = false
}

// Start opens a new phase. minutes is the raw minute count from the heading
// annotation; empty means the phase is untimed and no label will ever print.
func (s *PhaseState) Start(minutes string) {
	s.Printed = false
	if minutes == "" {
		s.Duration = ""
		return
	}
	s.Duration = minutes + " min"
}

// TakeLabel returns the gutter label to draw for the current bullet and
// marks it consumed. It returns "" when nothing should be drawn, either
// because the phase is untimed or the label was already printed.
func (s *PhaseState) TakeLabel() string {
	if s.Duration == "" || s.Printed {
		return ""
	}
	s.Printed = true
	return s.Duration
}
