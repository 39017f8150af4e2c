package tabview

// DragPhase classifies a raw horizontal pager event from the host gesture
// recognizer.
type DragPhase int

const (
	// PhaseBegin marks the finger going down on the pager.
	PhaseBegin DragPhase = iota
	// PhaseMove carries a new pager position while dragging, or while the
	// host's own momentum scrolling is running after release.
	PhaseMove
	// PhaseEnd marks the finger lifting off.
	PhaseEnd
	// PhaseMomentumEnd marks the host's momentum scrolling coming to rest.
	PhaseMomentumEnd
)

// String returns a human-readable name for a drag phase.
func (p DragPhase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseMomentumEnd:
		return "momentum-end"
	}
	return "?"
}
