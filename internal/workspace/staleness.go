package workspace

// State tracks whether displayed analysis results still correspond to the
// current document text.
type State int

const (
	// Stale means the content changed since the last completed run, or no
	// run has ever completed for this document.
	Stale State = iota
	// Fresh means the analysis results reflect the current content.
	Fresh
)

func (s State) String() string {
	if s == Fresh {
		return "fresh"
	}
	return "stale"
}

// Tracker is the two-state staleness machine. A new tracker starts Stale
// ("no run yet"); a completed analysis run moves it to Fresh; an edit while
// Fresh with results present moves it back to Stale. Selecting another
// document resets it via Reset.
type Tracker struct {
	state State
}

// NewTracker returns a tracker in the initial Stale state.
func NewTracker() *Tracker {
	return &Tracker{state: Stale}
}

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// IsStale reports whether results no longer match the content.
func (t *Tracker) IsStale() bool { return t.state == Stale }

// NoteEdit records a change to the working content. Only an edit made while
// Fresh with at least one analysis entry present transitions to Stale.
func (t *Tracker) NoteEdit(hasAnalyses bool) {
	if t.state == Fresh && hasAnalyses {
		t.state = Stale
	}
}

// MarkRun records a successfully completed analysis run.
func (t *Tracker) MarkRun() {
	t.state = Fresh
}

// Reset returns to the initial state for a newly selected document.
func (t *Tracker) Reset() {
	t.state = Stale
}
