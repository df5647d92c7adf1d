package usecase

import "sync"

type generationState int

const (
	stateIdle generationState = iota
	stateGenerating
)

// generationTracker holds the per-pitch generation state machine
// (idle -> generating -> idle). It replaces the mount-scoped boolean guard
// of the browser client with an explicit, server-wide transition check.
type generationTracker struct {
	mu     sync.Mutex
	states map[string]generationState
}

func newGenerationTracker() *generationTracker {
	return &generationTracker{
		states: make(map[string]generationState),
	}
}

// begin transitions the pitch to generating. It returns false when a
// generation is already in flight for this pitch.
func (t *generationTracker) begin(pitchID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[pitchID] == stateGenerating {
		return false
	}
	t.states[pitchID] = stateGenerating
	return true
}

// end returns the pitch to idle.
func (t *generationTracker) end(pitchID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, pitchID)
}
