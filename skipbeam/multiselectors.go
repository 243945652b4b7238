package skipbeam

import (
	"github.com/ashikaga-bmk/beamkit/beamcore"
	"github.com/ashikaga-bmk/beamkit/topk"
)

// MultiSelectors is a deque of per-step-offset topk.Selectors, created
// lazily as a state's Expand call pushes candidates further out than
// any seen so far this round. Push(..., step) routes into
// selectors[step-1]; the round loop pops the front selector (this
// round's due candidates) and returns a cleared selector to the back
// for reuse once consumed, exactly the object-recycling discipline
// edge_beam.cpp's sibling Selector gets via Selector.clear — here
// applied to the whole selector, not just its contents, since SKIP
// reuses the step-1 selector object itself across rounds.
type MultiSelectors[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	beamWidth       int
	hashMapCapacity int
	selectors       []*topk.Selector[A, C, H]
	stepMax         int
}

func newMultiSelectors[A comparable, C beamcore.Cost, H beamcore.Hash](beamWidth, hashMapCapacity int) *MultiSelectors[A, C, H] {
	return &MultiSelectors[A, C, H]{beamWidth: beamWidth, hashMapCapacity: hashMapCapacity, stepMax: 1}
}

// Push routes a candidate into the selector step rounds from now,
// growing the deque on demand. It returns false iff the target
// selector dropped the candidate: no better than its current worst kept
// candidate, or no better than the kept candidate sharing its
// fingerprint.
func (m *MultiSelectors[A, C, H]) Push(action A, cost C, hash H, parent int, finished bool, step int) bool {
	for len(m.selectors) < step {
		m.selectors = append(m.selectors, topk.New[A, C, H](m.beamWidth, m.hashMapCapacity))
	}

	if !m.selectors[step-1].Push(action, cost, hash, parent, finished) {
		return false
	}
	if step > m.stepMax {
		m.stepMax = step
	}

	return true
}

// ResetStepMax must be called immediately before each Expand call.
func (m *MultiSelectors[A, C, H]) ResetStepMax() { m.stepMax = 1 }

// StepMax reports the largest step any push this Expand call carried,
// defaulting to 1 (an ordinary, non-skipping candidate).
func (m *MultiSelectors[A, C, H]) StepMax() int { return m.stepMax }

// PopSelector removes and returns the front (step-1, due-this-round)
// selector, matching the teacher's own slice-front-pop queue idiom
// (graph/algorithms/bfs.go's dequeue).
func (m *MultiSelectors[A, C, H]) PopSelector() *topk.Selector[A, C, H] {
	front := m.selectors[0]
	m.selectors = m.selectors[1:]

	return front
}

// PushSelector clears sel and returns it to the back of the deque for
// reuse by a later round.
func (m *MultiSelectors[A, C, H]) PushSelector(sel *topk.Selector[A, C, H]) {
	sel.Clear()
	m.selectors = append(m.selectors, sel)
}
