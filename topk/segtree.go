package topk

import "github.com/ashikaga-bmk/beamkit/beamcore"

// maxSegtree is a bottom-up, array-backed tournament tree over exactly
// n leaves supporting O(log n) point update and O(1) global-argmax by
// cost. It is the Go-native stand-in for the AtCoder Library segtree
// the original selector uses (atcoder::segtree<pair<Cost,int>, max_func,
// min_func>): this module needs only a global maximum, never a range
// query, so the simpler non-power-of-two iterative layout used in
// jinterlante1206-AleutianLocal's trace/graph/segment_tree.go (bottom-up
// array construction from leaves upward) is adopted without that file's
// lazy-propagation machinery, which this use case does not need.
//
// Ties are broken toward the leaf with the lower slot index, matching
// the deterministic argmax spec.md §5 requires ("ties are broken by
// first-wins ... because the maxheap's argmax is deterministic over
// equal keys").
type maxSegtree[C beamcore.Cost] struct {
	n    int
	tree []segItem[C]
}

type segItem[C beamcore.Cost] struct {
	cost C
	slot int
}

func combine[C beamcore.Cost](a, b segItem[C]) segItem[C] {
	if b.cost > a.cost || (b.cost == a.cost && b.slot < a.slot) {
		return b
	}

	return a
}

// buildMaxSegtree constructs a tree over costs, where costs[i] is the
// cost currently held at slot i. len(costs) becomes the tree's fixed
// leaf count; it is never resized.
func buildMaxSegtree[C beamcore.Cost](costs []C) *maxSegtree[C] {
	n := len(costs)
	t := &maxSegtree[C]{n: n, tree: make([]segItem[C], 2*n)}
	for i, c := range costs {
		t.tree[n+i] = segItem[C]{cost: c, slot: i}
	}
	for i := n - 1; i >= 1; i-- {
		t.tree[i] = combine(t.tree[2*i], t.tree[2*i+1])
	}

	return t
}

// update sets the cost held at slot and restores the tournament
// invariant up to the root.
//
// Complexity: O(log n).
func (t *maxSegtree[C]) update(slot int, cost C) {
	i := slot + t.n
	t.tree[i] = segItem[C]{cost: cost, slot: slot}
	for i > 1 {
		i /= 2
		t.tree[i] = combine(t.tree[2*i], t.tree[2*i+1])
	}
}

// argmax returns the slot currently holding the highest cost.
//
// Complexity: O(1).
func (t *maxSegtree[C]) argmax() int {
	return t.tree[1].slot
}

// worstCost returns the cost held at argmax's slot.
//
// Complexity: O(1).
func (t *maxSegtree[C]) worstCost() C {
	return t.tree[1].cost
}

// get returns the cost currently held at slot, independent of whether
// it is the current argmax.
//
// Complexity: O(1).
func (t *maxSegtree[C]) get(slot int) C {
	return t.tree[t.n+slot].cost
}
