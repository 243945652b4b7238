package skipbeam

import (
	"github.com/ashikaga-bmk/beamkit/beamcore"
)

// tree owns the node pool, the current root, and the per-depth-offset
// removal schedule. It knows nothing about MultiSelectors beyond the
// narrow Pusher-driving State interface it needs to call Expand.
type tree[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	pool        *ObjectPool[node[A, C, H]]
	root        int
	removeNodes [][]int
}

func newTree[A comparable, C beamcore.Cost, H beamcore.Hash](nodesCapacity int, rootCost C, rootHash H) *tree[A, C, H] {
	pool := NewObjectPool[node[A, C, H]](nodesCapacity)
	root := pool.Push(newRootNode[A, C, H](rootCost, rootHash))

	return &tree[A, C, H]{pool: pool, root: root}
}

// dfs runs one full round: prune nodes whose reservation just expired,
// collapse any now-unambiguous root prefix, then walk leftmost-active
// leaf to leftmost-active leaf, expanding each and recording how many
// rounds it must survive before being eligible for pruning.
func (t *tree[A, C, H]) dfs(
	state State[A, C, H, *MultiSelectors[A, C, H]],
	selectors *MultiSelectors[A, C, H],
) {
	t.removeUselessNodes(state)
	t.updateRoot(state)

	v := t.root
	if !t.pool.At(v).active {
		return
	}

	for {
		v = t.moveToLeaf(state, v)

		selectors.ResetStepMax()
		state.Expand(v, selectors)

		stepMax := selectors.StepMax()
		for len(t.removeNodes) < stepMax {
			t.removeNodes = append(t.removeNodes, nil)
		}
		t.removeNodes[stepMax-1] = append(t.removeNodes[stepMax-1], v)

		v = t.moveToAncestor(state, v)
		if v == t.root {
			return
		}
	}
}

// getPath walks parent pointers from v up to the root and returns the
// actions in root-to-v order.
//
// Complexity: O(depth of v).
func (t *tree[A, C, H]) getPath(v int) []A {
	var reversed []A
	for t.pool.At(v).parent != noNode {
		reversed = append(reversed, t.pool.At(v).action)
		v = t.pool.At(v).parent
	}

	path := make([]A, len(reversed))
	for i, a := range reversed {
		path[len(reversed)-1-i] = a
	}

	return path
}

// addLeaf grafts candidate as the new leftmost child of its parent,
// then re-activates every ancestor up to the root that had gone
// inactive, since this leaf gives them a live descendant again.
func (t *tree[A, C, H]) addLeaf(candidate beamcore.Candidate[A, C, H]) int {
	parent := candidate.Parent
	sibling := t.pool.At(parent).child
	v := t.pool.Push(newChildNode(candidate, sibling))

	t.pool.At(parent).child = v
	if sibling != noNode {
		t.pool.At(sibling).left = v
	}

	u := parent
	for !t.pool.At(u).active {
		t.pool.At(u).active = true
		if u == t.root {
			break
		}
		u = t.pool.At(u).parent
	}

	return v
}

// updateRoot walks into the current root's single active child while
// the root has exactly one child, collapsing the now-unambiguous
// prefix permanently (this child will never again be revisited by the
// DFS from any other direction).
func (t *tree[A, C, H]) updateRoot(state edgeMover[A]) {
	child := t.pool.At(t.root).child
	for child != noNode && t.pool.At(child).right == noNode {
		t.root = child
		state.MoveForward(t.pool.At(child).action)
		child = t.pool.At(child).child
	}
}

// moveToLeaf descends from v to its leftmost active descendant leaf,
// applying MoveForward along the way and deactivating every node it
// passes through (each will be reactivated by addLeaf if it gains a
// new child this round, or left inactive to be pruned otherwise).
func (t *tree[A, C, H]) moveToLeaf(state edgeMover[A], v int) int {
	child := t.pool.At(v).child
	for child != noNode {
		for !t.pool.At(child).active {
			child = t.pool.At(child).right
		}
		t.pool.At(v).active = false
		v = child
		state.MoveForward(t.pool.At(child).action)
		child = t.pool.At(child).child
	}
	t.pool.At(v).active = false

	return v
}

// moveToAncestor ascends from v, undoing moves via MoveBackward, until
// it finds an active right sibling to descend into, or reaches the
// root.
func (t *tree[A, C, H]) moveToAncestor(state edgeMover[A], v int) int {
	for v != t.root {
		state.MoveBackward(t.pool.At(v).action)

		u := t.pool.At(v).right
		for u != noNode {
			if t.pool.At(u).active {
				state.MoveForward(t.pool.At(u).action)

				return u
			}
			u = t.pool.At(u).right
		}

		v = t.pool.At(v).parent
	}

	return t.root
}

// removeUselessNodes frees every leaf whose reservation expired at the
// front of the schedule, then rotates the schedule so the next round's
// expirations move to the front.
func (t *tree[A, C, H]) removeUselessNodes(state edgeMover[A]) {
	_ = state // removal never itself moves the user state.
	if len(t.removeNodes) == 0 {
		return
	}

	for _, v := range t.removeNodes[0] {
		if t.pool.At(v).child == noNode {
			t.removeLeaf(v)
		}
	}

	t.removeNodes = append(t.removeNodes[1:], nil)
}

// removeLeaf frees v and, if v was its parent's only child, recurses
// upward to prune the now-childless parent too — as long as the chain
// of only-children continues. It never frees a node without a parent:
// reaching one raises an invariant violation instead.
func (t *tree[A, C, H]) removeLeaf(v int) {
	for {
		left := t.pool.At(v).left
		right := t.pool.At(v).right

		if left == noNode {
			parent := t.pool.At(v).parent
			if parent == noNode {
				beamcore.RaiseInvariant("removeLeaf: attempted to remove the root")
			}

			t.pool.Pop(v)
			t.pool.At(parent).child = right
			if right != noNode {
				t.pool.At(right).left = noNode

				return
			}
			v = parent

			continue
		}

		t.pool.Pop(v)
		t.pool.At(left).right = right
		if right != noNode {
			t.pool.At(right).left = left
		}

		return
	}
}

// edgeMover is the narrow State shape tree's internal helpers need: a
// place to apply forward/backward moves without depending on the full
// State[A,C,H,P] generic (which also needs a concrete Pusher type P).
type edgeMover[A comparable] interface {
	MoveForward(A)
	MoveBackward(A)
}
