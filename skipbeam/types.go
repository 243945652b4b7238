package skipbeam

import "github.com/ashikaga-bmk/beamkit/beamcore"

// Pusher is skipbeam's own candidate-admission contract. It cannot
// reuse beamcore.Pusher because a skip candidate additionally declares
// how many user-turns it advances: step=1 behaves exactly like
// beamcore.Pusher.Push; step>1 parks the candidate in a later round's
// selector instead of this round's.
type Pusher[A comparable, C beamcore.Cost, H beamcore.Hash] interface {
	Push(action A, cost C, hash H, parent int, finished bool, step int) bool
}

// State is the user-supplied contract Engine SKIP drives. Unlike
// beamcore.State it has no MakeInitialNode: the caller constructs the
// root's cost and hash directly and hands them to Search, mirroring the
// original library's beam_search(config, state, root Node) signature.
type State[A comparable, C beamcore.Cost, H beamcore.Hash, P Pusher[A, C, H]] interface {
	Expand(parentSlot int, selector P)
	MoveForward(action A)
	MoveBackward(action A)
}

// node is one element of the doubly-linked child/sibling tree. The
// root's action is never read (getPath stops once it reaches a node
// whose parent is -1, before consulting that node's own action), so
// no optional wrapper is needed for it: the zero value is simply never
// observed.
type node[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	action A
	cost   C
	hash   H
	parent int
	child  int
	left   int
	right  int
	active bool
}

const noNode = -1

func newRootNode[A comparable, C beamcore.Cost, H beamcore.Hash](cost C, hash H) node[A, C, H] {
	return node[A, C, H]{parent: noNode, child: noNode, left: noNode, right: noNode, active: true, cost: cost, hash: hash}
}

func newChildNode[A comparable, C beamcore.Cost, H beamcore.Hash](c beamcore.Candidate[A, C, H], rightSibling int) node[A, C, H] {
	return node[A, C, H]{
		action: c.Action,
		cost:   c.Cost,
		hash:   c.Hash,
		parent: c.Parent,
		child:  noNode,
		left:   noNode,
		right:  rightSibling,
		active: true,
	}
}
