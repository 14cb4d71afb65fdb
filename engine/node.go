package engine

import "turnbase/game"

// Node is one step of the game history. Nodes link to their parent only;
// the engine walks ancestor chains and never traverses children, so an
// abandoned branch (after undo or a finished simulation) is simply garbage
// collected.
type Node struct {
	parent       *Node
	producing    game.State
	store        map[string]any
	activePlayer int
	winner       int
	outputs      []game.Handle
}

func newNode(parent *Node, producing game.State) *Node {
	return &Node{
		parent:       parent,
		producing:    producing,
		activePlayer: game.NoPlayer,
		winner:       game.NoPlayer,
	}
}

// Get looks key up on the nearest node from n towards the root that set it.
// A key set on a descendant never shadows anything for its ancestors, which
// gives every transition copy-on-write visibility without copying.
func (n *Node) Get(key string) (any, bool) {
	for node := n; node != nil; node = node.parent {
		if value, ok := node.store[key]; ok {
			return value, true
		}
	}
	return nil, false
}

// Set writes key locally on n. Ancestor stores are never touched.
func (n *Node) Set(key string, value any) {
	if n.store == nil {
		n.store = make(map[string]any)
	}
	n.store[key] = value
}

func (n *Node) SetActivePlayer(id int) { n.activePlayer = id }

func (n *Node) SetWinner(id int) { n.winner = id }

// LastActivePlayer returns the player attributed to the parent node, or
// game.NoPlayer at the root.
func (n *Node) LastActivePlayer() int {
	if n.parent == nil {
		return game.NoPlayer
	}
	return n.parent.activePlayer
}

func (n *Node) ActivePlayer() int { return n.activePlayer }

func (n *Node) Winner() int { return n.winner }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) attachOutput(h game.Handle) {
	n.outputs = append(n.outputs, h)
}

// disposeOutputs retracts every line emitted while this node was current.
func (n *Node) disposeOutputs() {
	for _, h := range n.outputs {
		h.Dispose()
	}
	n.outputs = nil
}
