package engine

import "turnbase/game"

// nodeContext is the thin view handed to State.Options and State.Apply. It
// binds reads and writes to one history node and routes Log through the
// session's current sink so emitted lines are attributed to that node.
type nodeContext struct {
	session *Session
	node    *Node
}

var _ game.Context = nodeContext{}

func (c nodeContext) Get(key string) (any, bool) { return c.node.Get(key) }

func (c nodeContext) Set(key string, value any) { c.node.Set(key, value) }

func (c nodeContext) SetActivePlayer(id int) { c.node.SetActivePlayer(id) }

func (c nodeContext) LastActivePlayer() int { return c.node.LastActivePlayer() }

func (c nodeContext) SetWinner(id int) { c.node.SetWinner(id) }

func (c nodeContext) Log(text string) {
	c.node.attachOutput(c.session.sink.Append(text))
}
