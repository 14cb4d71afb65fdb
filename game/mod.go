package game

import "errors"

const (
	// NoPlayer marks "no player is currently active" and "no winner yet".
	NoPlayer = -1
	// NoInput is the token passed to Apply when a state reported zero
	// options and is advanced automatically. Real tokens must be non-empty.
	NoInput = ""
)

var (
	ErrNoSession      = errors.New("no live session")
	ErrNoActivePlayer = errors.New("no active player")
)

// State is one unit of game logic: what can happen next, and how to apply a
// chosen input. Concrete games implement setup states, turn states and end
// states behind this interface; the engine never inspects their identity.
//
// Options must be a pure function of the data visible through ctx: the
// engine re-lists options during simulation and undo and relies on getting
// the same answer for the same history node. Empty and singleton option
// lists are reserved for auto-transitions and are never driven by external
// input.
type State interface {
	Options(ctx Context) []string
	// Apply consumes one input token and returns the next state, or nil to
	// end the game. Apply must tolerate input == NoInput when and only when
	// it previously reported zero options.
	Apply(input string, ctx Context) State
}

// Context is the view of the history a State sees during Options and Apply.
// Writes land on the current history node only; reads walk the ancestor
// chain, so each transition sees prior state without copying it.
type Context interface {
	// Get returns the value set by the nearest node on the path to the root
	// that set key, or (nil, false) if no node ever set it. The engine never
	// fabricates a default for a missing key.
	Get(key string) (any, bool)
	Set(key string, value any)
	SetActivePlayer(id int)
	// LastActivePlayer returns the player that acted on the previous node,
	// or NoPlayer at the root.
	LastActivePlayer() int
	SetWinner(id int)
	// Log emits one line to the rendering sink. During simulation the sink
	// is a no-op, so states may log unconditionally.
	Log(text string)
}
