package engine

import (
	"slices"

	"github.com/rs/zerolog"

	"turnbase/game"
)

type Option func(*Session)

func WithSink(sink game.Sink) Option {
	return func(s *Session) {
		if sink != nil {
			s.sink = sink
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session owns the live cursor of one game: the current state variant and
// the head of the history tree. All mutation goes through the transition
// pipeline, so a session is never left in a half-applied state. Sessions are
// not safe for concurrent use.
type Session struct {
	current game.State
	head    *Node
	sink    game.Sink
	logger  zerolog.Logger
}

// NewSession starts a game at initial and immediately drains any
// auto-transitions, so the returned session is already waiting at the first
// state that offers a real choice (or is already over).
func NewSession(initial game.State, options ...Option) *Session {
	s := &Session{
		sink:   game.Discard(),
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	s.head = newNode(nil, initial)
	s.current = initial
	s.drain()
	return s
}

// Over reports whether the game has ended. The head node is still available
// then, typically carrying the winner.
func (s *Session) Over() bool { return s.head != nil && s.current == nil }

// Live reports whether the session still has a current state to run.
func (s *Session) Live() bool { return s != nil && s.current != nil }

// ActivePlayer returns the player acting in the head node's context, or
// game.NoPlayer when no session is live or no player is active.
func (s *Session) ActivePlayer() int {
	if s.head == nil {
		return game.NoPlayer
	}
	return s.head.ActivePlayer()
}

// Winner returns the declared winner, or game.NoPlayer.
func (s *Session) Winner() int {
	if s.head == nil {
		return game.NoPlayer
	}
	return s.head.Winner()
}

func (s *Session) Head() *Node { return s.head }

// Options lists the legal input tokens of the current state, or nil when the
// game is over.
func (s *Session) Options() []string {
	if s.current == nil {
		return nil
	}
	return s.current.Options(nodeContext{s, s.head})
}

// Submit feeds one external input token to the engine. The token must be a
// member of the current option list and that list must offer a real choice
// (two or more entries); anything else is silently ignored, since keyboard
// sources routinely emit irrelevant keys. Returns whether a transition
// happened.
func (s *Session) Submit(token string) bool {
	if s.current == nil {
		return false
	}
	options := s.Options()
	if len(options) < 2 || !slices.Contains(options, token) {
		s.logger.Debug().Str("input", token).Msg("ignoring illegal input")
		return false
	}
	s.transition(token)
	s.drain()
	return true
}

// Undo walks the cursor back to the previous state that actually offered a
// choice. Auto-entered nodes in between are unwound in the same call, so a
// user-visible undo never lands on an intermediate artifact. At the root it
// is a no-op. Returns whether anything was undone.
func (s *Session) Undo() bool {
	if s.head == nil || s.head.Parent() == nil {
		return false
	}
	for {
		s.head.disposeOutputs()
		if producing := s.head.producing; producing != nil {
			s.current = producing
		}
		s.head = s.head.Parent()
		if s.head.Parent() == nil {
			break
		}
		if s.current != nil && len(s.current.Options(nodeContext{s, s.head})) > 1 {
			break
		}
	}
	s.logger.Debug().Msg("undo")
	return true
}

// transition performs one step: a fresh history node becomes the head, then
// the current state applies the input against it. The node's producing state
// is the state that was current before the step, which is what undo restores.
func (s *Session) transition(token string) {
	node := newNode(s.head, s.current)
	s.head = node
	s.current = s.current.Apply(token, nodeContext{s, node})
	s.logger.Debug().Str("input", token).Bool("over", s.current == nil).Msg("transition")
}

// drain consumes auto-transitions: zero-option states advance with NoInput,
// single-option states advance with that option. Control returns to the
// caller only at a state with a real choice or at game end. Termination is a
// contract on the supplied state graph, not something the engine enforces.
func (s *Session) drain() {
	for s.current != nil {
		options := s.current.Options(nodeContext{s, s.head})
		switch len(options) {
		case 0:
			s.transition(game.NoInput)
		case 1:
			s.transition(options[0])
		default:
			return
		}
	}
}

// Play performs one transition without the legality gate of Submit. It
// exists for the searcher's rollouts, which pick tokens straight from
// Options; interactive callers should use Submit.
func (s *Session) Play(token string) {
	if s.current == nil {
		return
	}
	s.transition(token)
}

// Snapshot captures the cursor. Restoring it abandons any nodes created
// since; their stores are local, so the abandoned branch cannot have touched
// anything the snapshot still reaches.
type Snapshot struct {
	state game.State
	head  *Node
}

func (s *Session) Save() Snapshot { return Snapshot{state: s.current, head: s.head} }

func (s *Session) Restore(snap Snapshot) {
	s.current = snap.state
	s.head = snap.head
}

// EnterSimulation brackets speculative play: it saves the cursor and swaps
// in a discard sink, and returns the snapshot plus an exit func that undoes
// both. Callers must run exit on every path out, including early returns, so
// a failed rollout can never leak into the live game.
func (s *Session) EnterSimulation() (Snapshot, func()) {
	snap := s.Save()
	sink := s.sink
	s.sink = game.Discard()
	return snap, func() {
		s.Restore(snap)
		s.sink = sink
	}
}
