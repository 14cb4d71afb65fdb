package searcher

import (
	"context"
	"time"

	"golang.org/x/exp/rand"

	"turnbase/engine"
	"turnbase/game"
)

type Option func(*Searcher)

// WithRand injects the random source used to pick rollout moves. Tests pass
// a fixed seed for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithCollector(collector Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Searcher estimates outcomes by uniform-random rollouts against a live
// session. It runs on the session's own transition machinery inside a
// save/restore bracket, so thousands of speculative games never leak into
// the real history.
type Searcher struct {
	rng     *rand.Rand
	metrics Collector
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// EstimateOutcomes plays iterations random games to completion from the
// session's current position and tallies wins per player id. Players that
// never win are absent from the result, so a nil-winner-only sample yields
// an empty map. Returns game.ErrNoSession when there is nothing to run.
// The context is checked between iterations, never mid-transition.
func (s *Searcher) EstimateOutcomes(ctx context.Context, sess *engine.Session, iterations int) (map[int]int, error) {
	if !sess.Live() {
		return nil, game.ErrNoSession
	}
	s.metrics.Start()
	snap, exit := sess.EnterSimulation()
	defer exit()
	return s.outcomes(ctx, sess, snap, iterations)
}

// EstimateOptionOutcomes estimates, for every currently legal option, how
// many of perOption random continuations the current active player wins
// after taking that option. Returns game.ErrNoActivePlayer during setup
// phases and after game end, where no meaningful current player exists.
func (s *Searcher) EstimateOptionOutcomes(ctx context.Context, sess *engine.Session, perOption int) (map[string]int, error) {
	if !sess.Live() {
		return nil, game.ErrNoSession
	}
	player := sess.ActivePlayer()
	if player == game.NoPlayer {
		return nil, game.ErrNoActivePlayer
	}
	s.metrics.Start()
	snap, exit := sess.EnterSimulation()
	defer exit()

	options := sess.Options()
	result := make(map[string]int, len(options))
	for _, option := range options {
		sess.Restore(snap)
		sess.Play(option)
		wins, err := s.outcomes(ctx, sess, sess.Save(), perOption)
		if err != nil {
			return nil, err
		}
		result[option] = wins[player]
	}
	return result, nil
}

// outcomes runs the rollout loop from snap. Callers hold the simulation
// bracket; the cursor is dirty on return.
func (s *Searcher) outcomes(ctx context.Context, sess *engine.Session, snap engine.Snapshot, iterations int) (map[int]int, error) {
	wins := make(map[int]int)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sess.Restore(snap)
		s.rollout(sess)
		winner := sess.Winner()
		s.metrics.AddRollout(winner)
		if winner != game.NoPlayer {
			wins[winner]++
		}
	}
	return wins, nil
}

// rollout advances the session to a terminal state: forced moves are taken
// as-is, real choices uniformly at random.
func (s *Searcher) rollout(sess *engine.Session) {
	for sess.Live() {
		options := sess.Options()
		switch len(options) {
		case 0:
			sess.Play(game.NoInput)
		case 1:
			sess.Play(options[0])
		default:
			sess.Play(options[s.rng.Intn(len(options))])
		}
	}
}

// Report returns the statistics gathered so far by the configured collector.
func (s *Searcher) Report() Report {
	return s.metrics.Complete()
}
