package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"turnbase/engine"
	"turnbase/game"
	"turnbase/games/nimsum"
	"turnbase/games/tictactoe"
)

func seeded(seed uint64) *Searcher {
	return New(WithRand(rand.New(rand.NewSource(seed))))
}

func finishedNimsum(t *testing.T) *engine.Session {
	t.Helper()
	s := engine.NewSession(nimsum.NewGame())
	require.True(t, s.Submit("2"))
	require.True(t, s.Submit("3"))
	require.True(t, s.Submit("4"))
	require.True(t, s.Over())
	return s
}

func TestEstimateOutcomesNonInterference(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())
	require.True(t, s.Submit("4"))

	head := s.Head()
	options := s.Options()
	player := s.ActivePlayer()

	wins, err := seeded(1).EstimateOutcomes(context.Background(), s, 200)
	require.NoError(t, err)
	require.NotEmpty(t, wins)

	require.Same(t, head, s.Head(), "Estimation must not move the live head")
	require.Equal(t, options, s.Options(), "Estimation must not change visible scoped data")
	require.Equal(t, player, s.ActivePlayer())
	require.Equal(t, game.NoPlayer, s.Winner())
	require.True(t, s.Live())
}

func TestEstimateOutcomesTotals(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())

	const iterations = 100
	wins, err := seeded(2).EstimateOutcomes(context.Background(), s, iterations)
	require.NoError(t, err)

	total := 0
	for winner, count := range wins {
		require.Contains(t, []int{1, 2}, winner)
		total += count
	}
	require.LessOrEqual(t, total, iterations, "Win totals can never exceed the iteration count")
	require.Positive(t, total)
}

func TestEstimateOutcomesDeterministicWithSeed(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())
	require.True(t, s.Submit("0"))

	first, err := seeded(7).EstimateOutcomes(context.Background(), s, 50)
	require.NoError(t, err)
	second, err := seeded(7).EstimateOutcomes(context.Background(), s, 50)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEstimateOutcomesNoSession(t *testing.T) {
	_, err := seeded(1).EstimateOutcomes(context.Background(), finishedNimsum(t), 10)
	require.ErrorIs(t, err, game.ErrNoSession)
}

func TestEstimateOptionOutcomes(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())
	// Player 1 builds 0,1 along the top row; player 2 answers on the middle
	// row. Cell 2 now wins for player 1 on the spot.
	for _, token := range []string{"0", "3", "1", "4"} {
		require.True(t, s.Submit(token))
	}
	require.Equal(t, 1, s.ActivePlayer())

	const perOption = 20
	result, err := seeded(3).EstimateOptionOutcomes(context.Background(), s, perOption)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"2", "5", "6", "7", "8"}, mapKeys(result))
	require.Equal(t, perOption, result["2"], "The immediately winning option should win every rollout")
	for option, count := range result {
		require.LessOrEqual(t, count, perOption, "option %s", option)
		require.GreaterOrEqual(t, count, 0, "option %s", option)
	}

	require.Equal(t, 1, s.ActivePlayer(), "The live cursor must be restored")
	require.True(t, s.Live())
}

func TestEstimateOptionOutcomesNoActivePlayer(t *testing.T) {
	// The nimsum setup state has options but no player is active yet; that
	// is "unavailable", not an empty result.
	s := engine.NewSession(nimsum.NewGame())
	require.Equal(t, game.NoPlayer, s.ActivePlayer())

	_, err := seeded(1).EstimateOptionOutcomes(context.Background(), s, 10)
	require.ErrorIs(t, err, game.ErrNoActivePlayer)
}

func TestEstimateOptionOutcomesNoSession(t *testing.T) {
	_, err := seeded(1).EstimateOptionOutcomes(context.Background(), finishedNimsum(t), 10)
	require.ErrorIs(t, err, game.ErrNoSession)
}

func TestEstimateOutcomesCancelled(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())
	head := s.Head()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seeded(1).EstimateOutcomes(ctx, s, 1000)
	require.ErrorIs(t, err, context.Canceled)
	require.Same(t, head, s.Head(), "The cursor must be restored on the cancellation path too")
}

func TestCollectorReport(t *testing.T) {
	s := engine.NewSession(tictactoe.NewGame())
	est := New(
		WithRand(rand.New(rand.NewSource(5))),
		WithCollector(NewCollector()),
	)

	_, err := est.EstimateOutcomes(context.Background(), s, 40)
	require.NoError(t, err)

	report := est.Report()
	require.Equal(t, 40, report.Rollouts)
	require.LessOrEqual(t, report.NoWinner, report.Rollouts)
}

func mapKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
