// Package nimsum is a small modulo-sum arithmetic game: each player in turn
// adds a digit to a running sum, and once everyone has gone the winner is
// (sum mod players) + 1. It exercises setup phases, the scoped store and
// winner attribution behind the generic state contract.
package nimsum

import (
	"fmt"
	"strconv"

	"turnbase/game"
)

const (
	keyPlayers = "players"
	keySum     = "sum"
)

// NewGame returns the initial state: choosing the player count.
func NewGame() game.State { return setup{} }

type setup struct{}

func (setup) Options(game.Context) []string {
	return []string{"2", "3", "4"}
}

func (setup) Apply(input string, ctx game.Context) game.State {
	players, err := strconv.Atoi(input)
	if err != nil {
		return nil
	}
	ctx.Set(keyPlayers, players)
	ctx.Set(keySum, 0)
	ctx.SetActivePlayer(1)
	ctx.Log(fmt.Sprintf("Playing with %d players.", players))
	return pick{player: 1}
}

// pick is one player's turn to add a digit to the sum.
type pick struct {
	player int
}

func (pick) Options(game.Context) []string {
	return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
}

func (p pick) Apply(input string, ctx game.Context) game.State {
	value, err := strconv.Atoi(input)
	if err != nil {
		return nil
	}
	sum := intAt(ctx, keySum) + value
	ctx.Set(keySum, sum)
	ctx.Log(fmt.Sprintf("Player %d adds %d, total is %d.", p.player, value, sum))

	if p.player < intAt(ctx, keyPlayers) {
		next := p.player + 1
		ctx.SetActivePlayer(next)
		return pick{player: next}
	}
	return scoring{}
}

// scoring has no options: the engine advances it automatically.
type scoring struct{}

func (scoring) Options(game.Context) []string { return nil }

func (scoring) Apply(_ string, ctx game.Context) game.State {
	winner := intAt(ctx, keySum)%intAt(ctx, keyPlayers) + 1
	ctx.SetWinner(winner)
	ctx.Log(fmt.Sprintf("Player %d wins.", winner))
	return nil
}

func intAt(ctx game.Context, key string) int {
	value, ok := ctx.Get(key)
	if !ok {
		return 0
	}
	return value.(int)
}
