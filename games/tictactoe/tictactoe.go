// Package tictactoe is the classic 3x3 marking game on top of the generic
// state contract. The board lives in the scoped store as a value type, so
// every move stores a fresh copy and undo falls out of the history tree.
package tictactoe

import (
	"fmt"
	"strconv"

	"turnbase/game"
)

const keyBoard = "board"

// Board maps cell index 0..8 to the player id that marked it, 0 for free.
type Board [9]int

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// NewGame returns the initial state. It has zero options, so the engine
// immediately auto-advances it into player 1's first turn.
func NewGame() game.State { return setup{} }

type setup struct{}

func (setup) Options(game.Context) []string { return nil }

func (setup) Apply(_ string, ctx game.Context) game.State {
	ctx.Set(keyBoard, Board{})
	ctx.SetActivePlayer(1)
	ctx.Log("New game, player 1 to move.")
	return turn{player: 1}
}

// turn is one player's move. Options are the free cells; with a single free
// cell left the move is forced and plays itself.
type turn struct {
	player int
}

func (t turn) Options(ctx game.Context) []string {
	board := BoardAt(ctx)
	options := make([]string, 0, len(board))
	for cell, mark := range board {
		if mark == 0 {
			options = append(options, strconv.Itoa(cell))
		}
	}
	return options
}

func (t turn) Apply(input string, ctx game.Context) game.State {
	cell, err := strconv.Atoi(input)
	if err != nil || cell < 0 || cell > 8 {
		return nil
	}
	board := BoardAt(ctx)
	board[cell] = t.player
	ctx.Set(keyBoard, board)
	ctx.Log(fmt.Sprintf("Player %d marks cell %d.", t.player, cell))

	if board.winFor(t.player) {
		ctx.SetWinner(t.player)
		ctx.Log(fmt.Sprintf("Player %d wins.", t.player))
		return nil
	}
	if board.full() {
		ctx.Log("Draw.")
		return nil
	}
	next := 3 - t.player
	ctx.SetActivePlayer(next)
	return turn{player: next}
}

// BoardAt reads the board visible from the given context.
func BoardAt(ctx game.Context) Board {
	value, ok := ctx.Get(keyBoard)
	if !ok {
		return Board{}
	}
	return value.(Board)
}

func (b Board) winFor(player int) bool {
	for _, line := range lines {
		if b[line[0]] == player && b[line[1]] == player && b[line[2]] == player {
			return true
		}
	}
	return false
}

func (b Board) full() bool {
	for _, mark := range b {
		if mark == 0 {
			return false
		}
	}
	return true
}
