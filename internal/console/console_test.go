package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, termenv.WithProfile(termenv.Ascii)), &out
}

func TestConsole_Render(t *testing.T) {
	t.Run("Empty board shows cell numbers", func(t *testing.T) {
		// Given: a fresh game with names
		console, _ := newTestConsole("")
		console.game.SetPlayerNames("Alice", "Bob")

		// When: the board is rendered
		rendered := console.Render()

		// Then: every cell shows its number
		assert.Equal(t, strings.Join([]string{
			"Alice (X) 0/3    Bob (O) 0/3",
			"",
			" 1 | 2 | 3 ",
			"---+---+---",
			" 4 | 5 | 6 ",
			"---+---+---",
			" 7 | 8 | 9 ",
			"",
			"Player X's turn",
		}, "\n"), rendered)
	})

	t.Run("Next evicted marker is bracketed", func(t *testing.T) {
		// Given: both players at three markers
		console, _ := newTestConsole("")
		console.game.SetPlayerNames("Alice", "Bob")
		for _, cell := range []int{0, 3, 1, 4, 5, 2} {
			console.game.PlaceMarker(cell)
		}

		// When: the board is rendered
		rendered := console.Render()

		// Then: X's oldest marker is marked
		assert.Contains(t, rendered, "[X]| X | O \n")
		assert.Contains(t, rendered, " O | O | X \n")
		assert.Contains(t, rendered, "Alice (X) 3/3    Bob (O) 3/3")
	})
}

func TestConsole_Run(t *testing.T) {
	t.Run("Invalid names are asked again", func(t *testing.T) {
		// Given: equal names first, then valid ones
		console, out := newTestConsole("Alice\nAlice\nAlice\nBob\nq\n")

		// When: the console runs
		require.NoError(t, console.Run())

		// Then: the error is shown and the valid names are used
		assert.Contains(t, out.String(), "Players must have different names")
		assert.Equal(t, "Alice", console.game.Player1Name)
		assert.Equal(t, "Bob", console.game.Player2Name)
	})

	t.Run("Cells are one based", func(t *testing.T) {
		// Given: X plays the top row
		console, out := newTestConsole("Alice\nBob\n1\n4\n2\n5\n3\nq\n")

		// When: the console runs
		require.NoError(t, console.Run())

		// Then: X wins with cells 0, 1 and 2
		assert.Equal(t, "X", console.game.Winner)
		assert.Equal(t, []int{0, 1, 2}, console.game.XMoves)
		assert.Contains(t, out.String(), "Player X wins!")
	})

	t.Run("Bad input is reported and ignored", func(t *testing.T) {
		// Given: out of range and non numeric input
		console, out := newTestConsole("Alice\nBob\n0\n10\nabc\nq\n")

		// When: the console runs
		require.NoError(t, console.Run())

		// Then: nothing was placed
		assert.Equal(t, 3, strings.Count(out.String(), "Enter a number from 1 to 9"))
		assert.Zero(t, console.game.MoveCount)
	})

	t.Run("Reset keeps the names", func(t *testing.T) {
		// Given: a move and then a reset
		console, _ := newTestConsole("Alice\nBob\n5\nr\nq\n")

		// When: the console runs
		require.NoError(t, console.Run())

		// Then: the board is empty and the names remain
		assert.Zero(t, console.game.MoveCount)
		assert.Equal(t, entity.PlayerX, console.game.CurrentPlayer)
		assert.Equal(t, "Bob", console.game.Player2Name)
	})

	t.Run("End of input stops the game", func(t *testing.T) {
		console, _ := newTestConsole("Alice\n")

		require.NoError(t, console.Run())
		assert.False(t, console.game.HasPlayers())
	})
}
