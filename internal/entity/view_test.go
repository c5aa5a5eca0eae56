package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameView(t *testing.T) {
	t.Run("Fresh game has nothing to highlight", func(t *testing.T) {
		// When: a view of a new game is built
		view := NewGameView(NewGame("g1"))

		// Then: no cell is marked for eviction
		assert.Equal(t, -1, view.NextToEvict)
		assert.Equal(t, "Player X's turn", view.Status)
		assert.Len(t, view.Rules, 4)
	})

	t.Run("Full queue highlights the oldest marker", func(t *testing.T) {
		// Given: both players have three markers
		game := play(NewGame("g1"), 0, 3, 1, 4, 5, 2)

		// When: the view is built
		view := NewGameView(game)

		// Then: X's oldest marker is highlighted
		assert.Equal(t, 0, view.NextToEvict)
	})

	t.Run("Game fields are flattened into the JSON", func(t *testing.T) {
		// Given: a game with one move
		game := play(NewGame("g1"), 4)

		// When: the view is encoded
		raw, err := json.Marshal(NewGameView(game))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))

		// Then: snapshot and derived fields sit side by side
		assert.Equal(t, "g1", decoded["id"])
		assert.Equal(t, "O", decoded["current_player"])
		assert.Equal(t, "Player O's turn", decoded["status"])
		assert.InDelta(t, -1, decoded["next_to_evict"], 0)
		assert.Contains(t, decoded, "rules")
	})
}
