package entity

// Rules - the rule lines shown next to the board.
var Rules = []string{
	"Each player can only have a maximum of 3 markers on the board at any time.",
	"When you place a 4th marker, your oldest marker will be automatically removed.",
	"The marker that will be removed next is highlighted in red.",
	"The first player to get 3 of their markers in a row (horizontally, vertically, or diagonally) wins.",
}

// GameView - what clients render: the game plus the status line, the cell to highlight and the rules.
type GameView struct {
	*Game

	Status      string   `json:"status"`
	NextToEvict int      `json:"next_to_evict"`
	Rules       []string `json:"rules"`
}

func NewGameView(game *Game) *GameView {
	nextToEvict, _ := game.NextToEvict()

	return &GameView{
		Game:        game,
		Status:      game.StatusMessage(),
		NextToEvict: nextToEvict,
		Rules:       Rules,
	}
}
