package entity

import "fmt"

type Marker string

const (
	PlayerX Marker = "X"
	PlayerO Marker = "O"

	NoMarker Marker = ""
)

const (
	WinnerDraw = "DRAW"
	NoWinner   = ""
)

const (
	BoardSize  = 9
	MaxMarkers = 3
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other marker.
func (that Marker) Opponent() Marker {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Cell - a single board square. PlacementID is the move number that filled it, 0 when empty.
type Cell struct {
	Value       Marker `json:"value"`
	PlacementID int    `json:"id"`
}

func (that Cell) IsEmpty() bool {
	return that.Value == NoMarker
}

type Board [BoardSize]Cell

// Game - state of a single round. Only PlaceMarker, Reset and SetPlayerNames change it.
type Game struct {
	ID            string `json:"id"`
	Board         Board  `json:"board"`
	CurrentPlayer Marker `json:"current_player"`
	XMoves        []int  `json:"x_moves"`
	OMoves        []int  `json:"o_moves"`
	Winner        string `json:"winner"`
	GameOver      bool   `json:"game_over"`
	MoveCount     int    `json:"move_count"`
	Player1Name   string `json:"player1_name"`
	Player2Name   string `json:"player2_name"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:            id,
		CurrentPlayer: PlayerX,
		XMoves:        []int{},
		OMoves:        []int{},
	}
}

// PlaceMarker - puts the current player's marker on the cell, evicting that player's oldest
// marker first when three are already on the board. Calls on a finished game, an occupied cell
// or an index outside the board leave the state untouched.
func (that *Game) PlaceMarker(index int) {
	if that.GameOver || index < 0 || index >= BoardSize || !that.Board[index].IsEmpty() {
		return
	}

	that.MoveCount++

	moves := that.movesOf(that.CurrentPlayer)
	if len(moves) >= MaxMarkers {
		oldest := moves[0]
		moves = moves[1:]
		that.Board[oldest] = Cell{}
	}

	// fresh backing array so clones never share queue storage
	queue := make([]int, 0, MaxMarkers)
	queue = append(queue, moves...)
	queue = append(queue, index)
	that.setMovesOf(that.CurrentPlayer, queue)

	that.Board[index] = Cell{Value: that.CurrentPlayer, PlacementID: that.MoveCount}

	that.UpdateGameState()

	// the turn flips even when this move ended the game
	that.CurrentPlayer = that.CurrentPlayer.Opponent()
}

// DetermineGameResult - returns the winning marker, WinnerDraw, or NoWinner while the game goes on.
func (that *Game) DetermineGameResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if !a.IsEmpty() && a.Value == b.Value && b.Value == c.Value {
			return string(a.Value)
		}
	}

	for _, cell := range that.Board {
		if cell.IsEmpty() {
			return NoWinner
		}
	}

	return WinnerDraw
}

func (that *Game) UpdateGameState() {
	that.Winner = that.DetermineGameResult()
	that.GameOver = that.Winner != NoWinner
}

// Reset - starts a new round. Only the session id and the player names survive.
func (that *Game) Reset() {
	next := NewGame(that.ID)
	next.Player1Name = that.Player1Name
	next.Player2Name = that.Player2Name

	*that = *next
}

func (that *Game) SetPlayerNames(player1, player2 string) {
	that.Player1Name = player1
	that.Player2Name = player2
}

// NextToEvict - returns the cell that the current player's next placement will clear.
func (that *Game) NextToEvict() (int, bool) {
	moves := that.movesOf(that.CurrentPlayer)
	if len(moves) < MaxMarkers {
		return -1, false
	}

	return moves[0], true
}

func (that *Game) PlayerName(mark Marker) string {
	switch mark {
	case PlayerX:
		return that.Player1Name
	case PlayerO:
		return that.Player2Name
	default:
		return ""
	}
}

func (that *Game) HasPlayers() bool {
	return that.Player1Name != "" && that.Player2Name != ""
}

func (that *Game) StatusMessage() string {
	switch that.Winner {
	case WinnerDraw:
		return "It's a draw!"
	case NoWinner:
		return fmt.Sprintf("Player %s's turn", that.CurrentPlayer)
	default:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	}
}

func (that *Game) Clone() *Game {
	clone := *that
	clone.XMoves = append(make([]int, 0, MaxMarkers), that.XMoves...)
	clone.OMoves = append(make([]int, 0, MaxMarkers), that.OMoves...)

	return &clone
}

func (that *Game) movesOf(mark Marker) []int {
	if mark == PlayerX {
		return that.XMoves
	}
	return that.OMoves
}

func (that *Game) setMovesOf(mark Marker, moves []int) {
	if mark == PlayerX {
		that.XMoves = moves
		return
	}
	that.OMoves = moves
}
