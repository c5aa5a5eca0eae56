package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/usecase"
)

const localGameID = "local"

const (
	colorX     = termenv.ANSIBlue
	colorO     = termenv.ANSICyan
	colorEvict = termenv.ANSIRed
)

// Console - hot-seat game on a terminal. Both players share one keyboard.
type Console struct {
	in     *bufio.Scanner
	output *termenv.Output

	game *entity.Game
}

func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		output: termenv.NewOutput(out, opts...),
		game:   entity.NewGame(localGameID),
	}
}

// Run - asks for names, then plays until the input ends or a player quits.
func (that *Console) Run() error {
	player1, player2, ok := that.readNames()
	if !ok {
		return that.in.Err()
	}

	that.game.SetPlayerNames(player1, player2)

	for {
		that.printf("\n%s\n", that.Render())

		line, ok := that.prompt("Cell 1-9, r to reset, q to quit: ")
		if !ok {
			return that.in.Err()
		}

		switch strings.ToLower(line) {
		case "q":
			return nil
		case "r":
			that.game.Reset()
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil || cell < 1 || cell > entity.BoardSize {
			that.printf("Enter a number from 1 to %d\n", entity.BoardSize)
			continue
		}

		that.game.PlaceMarker(cell - 1)
	}
}

func (that *Console) readNames() (string, string, bool) {
	for {
		player1, ok := that.prompt("Player 1 (X) name: ")
		if !ok {
			return "", "", false
		}

		player2, ok := that.prompt("Player 2 (O) name: ")
		if !ok {
			return "", "", false
		}

		player1, player2, err := usecase.ValidatePlayerNames(player1, player2)
		if err == nil {
			return player1, player2, true
		}

		that.printf("%s\n", that.output.String(capitalize(err.Error())).Foreground(colorEvict))
	}
}

// Render - player panels, the board with the next evicted marker in red and the status line.
func (that *Console) Render() string {
	var builder strings.Builder

	builder.WriteString(that.playerPanel(entity.PlayerX, colorX))
	builder.WriteString("    ")
	builder.WriteString(that.playerPanel(entity.PlayerO, colorO))
	builder.WriteString("\n\n")

	nextToEvict, _ := that.game.NextToEvict()

	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				builder.WriteString("|")
			}

			index := row*3 + col
			builder.WriteString(that.renderCell(index, index == nextToEvict))
		}

		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(that.output.String(that.game.StatusMessage()).Bold().String())

	return builder.String()
}

func (that *Console) renderCell(index int, evictNext bool) string {
	cell := that.game.Board[index]

	if cell.IsEmpty() {
		return " " + that.output.String(strconv.Itoa(index+1)).Faint().String() + " "
	}

	style := that.output.String(string(cell.Value)).Bold()
	switch {
	case evictNext:
		return "[" + style.Foreground(colorEvict).String() + "]"
	case cell.Value == entity.PlayerX:
		return " " + style.Foreground(colorX).String() + " "
	default:
		return " " + style.Foreground(colorO).String() + " "
	}
}

func (that *Console) playerPanel(mark entity.Marker, color termenv.Color) string {
	label := fmt.Sprintf("%s (%s) %d/%d", that.game.PlayerName(mark), mark, len(that.markersOf(mark)), entity.MaxMarkers)

	style := that.output.String(label).Foreground(color)
	if that.game.CurrentPlayer == mark && !that.game.GameOver {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *Console) markersOf(mark entity.Marker) []int {
	if mark == entity.PlayerX {
		return that.game.XMoves
	}
	return that.game.OMoves
}

func (that *Console) prompt(text string) (string, bool) {
	that.printf("%s", text)

	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.output, format, args...)
}

func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}

	return string(unicode.ToUpper(r)) + text[size:]
}
