package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Renderer prints the board and score state. It never mutates the game.
type Renderer struct {
	out io.Writer
	au  aurora.Aurora
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

func (that *Renderer) Println(args ...any) {
	fmt.Fprintln(that.out, args...)
}

func (that *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

// RenderBoard - prints the 3x3 grid. Free squares show their 1..9 number so
// the player knows what to type.
func (that *Renderer) RenderBoard(game *entity.Game) {
	fmt.Fprintln(that.out)

	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.out, " %s | %s | %s\n",
			that.cell(game, row*3),
			that.cell(game, row*3+1),
			that.cell(game, row*3+2),
		)

		if row < 2 {
			fmt.Fprintln(that.out, "---+---+---")
		}
	}

	fmt.Fprintln(that.out)
}

func (that *Renderer) cell(game *entity.Game, idx int) string {
	mark := game.Board[idx]
	if mark == entity.EmptyCell {
		return that.au.Faint(strconv.Itoa(idx + 1)).String()
	}

	if player, err := game.PlayerByMark(mark); err == nil && player.IsBot() {
		return that.au.Red(mark).String()
	}

	return that.au.Green(mark).String()
}

// RenderScoreboard - prints round number and both players' scores.
func (that *Renderer) RenderScoreboard(game *entity.Game) {
	fmt.Fprintf(that.out, "Round %d (first to %d wins)\n", game.Round, game.WinTarget)

	for _, player := range game.Players {
		fmt.Fprintf(that.out, "  %s (%s): %d\n", player.Name, player.Mark, player.Score)
	}
}

// RenderRoundResult - announces how the round ended.
func (that *Renderer) RenderRoundResult(game *entity.Game) {
	if game.RoundWinner == entity.TieMark {
		fmt.Fprintln(that.out, that.au.Yellow("It's a tie!"))
		return
	}

	winner, err := game.PlayerByMark(game.RoundWinner)
	if err != nil {
		return
	}

	fmt.Fprintf(that.out, "%s wins the round!\n", that.au.Bold(winner.Name))
}

// RenderGameResult - announces the match winner and the final score.
func (that *Renderer) RenderGameResult(game *entity.Game) {
	winner, err := game.PlayerByMark(game.Winner)
	if err != nil {
		return
	}

	fmt.Fprintf(that.out, "%s\n", that.au.Bold(fmt.Sprintf("%s wins the game!", winner.Name)))

	for _, player := range game.Players {
		fmt.Fprintf(that.out, "  %s (%s): %d\n", player.Name, player.Mark, player.Score)
	}
}
