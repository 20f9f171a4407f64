package console

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	cellSeparator = "|"
	rowSeparator  = "----"
)

// BoardRenderer turns a game board into printable text.
type BoardRenderer struct {
	au aurora.Aurora
}

func NewBoardRenderer(colors bool) *BoardRenderer {
	return &BoardRenderer{
		au: aurora.NewAurora(colors),
	}
}

// Render - draws the header of column numbers, one line per row prefixed by
// its letter, and a separator line between rows. Every line ends with a newline.
func (that *BoardRenderer) Render(game *entity.Game) string {
	var sb strings.Builder

	columns := make([]string, game.Size)
	for i := range columns {
		columns[i] = strconv.Itoa(i + 1)
	}
	sb.WriteString("   " + strings.Join(columns, "   ") + "\n")

	letters := game.RowLetters()
	cells := make([]string, game.Size)
	for i, row := range game.Board {
		for j, mark := range row {
			cells[j] = that.cell(mark)
		}
		sb.WriteString(string(letters[i]) + " " + strings.Join(cells, cellSeparator) + "\n")

		if i != game.Size-1 {
			sb.WriteString("  " + strings.Repeat(rowSeparator, game.Size) + "\n")
		}
	}

	return sb.String()
}

func (that *BoardRenderer) cell(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return " " + that.au.Red("X").String() + " "
	case entity.MarkO:
		return " " + that.au.Blue("0").String() + " "
	default:
		return "   "
	}
}
