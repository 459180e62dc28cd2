package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const emptyMarker = "."

type Markers struct {
	PlayerOne string
	PlayerTwo string
}

func (that Markers) For(token entity.Token) string {
	switch token {
	case entity.TokenPlayerOne:
		return that.PlayerOne
	case entity.TokenPlayerTwo:
		return that.PlayerTwo
	default:
		return emptyMarker
	}
}

// renderBoard - draws the board with row and column indices on the edges.
func renderBoard(w io.Writer, board [][]entity.Token, markers Markers) error {
	labelWidth := len(strconv.Itoa(len(board) - 1))

	cellWidth := labelWidth
	for _, marker := range []string{markers.PlayerOne, markers.PlayerTwo, emptyMarker} {
		cellWidth = max(cellWidth, len(marker))
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	for column := range board {
		fmt.Fprintf(&sb, " %*d", cellWidth, column)
	}
	sb.WriteByte('\n')

	for row, cells := range board {
		fmt.Fprintf(&sb, "%*d ", labelWidth, row)
		for _, token := range cells {
			fmt.Fprintf(&sb, " %*s", cellWidth, markers.For(token))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}
