package console

import (
	"ctchen222/nxn-tictactoe/internal/game"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RenderBoard writes b row by row, each cell padded to the width of the
// largest slot number.
func RenderBoard(w io.Writer, b *game.Board) {
	size := b.Size()
	width := len(strconv.Itoa(size * size))
	border := strings.Repeat("_", size*(width+2))

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for _, row := range b.Strings() {
		for _, cell := range row {
			fmt.Fprintf(&sb, "|%*s|", width, cell)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteByte('\n')
	io.WriteString(w, sb.String())
}

func (s *Shell) render(b *game.Board) {
	RenderBoard(s.out, b)
}
