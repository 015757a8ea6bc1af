// Package output renders positions and game records as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// BoardRenderer draws a board as rows of three-character cells, rank 8
// at the top unless flipped.
type BoardRenderer struct {
	cfg *config.DisplayConfig

	light     *color.Color
	dark      *color.Color
	highlight *color.Color
	label     *color.Color
}

// NewBoardRenderer creates a renderer for the given display settings.
func NewBoardRenderer(cfg *config.DisplayConfig) *BoardRenderer {
	r := &BoardRenderer{
		cfg:       cfg,
		light:     color.New(color.FgBlack, color.BgWhite),
		dark:      color.New(color.FgBlack, color.BgHiBlack),
		highlight: color.New(color.FgBlack, color.BgYellow),
		label:     color.New(color.Bold),
	}
	for _, c := range []*color.Color{r.light, r.dark, r.highlight, r.label} {
		if cfg.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the board, marking the highlighted squares, followed by
// a line naming the side to move.
func (r *BoardRenderer) Render(w io.Writer, board chess.Board, toMove chess.Colour, highlights []chess.Square) error {
	marked := make(map[chess.Square]bool, len(highlights))
	for _, sq := range highlights {
		marked[sq] = true
	}

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		row := i
		if r.cfg.Flip {
			row = chess.BoardSize - 1 - i
		}
		if r.cfg.Coordinates {
			sb.WriteString(fmt.Sprintf("%c ", chess.Sq(row, 0).Rank()))
		}
		for j := 0; j < chess.BoardSize; j++ {
			col := j
			if r.cfg.Flip {
				col = chess.BoardSize - 1 - j
			}
			sq := chess.Sq(row, col)
			sb.WriteString(r.cell(board.Get(sq), sq, marked[sq]))
		}
		sb.WriteByte('\n')
	}
	if r.cfg.Coordinates {
		sb.WriteString("  ")
		for j := 0; j < chess.BoardSize; j++ {
			col := j
			if r.cfg.Flip {
				col = chess.BoardSize - 1 - j
			}
			sb.WriteString(fmt.Sprintf(" %c ", chess.Sq(0, col).File()))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(r.label.Sprintf("%v to move", toMove))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one square. Without colours a highlighted square is
// bracketed instead of shaded.
func (r *BoardRenderer) cell(piece chess.Piece, sq chess.Square, marked bool) string {
	letter := string(piece.Letter())
	if !r.cfg.Colour {
		if marked {
			return "[" + letter + "]"
		}
		return " " + letter + " "
	}

	if piece.IsEmpty() {
		letter = " "
	}
	text := " " + letter + " "
	switch {
	case marked:
		return r.highlight.Sprint(text)
	case (sq.Row+sq.Col)%2 == 0:
		return r.light.Sprint(text)
	default:
		return r.dark.Sprint(text)
	}
}
