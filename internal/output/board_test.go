package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func plainDisplay() *config.DisplayConfig {
	return &config.DisplayConfig{Colour: false, Coordinates: true}
}

func render(t *testing.T, cfg *config.DisplayConfig, toMove chess.Colour, highlights ...chess.Square) string {
	t.Helper()
	var buf bytes.Buffer
	err := NewBoardRenderer(cfg).Render(&buf, chess.InitialBoard(), toMove, highlights)
	testutil.AssertNoError(t, err)
	return buf.String()
}

func TestRender_InitialPlain(t *testing.T) {
	got := render(t, plainDisplay(), chess.White)
	want := strings.Join([]string{
		"8  r  n  b  q  k  b  n  r ",
		"7  p  p  p  p  p  p  p  p ",
		"6  .  .  .  .  .  .  .  . ",
		"5  .  .  .  .  .  .  .  . ",
		"4  .  .  .  .  .  .  .  . ",
		"3  .  .  .  .  .  .  .  . ",
		"2  P  P  P  P  P  P  P  P ",
		"1  R  N  B  Q  K  B  N  R ",
		"   a  b  c  d  e  f  g  h ",
		"White to move",
		"",
	}, "\n")
	testutil.AssertEqual(t, got, want)
}

func TestRender_Flipped(t *testing.T) {
	cfg := plainDisplay()
	cfg.Flip = true
	lines := strings.Split(render(t, cfg, chess.Black), "\n")

	testutil.AssertEqual(t, lines[0], "1  R  N  B  K  Q  B  N  R ")
	testutil.AssertEqual(t, lines[7], "8  r  n  b  k  q  b  n  r ")
	testutil.AssertEqual(t, lines[8], "   h  g  f  e  d  c  b  a ")
	testutil.AssertEqual(t, lines[9], "Black to move")
}

func TestRender_NoCoordinates(t *testing.T) {
	cfg := &config.DisplayConfig{}
	lines := strings.Split(render(t, cfg, chess.White), "\n")
	testutil.AssertEqual(t, lines[0], " r  n  b  q  k  b  n  r ")
	testutil.AssertEqual(t, lines[8], "White to move")
}

func TestRender_Highlights(t *testing.T) {
	got := render(t, plainDisplay(), chess.White, chess.MustParseSquare("e3"), chess.MustParseSquare("e4"))
	lines := strings.Split(got, "\n")
	testutil.AssertEqual(t, lines[4], "4  .  .  .  . [.] .  .  . ")
	testutil.AssertEqual(t, lines[5], "3  .  .  .  . [.] .  .  . ")
}

func TestRender_Colour(t *testing.T) {
	cfg := &config.DisplayConfig{Colour: true, Coordinates: true}
	got := render(t, cfg, chess.White, chess.MustParseSquare("e4"))
	testutil.AssertContains(t, got, "\x1b[")
	testutil.AssertContains(t, got, "White to move")
	// Empty squares are blank in colour mode.
	testutil.AssertNotContains(t, got, " . ")
}
