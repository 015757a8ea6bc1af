package engine

import (
	"math/rand"
	"testing"

	dt "github.com/dylhunn/dragontoothmg"
	oracle "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// Cross-checks against two independent move generators. Promotions are
// compared by squares only, since this engine always promotes to a queen.

func dtPerft(b *dt.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestOracle_PerftMatchesDragontooth(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		board := dt.ParseFen(dt.Startpos)
		want := dtPerft(&board, depth)
		if got := Perft(NewPosition(), depth); got != want {
			t.Errorf("Perft(%d) = %d; dragontoothmg says %d", depth, got, want)
		}
	}
}

func TestOracle_DivideMatchesDragontooth(t *testing.T) {
	board := dt.ParseFen(dt.Startpos)
	want := map[string]uint64{}
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		want[m.String()] = dtPerft(&board, 1)
		unapply()
	}

	p := NewPosition()
	got := map[string]uint64{}
	for _, m := range p.LegalMoves() {
		p.Apply(m)
		got[m.Notation()] = Perft(p, 1)
		p.Revert()
	}
	testutil.AssertEqual(t, got, want)
}

// castleCompareUnsafe reports whether an enemy pawn stands on the row in
// front of the mover's home row. A pawn there attacks the king's transit
// squares diagonally without having a move onto them, and can push onto
// them without attacking them.
func castleCompareUnsafe(p *Position) bool {
	mover := p.ToMove()
	row := chess.HomeRow(mover) + chess.PawnDirection(mover)
	enemyPawn := chess.MakePiece(mover.Opposite(), chess.Pawn)
	for col := 0; col < chess.BoardSize; col++ {
		if p.PieceAt(chess.Sq(row, col)) == enemyPawn {
			return true
		}
	}
	return false
}

var castleNotations = []string{"e1g1", "e1c1", "e8g8", "e8c8"}

func engineMoveSet(moves []chess.Move, skipCastles bool) []string {
	set := map[string]bool{}
	for _, m := range moves {
		if skipCastles && m.IsCastle() {
			continue
		}
		set[m.Notation()] = true
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

func oracleMoveSet(game *oracle.Game, p *Position, skipCastles bool) []string {
	set := map[string]bool{}
	for _, m := range game.ValidMoves() {
		n := m.String()[:4]
		if skipCastles && slices.Contains(castleNotations, n) &&
			p.PieceAt(chess.MustParseSquare(n[:2])).Kind() == chess.King {
			continue
		}
		set[n] = true
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

// oracleMove finds the oracle's version of m, taking the queen when m is
// a promotion.
func oracleMove(game *oracle.Game, m chess.Move) *oracle.Move {
	want := m.Notation()
	if m.IsPromotion() {
		want += "q"
	}
	for _, om := range game.ValidMoves() {
		if om.String() == want {
			return om
		}
	}
	return nil
}

func TestOracle_RandomGamesMatchNotnil(t *testing.T) {
	const (
		games    = 25
		maxPlies = 120
	)
	rng := rand.New(rand.NewSource(20240611))

	for g := 0; g < games; g++ {
		p := NewPosition()
		game := oracle.NewGame()

		for ply := 0; ply < maxPlies && game.Outcome() == oracle.NoOutcome; ply++ {
			moves := p.LegalMoves()
			skip := castleCompareUnsafe(p)
			got := engineMoveSet(moves, skip)
			want := oracleMoveSet(game, p, skip)
			if !slices.Equal(got, want) {
				t.Fatalf("game %d ply %d after %v:\nengine %v\noracle %v",
					g, ply, notations(p.MoveLog()), got, want)
			}
			if len(moves) == 0 {
				break
			}

			m := moves[rng.Intn(len(moves))]
			om := oracleMove(game, m)
			if om == nil {
				t.Fatalf("game %d ply %d: oracle has no move %v", g, ply, m)
			}
			if err := game.Move(om); err != nil {
				t.Fatalf("game %d ply %d: oracle rejected %v: %v", g, ply, m, err)
			}
			p.Apply(m)
		}

		// Outcomes agree when the game ended by mate or stalemate.
		switch game.Method() {
		case oracle.Checkmate:
			p.LegalMoves()
			if !p.Checkmate() {
				t.Errorf("game %d: oracle reports checkmate after %v", g, notations(p.MoveLog()))
			}
		case oracle.Stalemate:
			p.LegalMoves()
			if !p.Stalemate() {
				t.Errorf("game %d: oracle reports stalemate after %v", g, notations(p.MoveLog()))
			}
		}
	}
}
