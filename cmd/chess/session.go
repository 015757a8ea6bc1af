package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/processing"
)

const helpText = `  e2e4          play a move in coordinate notation
  moves [sq]    list legal moves, optionally only those from sq
  undo, z       take back the last move
  new, r        start a new game
  board, b      print the board
  log           print the moves played so far
  stats         count captures, checks and repetitions in this game
  validate M..  check a move list from the start without playing it
  perft N       count leaf nodes N plies deep
  divide N      perft split by root move
  help, ?       show this text
  quit, q       leave
`

// Session holds one interactive game and the tools around it.
type Session struct {
	cfg      *config.Config
	pos      *engine.Position
	renderer *output.BoardRenderer
	cache    *hashing.PerftCache
}

// NewSession starts a session on the initial position.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		cfg:      cfg,
		pos:      engine.NewPosition(),
		renderer: output.NewBoardRenderer(cfg.Display),
	}
	if cfg.Perft.UseCache {
		s.cache = hashing.NewPerftCache(cfg.Perft.CacheCapacity)
	}
	return s
}

// Position returns the current game position.
func (s *Session) Position() *engine.Position {
	return s.pos
}

// Load replaces the game with the position reached by playing moves
// from the start. The current game is kept if a move is illegal.
func (s *Session) Load(moves []string) error {
	pos, err := processing.ReplayMoves(moves)
	if err != nil {
		return err
	}
	s.pos = pos
	s.cfg.Logf(config.GameEvents, "Loaded %d moves\n", pos.Ply())
	return nil
}

// Run reads commands line by line until quit, end of input or ctx is
// cancelled. Command errors are reported and the session continues.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.cfg.Logf(config.GameEvents, "New game\n")
	if err := s.printBoard(nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		quit, err := s.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.cfg.OutputFile, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line. It returns quit=true for the quit
// command.
func (s *Session) Execute(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(s.cfg.OutputFile, helpText)
	case "board", "b":
		err = s.printBoard(nil)
	case "new", "r":
		err = s.newGame()
	case "undo", "z":
		err = s.undo()
	case "log":
		_, err = fmt.Fprintln(s.cfg.OutputFile, output.MoveLogText(s.pos.MoveLog()))
	case "stats":
		err = s.stats()
	case "validate":
		err = s.validate(args)
	case "moves":
		err = s.moves(args)
	case "perft":
		err = s.perft(args)
	case "divide":
		err = s.divide(ctx, args)
	default:
		if !looksLikeMove(cmd) {
			return false, errors.Wrapf(errors.ErrUnknownCommand, "%q", line)
		}
		err = s.play(cmd)
	}
	return false, err
}

// looksLikeMove reports whether text has the shape of coordinate notation.
func looksLikeMove(text string) bool {
	if len(text) != 4 && len(text) != 5 {
		return false
	}
	_, err1 := chess.ParseSquare(text[:2])
	_, err2 := chess.ParseSquare(text[2:4])
	return err1 == nil && err2 == nil
}

func (s *Session) play(text string) error {
	if err := s.pos.Play(text); err != nil {
		return err
	}
	last, _ := s.pos.LastMove()
	s.cfg.Logf(config.EveryMove, "%d. %v %s\n", (s.pos.Ply()+1)/2, last.Moved().Colour(), last.Notation())

	if err := s.printBoard(nil); err != nil {
		return err
	}
	return s.reportState()
}

// reportState prints the outcome once the game is over, or the legal
// moves when asked to show them.
func (s *Session) reportState() error {
	moves := s.pos.LegalMoves()
	if text := output.OutcomeText(s.pos.Outcome(), s.pos.ToMove()); text != "" {
		s.cfg.Logf(config.GameEvents, "%s after %s\n", text, output.MoveLogText(s.pos.MoveLog()))
		_, err := fmt.Fprintln(s.cfg.OutputFile, text)
		return err
	}
	if s.pos.InCheck() {
		if _, err := fmt.Fprintln(s.cfg.OutputFile, "Check"); err != nil {
			return err
		}
	}
	if s.cfg.Display.ShowMoves {
		_, err := fmt.Fprintf(s.cfg.OutputFile, "Legal moves: %s\n", output.MovesText(moves))
		return err
	}
	return nil
}

func (s *Session) printBoard(highlights []chess.Square) error {
	return s.renderer.Render(s.cfg.OutputFile, s.pos.Board(), s.pos.ToMove(), highlights)
}

func (s *Session) newGame() error {
	s.pos = engine.NewPosition()
	s.cfg.Logf(config.GameEvents, "New game\n")
	return s.printBoard(nil)
}

func (s *Session) undo() error {
	last, ok := s.pos.LastMove()
	if !ok {
		_, err := fmt.Fprintln(s.cfg.OutputFile, "Nothing to undo")
		return err
	}
	s.pos.Revert()
	s.cfg.Logf(config.GameEvents, "Took back %s\n", last.Notation())
	return s.printBoard(nil)
}

func (s *Session) stats() error {
	log := s.pos.MoveLog()
	moves := make([]string, len(log))
	for i, m := range log {
		moves[i] = m.Notation()
	}
	_, analysis, err := processing.AnalyzeMoves(moves)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.cfg.OutputFile, analysis.String())
	return err
}

// validate replays a move list from the initial position and reports the
// first illegal ply. The game in progress is left alone.
func (s *Session) validate(args []string) error {
	moves := processing.SplitMoveText(strings.Join(args, " "))
	if len(moves) == 0 {
		return errors.Wrap(errors.ErrUnknownCommand, "expected moves to validate")
	}
	result := processing.ValidateMoves(moves)
	if result.Valid {
		_, err := fmt.Fprintf(s.cfg.OutputFile, "valid: %d moves\n", len(moves))
		return err
	}
	s.cfg.Logf(config.GameEvents, "Validation failed at ply %d: %s\n", result.ErrorPly, result.ErrorMsg)
	_, err := fmt.Fprintf(s.cfg.OutputFile, "invalid at ply %d: %s\n", result.ErrorPly, result.ErrorMsg)
	return err
}

func (s *Session) moves(args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(s.cfg.OutputFile, output.MovesText(s.pos.LegalMoves()))
		return err
	}

	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	moves := s.pos.LegalMovesFrom(sq)
	targets := make([]chess.Square, len(moves))
	for i, m := range moves {
		targets[i] = m.End()
	}
	if err := s.printBoard(targets); err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.cfg.OutputFile, output.MovesText(moves))
	return err
}

func (s *Session) parseDepth(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Wrap(errors.ErrUnknownCommand, "expected one depth argument")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(errors.ErrUnknownCommand, "bad depth %q", args[0])
	}
	if err := s.cfg.Perft.CheckDepth(depth); err != nil {
		return 0, err
	}
	return depth, nil
}

func (s *Session) perft(args []string) error {
	depth, err := s.parseDepth(args)
	if err != nil {
		return err
	}

	start := time.Now()
	var nodes uint64
	if s.cache != nil {
		nodes = engine.CachedPerft(s.pos, depth, s.cache)
	} else {
		nodes = engine.Perft(s.pos, depth)
	}
	s.noteCacheFull()
	_, err = fmt.Fprintf(s.cfg.OutputFile, "perft(%d) = %d (%v)\n", depth, nodes, time.Since(start).Round(time.Millisecond))
	return err
}

// noteCacheFull logs when the perft cache has stopped accepting entries.
func (s *Session) noteCacheFull() {
	if s.cache != nil && s.cache.IsFull() {
		s.cfg.Logf(config.GameEvents, "Perft cache full at %d entries\n", s.cache.Len())
	}
}

func (s *Session) divide(ctx context.Context, args []string) error {
	depth, err := s.parseDepth(args)
	if err != nil {
		return err
	}

	entries, err := engine.Divide(ctx, s.pos, depth, engine.DivideOptions{
		Workers: s.cfg.Perft.Workers,
		Cache:   s.cache,
	})
	if err != nil {
		return err
	}
	s.noteCacheFull()
	_, err = io.WriteString(s.cfg.OutputFile, output.DivideText(entries))
	return err
}
