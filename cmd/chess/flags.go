// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")

	// Display options
	useColour = flag.Bool("color", !color.NoColor, "Draw the board with terminal colours (default when stdout is a terminal)")
	flipBoard = flag.Bool("flip", false, "Draw the board from Black's side")
	showMoves = flag.Bool("showmoves", false, "List the legal moves after every board")
	noCoords  = flag.Bool("nocoords", false, "Don't print file and rank labels")

	// Perft options
	workers       = flag.Int("workers", 0, "Number of divide workers (0 = auto-detect based on CPU cores)")
	noCache       = flag.Bool("nocache", false, "Don't memoise perft subtree counts")
	cacheCapacity = flag.Int("cache-capacity", 1<<20, "Maximum perft cache entries (0 = unlimited)")
	maxDepth      = flag.Int("maxdepth", 6, "Deepest perft or divide accepted")

	// Logging
	logFile   = flag.String("l", "", "Write game log to file")
	appendLog = flag.String("L", "", "Append game log to file")
	verbosity = flag.Int("verbosity", config.GameEvents, "Log level: 0=nothing, 1=game events, 2=every move")
	quiet     = flag.Bool("s", false, "Silent mode (no game log)")

	// Game setup
	startMoves = flag.String("moves", "", "Play these coordinate moves before reading input (e.g. \"1. e2e4 e7e5\")")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = *useColour
	cfg.Display.Flip = *flipBoard
	cfg.Display.ShowMoves = *showMoves
	cfg.Display.Coordinates = !*noCoords
}

// applyPerftFlags configures the perft and divide commands.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Workers = *workers
	if cfg.Perft.Workers == 0 {
		cfg.Perft.Workers = runtime.NumCPU()
	}
	cfg.Perft.UseCache = !*noCache
	cfg.Perft.CacheCapacity = *cacheCapacity
	cfg.Perft.MaxDepth = *maxDepth
}
