// Package uci implements the Universal Chess Interface dialect this
// engine speaks: a line-oriented command loop over stdin/stdout.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chessengine/core/internal/chesslog"
	"github.com/chessengine/core/internal/orchestrator"
	"github.com/chessengine/core/internal/provider"
)

const (
	engineName   = "chessengine"
	engineAuthor = "chessengine contributors"
)

// UCI runs the command loop against an Orchestrator.
type UCI struct {
	orch *orchestrator.Orchestrator

	out   io.Writer
	outMu sync.Mutex

	difficulty     provider.Difficulty
	recursionDepth int

	fen   string
	moves []string

	// searchWG tracks the goroutine handleGo spawns, so Run can wait for
	// it to finish (or be cancelled by "stop"/"quit") before returning.
	searchWG sync.WaitGroup
}

// New returns a UCI handler writing replies to out (typically os.Stdout).
func New(orch *orchestrator.Orchestrator, out io.Writer) *UCI {
	return &UCI{
		orch:           orch,
		out:            out,
		difficulty:     provider.Normal,
		recursionDepth: 4,
	}
}

// Run reads commands from in until EOF or "quit", then waits for any
// search still in flight to finish.
func (u *UCI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if u.dispatch(strings.Fields(line)) {
			break
		}
	}
	u.searchWG.Wait()
}

// writeLine writes a formatted reply line, serialized against the
// search goroutine handleGo may have spawned.
func (u *UCI) writeLine(format string, args ...any) {
	u.outMu.Lock()
	defer u.outMu.Unlock()
	fmt.Fprintf(u.out, format, args...)
}

// dispatch handles one tokenized command line, skipping unknown leading
// tokens and retrying on what remains. It returns true once "quit" has
// been handled and the loop should stop.
func (u *UCI) dispatch(tokens []string) bool {
	for len(tokens) > 0 {
		cmd, rest := tokens[0], tokens[1:]
		switch cmd {
		case "uci":
			u.handleUCI()
			return false
		case "isready":
			u.writeLine("readyok\n")
			return false
		case "ucinewgame":
			return false
		case "setoption":
			u.handleSetOption(rest)
			return false
		case "position":
			u.handlePosition(rest)
			return false
		case "go":
			u.handleGo(rest)
			return false
		case "stop":
			u.orch.Stop()
			return false
		case "debug":
			u.handleDebug(rest)
			return false
		case "quit":
			u.orch.Stop()
			return true
		default:
			tokens = rest
			continue
		}
	}
	return false
}

func (u *UCI) handleUCI() {
	u.writeLine("id name %s\n", engineName)
	u.writeLine("id author %s\n", engineAuthor)
	u.writeLine("option name Difficulty type combo default Normal var Easy var Normal var Hard\n")
	u.writeLine("option name RecursiveDepth type spin default %d min 1 max 10\n", u.recursionDepth)
	u.writeLine("uciok\n")
}

func (u *UCI) handleSetOption(args []string) {
	name, value := parseNameValue(args)
	switch name {
	case "Difficulty":
		switch strings.ToUpper(value) {
		case "EASY":
			u.difficulty = provider.Easy
		case "NORMAL":
			u.difficulty = provider.Normal
		case "HARD":
			u.difficulty = provider.Hard
		default:
			chesslog.Info("unknown Difficulty value %q", value)
		}
	case "RecursiveDepth":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 10 {
			chesslog.Info("invalid RecursiveDepth value %q", value)
			return
		}
		u.recursionDepth = n
	default:
		chesslog.Info("unknown option %q", name)
	}
}

// parseNameValue scans "name <N...> value <V...>" tokens, the way
// setoption's arguments are laid out.
func parseNameValue(args []string) (name, value string) {
	var nameParts, valueParts []string
	reading := ""
	for _, a := range args {
		switch a {
		case "name":
			reading = "name"
		case "value":
			reading = "value"
		default:
			switch reading {
			case "name":
				nameParts = append(nameParts, a)
			case "value":
				valueParts = append(valueParts, a)
			}
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := len(args)
	for i, a := range args {
		if a == "moves" {
			movesAt = i
			break
		}
	}

	switch args[0] {
	case "startpos":
		u.fen = ""
	case "fen":
		fenTokens := args[1:movesAt]
		if len(fenTokens) < 4 {
			chesslog.Info("invalid FEN in position command")
			return
		}
		u.fen = strings.Join(fenTokens, " ")
	default:
		chesslog.Info("unrecognized position subcommand %q", args[0])
		return
	}

	u.moves = nil
	if movesAt < len(args)-1 {
		u.moves = append(u.moves, args[movesAt+1:]...)
	}
}

// handleGo starts a search and returns immediately, so the command loop
// stays live to read a "stop" while the search runs. Begin registers
// the cancellation hook synchronously, on this goroutine, before the
// search goroutine is spawned: a "stop" read right after "go" is then
// guaranteed to observe it rather than racing the search goroutine to
// register it.
func (u *UCI) handleGo(_ []string) {
	opts := provider.Options{Difficulty: u.difficulty, RecursionDepth: u.recursionDepth}
	fen, moves := u.fen, u.moves
	ctx := u.orch.Begin(context.Background())

	u.searchWG.Add(1)
	go func() {
		defer u.searchWG.Done()
		best, err := u.orch.Resolve(ctx, fen, moves, opts)
		if err != nil {
			if err == orchestrator.ErrCancelled {
				return
			}
			chesslog.Info("search failed: %v", err)
			return
		}
		if best == "" {
			return
		}
		u.writeLine("bestmove %s\n", best)
	}()
}

func (u *UCI) handleDebug(args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "on":
		chesslog.SetUCIDebug(true)
	case "off":
		chesslog.SetUCIDebug(false)
	}
}
