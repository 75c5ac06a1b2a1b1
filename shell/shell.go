// Package shell implements the interactive sigil REPL.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sigil/config"
	"github.com/domino14/sigil/puzzles"
	"github.com/domino14/sigil/shapes"
	"github.com/domino14/sigil/solver"
	"github.com/domino14/sigil/tiles"
)

// ShellController holds the REPL state: the readline instance, config, and
// the last solution for redisplay.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	lastSolution *solver.Solution
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("solve"),
	readline.PcItem("random"),
	readline.PcItem("batch"),
	readline.PcItem("pretty", readline.PcItem("on"), readline.PcItem("off")),
	readline.PcItem("show"),
	readline.PcItem("shapes"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	showMessage(`commands:
solve <rows> <cols> <pieces>  - solve a puzzle, e.g. solve 4 4 LLZZ
random <rows> <cols>          - generate a random solvable puzzle and solve it
batch <file>                  - solve every puzzle in a YAML puzzle file
pretty on|off                 - toggle box-drawing output
show                          - reprint the last solution
shapes                        - list orientation counts per piece letter
help                          - this message
exit                          - leave the shell`, w)
}

// NewShellController creates the controller and its readline instance.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31msigil>\033[0m ",
		HistoryFile:     "/tmp/sigil_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		AutoComplete:        completer,
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			break
		}
		if err := sc.Execute(line); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Debug().Msg("leaving shell loop")
}

// Execute runs a single shell command line.
func (sc *ShellController) Execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "solve":
		return sc.solve(args)
	case "random":
		return sc.random(args)
	case "batch":
		return sc.batch(args)
	case "pretty":
		return sc.pretty(args)
	case "show":
		return sc.show()
	case "shapes":
		return sc.shapes()
	case "help":
		usage(sc.l.Stderr())
		return nil
	default:
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
}

func parseDims(rowArg, colArg string) (rows, cols int, err error) {
	rows, err = strconv.Atoi(rowArg)
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("rows must be a positive integer, got %q", rowArg)
	}
	cols, err = strconv.Atoi(colArg)
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("cols must be a positive integer, got %q", colArg)
	}
	return rows, cols, nil
}

func (sc *ShellController) solve(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: solve <rows> <cols> <pieces>")
	}
	rows, cols, err := parseDims(args[0], args[1])
	if err != nil {
		return err
	}
	sol, err := solver.Solve(context.Background(), cols, rows, args[2])
	if errors.Is(err, solver.ErrNoSolution) {
		showMessage("No solution", sc.l.Stdout())
		return nil
	}
	if err != nil {
		return err
	}
	sc.lastSolution = sol
	return sc.show()
}

func (sc *ShellController) random(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: random <rows> <cols>")
	}
	rows, cols, err := parseDims(args[0], args[1])
	if err != nil {
		return err
	}
	pieces, err := puzzles.Generate(rows, cols, nil)
	if err != nil {
		return err
	}
	showMessage("pieces: "+pieces, sc.l.Stdout())
	return sc.solve([]string{args[0], args[1], pieces})
}

func (sc *ShellController) batch(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: batch <file>")
	}
	set, err := puzzles.LoadSet(args[0])
	if err != nil {
		return err
	}
	results, err := puzzles.SolveSet(context.Background(), set, sc.cfg.GetInt("batch-workers"))
	if err != nil {
		return err
	}
	showMessage(puzzles.Summary(results), sc.l.Stdout())
	return nil
}

func (sc *ShellController) pretty(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.New("usage: pretty on|off")
	}
	sc.cfg.Set("pretty", args[0] == "on")
	return nil
}

func (sc *ShellController) show() error {
	if sc.lastSolution == nil {
		return errors.New("no solution to show; solve something first")
	}
	pos := sc.lastSolution.Position()
	if sc.cfg.GetBool("pretty") {
		showMessage(pos.Pretty(), sc.l.Stdout())
	} else {
		showMessage(pos.String(), sc.l.Stdout())
	}
	return nil
}

func (sc *ShellController) shapes() error {
	var sb strings.Builder
	for f := tiles.Family(0); f < tiles.NumFamilies; f++ {
		fmt.Fprintf(&sb, "%s: %d orientations\n", f, shapes.NumOrientations(f))
	}
	showMessage(sb.String(), sc.l.Stdout())
	return nil
}
