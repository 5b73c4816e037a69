package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snakesladders/board"
	"github.com/katalvlaran/snakesladders/internal/input"
	"github.com/katalvlaran/snakesladders/internal/store"
	"github.com/katalvlaran/snakesladders/internal/telemetry"
	"github.com/katalvlaran/snakesladders/solver"
)

// unreachableOutput is printed for boards whose goal cannot be reached.
const unreachableOutput = "-1"

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the minimum number of rolls for every case",
		Long: `Reads test cases (from file, or stdin when omitted) and prints one line per
case: the minimum number of rolls, -1 when square 100 cannot be reached, or
"error: <message>" when the case is not a valid board.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := readCases(cmd, args)
			if err != nil {
				return err
			}
			lines, err := a.solveAll(cmd.Context(), cases)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, line := range lines {
				fmt.Fprintln(w, line)
			}
			return w.Flush()
		},
	}
}

// readCases parses input from args[0], or from the command's stdin.
func readCases(cmd *cobra.Command, args []string) ([]input.Case, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return input.Read(r)
}

// solveAll solves every case on a bounded worker pool and returns the output
// lines in input order. Per-case failures become output lines; only store or
// context errors abort the run.
func (a *app) solveAll(ctx context.Context, cases []input.Case) ([]string, error) {
	var st *store.Store
	if a.cfg.Record {
		var err error
		if st, err = a.openStore(ctx); err != nil {
			return nil, err
		}
	}

	lines := make([]string, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			line, err := a.solveCase(gctx, st, i+1, c)
			if err != nil {
				return fmt.Errorf("case %d: %w", i+1, err)
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (a *app) solveCase(ctx context.Context, st *store.Store, n int, c input.Case) (string, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "solve.case")
	defer span.End()
	span.SetAttributes(
		attribute.Int("case", n),
		attribute.Int("ladders", len(c.Ladders)),
		attribute.Int("snakes", len(c.Snakes)),
	)

	b, err := c.Board()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		a.log.Warn("invalid board", "case", n, "err", err)
		return "error: " + err.Error(), nil
	}

	if st != nil {
		if run, err := st.Lookup(ctx, b.Fingerprint()); err == nil {
			a.log.Debug("history hit", "case", n, "run", run.ID)
			return runOutput(run), nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
	}

	sol, err := solver.Solve(ctx, b)
	reachable := true
	switch {
	case errors.Is(err, solver.ErrUnreachableGoal):
		reachable = false
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Bool("reachable", reachable), attribute.Int("rolls", sol.Rolls))
	a.log.Debug("solved", "case", n, "board", b, "reachable", reachable, "rolls", sol.Rolls)

	if st != nil {
		run, err := st.Record(ctx, newRun(b, sol, reachable))
		if err != nil {
			return "", err
		}
		a.log.Debug("recorded", "case", n, "run", run.ID)
	}

	if !reachable {
		return unreachableOutput, nil
	}
	return fmt.Sprint(sol.Rolls), nil
}

func newRun(b *board.Board, sol solver.Solution, reachable bool) store.Run {
	run := store.Run{
		Fingerprint: b.Fingerprint(),
		Ladders:     len(b.Ladders()),
		Snakes:      len(b.Snakes()),
		Reachable:   reachable,
	}
	if reachable {
		run.Rolls = sol.Rolls
		run.Path = make([]int, len(sol.Path))
		for i, sq := range sol.Path {
			run.Path[i] = int(sq)
		}
	}
	return run
}

func runOutput(run store.Run) string {
	if !run.Reachable {
		return unreachableOutput
	}
	return fmt.Sprint(run.Rolls)
}
