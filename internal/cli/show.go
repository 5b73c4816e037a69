package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snakesladders/board"
	"github.com/katalvlaran/snakesladders/solver"
)

// Cell markers.
const (
	markLadder = 'L' // ladder bottom
	markSnake  = 'S' // snake mouth
	markPath   = '*' // resting square on the optimal route
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Draw every board with its optimal route",
		Long: `Draws each case as a 10x10 board, square 1 bottom-left and rows
alternating direction, then lists the rolls of one optimal route.
L marks a ladder bottom, S a snake mouth and * a square the route rests on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := readCases(cmd, args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, c := range cases {
				if i > 0 {
					fmt.Fprintln(w)
				}
				b, err := c.Board()
				if err != nil {
					fmt.Fprintf(w, "case %d: error: %v\n", i+1, err)
					continue
				}
				fmt.Fprintf(w, "case %d: %s\n", i+1, b)

				sol, err := solver.Solve(cmd.Context(), b)
				switch {
				case errors.Is(err, solver.ErrUnreachableGoal):
					renderBoard(w, b, nil)
					fmt.Fprintln(w, "unreachable")
					continue
				case err != nil:
					return err
				}
				renderBoard(w, b, sol.Path)
				renderMoves(w, sol)
				a.log.Debug("shown", "case", i+1, "rolls", sol.Rolls)
			}
			return w.Flush()
		},
	}
}

// squareAt maps a grid position to its square; row 0 is the bottom row and
// odd rows run right to left.
func squareAt(row, col int) board.Square {
	if row%2 == 1 {
		col = board.Width - 1 - col
	}
	return board.Square(row*board.Width + col + 1)
}

func renderBoard(w io.Writer, b *board.Board, path []board.Square) {
	rows := int(board.MaxSquare) / board.Width
	for row := rows - 1; row >= 0; row-- {
		for col := 0; col < board.Width; col++ {
			sq := squareAt(row, col)
			kind, onPath := ' ', ' '
			switch to := b.Effect(sq); {
			case to > sq:
				kind = markLadder
			case to < sq:
				kind = markSnake
			}
			if slices.Contains(path, sq) {
				onPath = markPath
			}
			if col > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%3d%c%c", sq, kind, onPath)
		}
		fmt.Fprintln(w)
	}
}

func renderMoves(w io.Writer, sol solver.Solution) {
	fmt.Fprintf(w, "rolls: %d (expanded %d of %d squares reached)\n", sol.Rolls, sol.Expanded, sol.Discovered)
	for i, m := range sol.Moves {
		fmt.Fprintf(w, "%2d. %3d +%d -> %d", i+1, m.From, m.Face, m.Landed)
		switch {
		case m.To > m.Landed:
			fmt.Fprintf(w, " ladder -> %d", m.To)
		case m.To < m.Landed:
			fmt.Fprintf(w, " snake -> %d", m.To)
		}
		fmt.Fprintln(w)
	}
}
