// Package input reads and writes the line-oriented test-case format:
//
//	T                 number of cases
//	N                 ladders in case 1
//	bottom top        N lines
//	M                 snakes in case 1
//	mouth tail        M lines
//	...               repeated T times
//
// Tokens may be separated by any whitespace. Values are only checked for
// being integers here; range and consistency checks belong to package board.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/snakesladders/board"
)

// ErrMalformed indicates a non-integer token, a negative count, or truncated input.
var ErrMalformed = errors.New("input: malformed")

// Case is one raw test case as read from the input.
type Case struct {
	Ladders [][2]int
	Snakes  [][2]int
}

// Board validates the case and builds its board.
func (c Case) Board() (*board.Board, error) {
	ladders := make([]board.Ladder, 0, len(c.Ladders))
	for _, p := range c.Ladders {
		l, err := board.NewLadder(p[0], p[1])
		if err != nil {
			return nil, err
		}
		ladders = append(ladders, l)
	}
	snakes := make([]board.Snake, 0, len(c.Snakes))
	for _, p := range c.Snakes {
		s, err := board.NewSnake(p[0], p[1])
		if err != nil {
			return nil, err
		}
		snakes = append(snakes, s)
	}
	return board.NewBoard(ladders, snakes)
}

// FromBoard converts a board back into a raw case.
func FromBoard(b *board.Board) Case {
	var c Case
	for _, l := range b.Ladders() {
		c.Ladders = append(c.Ladders, [2]int{int(l.Bottom()), int(l.Top())})
	}
	for _, s := range b.Snakes() {
		c.Snakes = append(c.Snakes, [2]int{int(s.Mouth()), int(s.Tail())})
	}
	return c
}

// tokens wraps a word scanner and counts consumed tokens for error messages.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokens) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("input: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input reading %s (token %d)", ErrMalformed, what, t.pos+1)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: token %d %q is not an integer", ErrMalformed, what, t.pos, t.sc.Text())
	}
	return v, nil
}

func (t *tokens) count(what string) (int, error) {
	n, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative (token %d)", ErrMalformed, what, n, t.pos)
	}
	return n, nil
}

func (t *tokens) pairs(n int, what string) ([][2]int, error) {
	out := make([][2]int, 0, min(n, board.MaxLadders+1))
	for i := 0; i < n; i++ {
		a, err := t.next(what)
		if err != nil {
			return nil, err
		}
		b, err := t.next(what)
		if err != nil {
			return nil, err
		}
		out = append(out, [2]int{a, b})
	}
	return out, nil
}

// Read parses every case from r. Trailing tokens after the last case are ignored.
func Read(r io.Reader) ([]Case, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokens{sc: sc}

	n, err := t.count("case count")
	if err != nil {
		return nil, err
	}
	cases := make([]Case, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		var c Case
		nl, err := t.count("ladder count")
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		if c.Ladders, err = t.pairs(nl, "ladder"); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		ns, err := t.count("snake count")
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		if c.Snakes, err = t.pairs(ns, "snake"); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Write renders cases in the input format.
func Write(w io.Writer, cases ...Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(cases))
	for _, c := range cases {
		fmt.Fprintln(bw, len(c.Ladders))
		for _, p := range c.Ladders {
			fmt.Fprintln(bw, p[0], p[1])
		}
		fmt.Fprintln(bw, len(c.Snakes))
		for _, p := range c.Snakes {
			fmt.Fprintln(bw, p[0], p[1])
		}
	}
	return bw.Flush()
}
