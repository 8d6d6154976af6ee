// Package script reads activation scripts: plain text listing the squares a
// player activates, in order.
//
// Everything after '#' on a line is a comment. Tokens are separated by
// whitespace. A token is a square ("e2"), or a from/to pair written "e2e4" or
// "e2-e4", which stands for two activations.
package script

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Activation is one activated square and where it was written.
type Activation struct {
	Square chess.Square
	Line   int
	Column int
}

// Script is a parsed activation script.
type Script struct {
	Name        string
	Activations []Activation
}

// Squares returns the activated squares in order.
func (s *Script) Squares() []chess.Square {
	out := make([]chess.Square, len(s.Activations))
	for i, a := range s.Activations {
		out[i] = a.Square
	}
	return out
}

// ParseFile reads the script at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening script %s", path)
	}
	defer f.Close()
	return Parse(f, path)
}

// ParseString parses a script held in memory.
func ParseString(text, name string) (*Script, error) {
	return Parse(strings.NewReader(text), name)
}

// Parse reads a whole script from r. name is used in error messages.
// A token of the wrong shape yields a *errors.ParseError wrapping
// errors.ErrParseFailure; a well formed name off the board wraps
// errors.ErrInvalidSquare.
func Parse(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	reader := bufio.NewReader(r)

	for lineNum := 1; ; lineNum++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if perr := s.parseLine(line, lineNum); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading script %s", name)
		}
	}
}

// parseLine splits one line into tokens, tracking 1-based columns.
func (s *Script) parseLine(line string, lineNum int) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	start := -1
	for i := 0; i <= len(line); i++ {
		space := i == len(line) || isSpace(line[i])
		switch {
		case !space && start < 0:
			start = i
		case space && start >= 0:
			if err := s.addToken(line[start:i], lineNum, start+1); err != nil {
				return err
			}
			start = -1
		}
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// addToken appends the activations a token stands for.
func (s *Script) addToken(token string, lineNum, col int) error {
	lower := strings.ToLower(token)

	var names []string
	var cols []int
	switch {
	case len(lower) == 2:
		names, cols = []string{lower}, []int{col}
	case len(lower) == 4:
		names, cols = []string{lower[:2], lower[2:]}, []int{col, col + 2}
	case len(lower) == 5 && lower[2] == '-':
		names, cols = []string{lower[:2], lower[3:]}, []int{col, col + 3}
	default:
		return &errors.ParseError{
			Err:      errors.ErrParseFailure,
			File:     s.Name,
			Line:     lineNum,
			Column:   col,
			Expected: "square",
			Got:      token,
		}
	}

	for i, n := range names {
		sq, err := chess.ParseSquare(n)
		if err != nil {
			return &errors.ParseError{
				Err:      errors.ErrInvalidSquare,
				File:     s.Name,
				Line:     lineNum,
				Column:   cols[i],
				Expected: "square",
				Got:      token,
			}
		}
		s.Activations = append(s.Activations, Activation{Square: sq, Line: lineNum, Column: cols[i]})
	}
	return nil
}
