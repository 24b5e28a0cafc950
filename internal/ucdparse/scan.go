package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function consumes a part of the current line and then possibly branches
// out to a subsequent step function.
type Scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	LastError error  // last error, if any
	Token     *Token // last token produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the unconsumed rest of the line and the next step
// in the chain, or nil to stop/accept.
type scannerStep func(string, *Token) (string, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of a UCD file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next line-level token. Empty lines and comment
// lines are skipped.
//
// Next will iterate over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function, meaning there is no further step applicable in this chain.
// If a step function flags an error, Next returns false and the error is
// available as LastError.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		line := strings.TrimSpace(sc.lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		sc.Token = newToken(sc.lineNo)
		var step scannerStep = sc.scanRuneRange
		for step != nil {
			line, step = step(line, sc.Token)
		}
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
		return true
	}
	sc.Token = newToken(sc.lineNo)
	sc.Token.TokenType = EOF
	if err := sc.lines.Err(); err != nil {
		sc.LastError = err
	}
	return false
}

// scanRuneRange matches 'XXXX' or 'XXXX..YYYY' at the start of a data line.
func (sc *Scanner) scanRuneRange(line string, token *Token) (string, scannerStep) {
	end := strings.IndexAny(line, ";#")
	if end < 0 {
		end = len(line)
	}
	cps := strings.TrimSpace(line[:end])
	from, to := cps, cps
	token.TokenType = SingleDataItem
	if i := strings.Index(cps, ".."); i >= 0 {
		from, to = cps[:i], cps[i+2:]
		token.TokenType = RangeDataItem
	}
	var err error
	if token.runeFrom, err = parseHex(from); err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return line, nil
	}
	if token.runeTo, err = parseHex(to); err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return line, nil
	}
	if token.runeTo < token.runeFrom {
		token.Error = fmt.Errorf("line %d: invalid range %s", token.LineNo, cps)
		return line, nil
	}
	return line[end:], sc.scanItemBody
}

func parseHex(hex string) (rune, error) {
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}

// scanItemBody splits the rest of a data line into fields and comment.
func (sc *Scanner) scanItemBody(rest string, token *Token) (string, scannerStep) {
	a := strings.SplitN(rest, "#", 2)
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(a[1])
	}
	body := strings.TrimSpace(a[0])
	body = strings.TrimPrefix(body, ";")
	if body == "" {
		return "", nil
	}
	for _, f := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return "", nil
}
