// File: scan.go
// Title: Declaration Line Scanner
// Description: Implements the low-level cursor over one declaration line.
//              Provides the lexical helpers the parser alternatives build
//              on: identifier and digit runs, single-byte acceptance and
//              verbatim access to the unconsumed remainder.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial scanner implementation

package fielddef

import "strconv"

// scanner is a byte cursor over a single declaration line. Each grammar
// alternative runs on its own scanner so a failed alternative leaves no
// state behind.
type scanner struct {
	input string // The full line
	pos   int    // Current byte offset
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

// eof reports whether the whole line has been consumed
func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// peek returns the current byte without advancing, or 0 at end of line
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

// accept consumes the current byte if it equals ch
func (s *scanner) accept(ch byte) bool {
	if s.peek() != ch {
		return false
	}
	s.pos++
	return true
}

// rest returns the unconsumed remainder of the line verbatim and consumes it
func (s *scanner) rest() string {
	r := s.input[s.pos:]
	s.pos = len(s.input)
	return r
}

// alnumRun consumes and returns the maximal run of ASCII letters and digits
// at the cursor. An empty result means the current byte is not alphanumeric.
func (s *scanner) alnumRun() string {
	start := s.pos
	for !s.eof() && isAlnum(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// identifier consumes an identifier: a letter followed by letters, digits
// or underscores. Non-ASCII bytes count as letters so that multibyte names
// survive untouched.
func (s *scanner) identifier() (string, bool) {
	if !isLetter(s.peek()) {
		return "", false
	}
	start := s.pos
	for !s.eof() {
		ch := s.input[s.pos]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			break
		}
		s.pos++
	}
	return s.input[start:s.pos], true
}

// digits consumes and returns the maximal run of decimal digits
func (s *scanner) digits() string {
	start := s.pos
	for !s.eof() && isDigit(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// number consumes a non-negative base-10 integer literal
func (s *scanner) number() (int, bool) {
	d := s.digits()
	if d == "" {
		return 0, false
	}
	n, err := strconv.Atoi(d)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isLetter treats ASCII letters and every non-ASCII byte as a letter, so
// multibyte identifiers pass through byte by byte.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch >= 0x80
}

// isDigit checks if the byte is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isAlnum checks if the byte is an ASCII letter or digit
func isAlnum(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9'
}
