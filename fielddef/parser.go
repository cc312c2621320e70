// File: parser.go
// Title: Field Declaration Parser
// Description: Implements the ordered-choice parser for field declaration
//              lines. Tries the dummy, simple scalar and fixed-string rules
//              in order and falls back to the unrecognized catch-all; the
//              first rule that consumes the whole line wins.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial parser implementation

package fielddef

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pdlog "github.com/soulskit/paramdex/log"
	"github.com/soulskit/paramdex/utils/stringx"
)

// DefaultMaxLineLength bounds the accepted declaration line length.
// Real paramdef declarations are a few dozen bytes at most.
const DefaultMaxLineLength = 1024

// SyntaxError reports a declaration line that matches none of the grammar
// rules. Offset is the byte position the failing rule stopped at.
type SyntaxError struct {
	Line    string // The offending line
	Offset  int    // Byte offset of the failure
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s (in %q)", e.Offset, e.Message, e.Line)
}

// Options configures parser behavior
type Options struct {
	Logger        *pdlog.Logger
	MaxLineLength int
}

// Parser parses field declaration lines. It holds no per-call state and is
// safe for concurrent use.
type Parser struct {
	logger  *pdlog.Logger
	options Options
}

// New creates a new field declaration parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = pdlog.GetDefault()
	}
	if opts.MaxLineLength == 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "fielddef-parser"),
		options: opts,
	}, nil
}

// defaultParser serves the package-level Parse
var defaultParser, _ = New(Options{})

// Parse parses one field declaration line using the default parser
func Parse(line string) (Declaration, error) {
	return defaultParser.Parse(line)
}

// Parse parses one field declaration line. The line must not contain a
// newline; the grammar is anchored to the start and end of the input.
func (p *Parser) Parse(line string) (Declaration, error) {
	if len(line) > p.options.MaxLineLength {
		return nil, fmt.Errorf("declaration exceeds maximum length: %d > %d",
			len(line), p.options.MaxLineLength)
	}

	decl, err := parseDeclaration(line)
	if err != nil {
		p.logger.Warn("field declaration parsing failed", pdlog.Fields{
			"line":  line,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("parsed field declaration", pdlog.Fields{
		"line": line,
		"decl": decl.String(),
	})

	return decl, nil
}

// errNoMatch signals that an alternative's leading keyword did not match
// and the next alternative should be tried. Any other error is final.
var errNoMatch = errors.New("rule does not match")

// alternatives are the grammar rules in priority order. The catch-all is
// last and never returns errNoMatch, so the choice is total for inputs of
// the minimal token-space-rest shape.
var alternatives = []func(*scanner) (Declaration, error){
	parseDummy,
	parseSimple,
	parseFixedString,
	parseUnrecognized,
}

// parseDeclaration runs the ordered choice over one line
func parseDeclaration(line string) (Declaration, error) {
	if line == "" {
		return nil, &SyntaxError{Line: line, Message: "empty declaration"}
	}

	for _, rule := range alternatives {
		decl, err := rule(newScanner(line))
		if errors.Is(err, errNoMatch) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return decl, nil
	}

	// Unreachable: the catch-all never reports errNoMatch.
	return nil, &SyntaxError{Line: line, Message: "no grammar rule matched"}
}

// parseDummy parses a padding declaration:
//
//	dummy8 <name> ( [<len>] | :<bits> )? ( = <default> )?
func parseDummy(s *scanner) (Declaration, error) {
	if s.alnumRun() != "dummy8" {
		return nil, errNoMatch
	}
	if !s.accept(' ') {
		return nil, syntaxErr(s, "expected space after type token")
	}

	name, ok := s.identifier()
	if !ok {
		return nil, syntaxErr(s, "expected field name")
	}
	d := &Dummy{Name: name}

	switch {
	case s.accept('['):
		n, ok := s.number()
		if !ok {
			return nil, syntaxErr(s, "expected array length")
		}
		if !s.accept(']') {
			return nil, syntaxErr(s, "expected ']' after array length")
		}
		d.Refinement = &Refinement{Kind: RefArrayLength, Count: n}
	case s.accept(':'):
		n, ok := s.number()
		if !ok {
			return nil, syntaxErr(s, "expected bit size after ':'")
		}
		d.Refinement = &Refinement{Kind: RefBitSize, Count: n}
	}

	def, err := parseDefaultSuffix(s)
	if err != nil {
		return nil, err
	}
	d.Default = def

	if !s.eof() {
		return nil, syntaxErr(s, "unexpected trailing characters")
	}
	return d, nil
}

// parseSimple parses a scalar declaration:
//
//	<scalar-type> <name> ( :<bits> )? ( = <default> )?
func parseSimple(s *scanner) (Declaration, error) {
	typ, ok := scalarTypes[s.alnumRun()]
	if !ok {
		return nil, errNoMatch
	}
	if !s.accept(' ') {
		return nil, syntaxErr(s, "expected space after type token")
	}

	name, ok := s.identifier()
	if !ok {
		return nil, syntaxErr(s, "expected field name")
	}
	d := &Simple{Type: typ, Name: name}

	if s.peek() == ':' {
		colon := s.pos
		s.accept(':')
		n, ok := s.number()
		if !ok {
			return nil, syntaxErr(s, "expected bit size after ':'")
		}
		if !typ.SupportsBitSize() {
			return nil, &SyntaxError{
				Line:    s.input,
				Offset:  colon,
				Message: "bit size not supported on this type",
			}
		}
		d.BitSize = &n
	}

	def, err := parseDefaultSuffix(s)
	if err != nil {
		return nil, err
	}
	d.Default = def

	if !s.eof() {
		return nil, syntaxErr(s, "unexpected trailing characters")
	}
	return d, nil
}

// parseFixedString parses a fixed-length string declaration:
//
//	fixstr[W] <name> [<len>]
//
// The array length is mandatory and no default value is allowed.
func parseFixedString(s *scanner) (Declaration, error) {
	var wide bool
	switch s.alnumRun() {
	case "fixstr":
	case "fixstrW":
		wide = true
	default:
		return nil, errNoMatch
	}
	if !s.accept(' ') {
		return nil, syntaxErr(s, "expected space after type token")
	}

	name, ok := s.identifier()
	if !ok {
		return nil, syntaxErr(s, "expected field name")
	}
	if !s.accept('[') {
		return nil, syntaxErr(s, "expected '[' after field name")
	}
	n, ok := s.number()
	if !ok {
		return nil, syntaxErr(s, "expected array length")
	}
	if !s.accept(']') {
		return nil, syntaxErr(s, "expected ']' after array length")
	}
	if !s.eof() {
		return nil, syntaxErr(s, "unexpected trailing characters")
	}

	return &FixedString{Name: name, Wide: wide, ArrayLength: n}, nil
}

// parseUnrecognized is the catch-all: an unknown type token, one space, and
// the rest of the line verbatim. Near-misses of the built-in vocabulary
// (u9, dummy16, fixstr with a broken suffix) are rejected instead of being
// preserved, so typos surface as errors rather than silent fields.
func parseUnrecognized(s *scanner) (Declaration, error) {
	tok := s.alnumRun()
	if tok == "" {
		return nil, syntaxErr(s, "expected type token")
	}
	if reservedToken(tok) {
		return nil, &SyntaxError{
			Line:    s.input,
			Message: fmt.Sprintf("invalid type token %q", tok),
		}
	}
	if !s.accept(' ') {
		return nil, syntaxErr(s, "expected space after type token")
	}

	return &Unrecognized{RawType: tok, Remainder: s.rest()}, nil
}

// reservedToken reports whether the token belongs to the built-in type
// vocabulary or looks like a failed attempt at one. Such tokens never reach
// the catch-all; their structural errors are reported directly.
func reservedToken(tok string) bool {
	if _, ok := scalarTypes[tok]; ok {
		return true
	}
	if strings.HasPrefix(tok, "fixstr") {
		return true
	}
	if len(tok) >= 2 && stringx.IsNumeric(tok[1:]) {
		switch tok[0] {
		case 's', 'u', 'f', 'a', 'b':
			return true
		}
	}
	for _, word := range []string{"angle", "dummy"} {
		if strings.HasPrefix(tok, word) && stringx.IsNumeric(tok[len(word):]) {
			return true
		}
	}
	return false
}

// parseDefaultSuffix parses the optional default-value suffix shared by the
// dummy and simple rules:
//
//	' '? '=' ' '? <signed-float>
//
// Returns nil without consuming anything when no '=' follows.
func parseDefaultSuffix(s *scanner) (*float64, error) {
	mark := s.pos
	s.accept(' ')
	if !s.accept('=') {
		s.pos = mark
		return nil, nil
	}
	s.accept(' ')

	v, err := parseSignedFloat(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseSignedFloat parses the only numeric literal allowed as a default:
//
//	'-'? digits ( '.' digits )? ( 'E' ('+'|'-') digits )?
//
// The exponent marker is uppercase only and its sign is mandatory; this
// mirrors the source grammar exactly and is not generalized.
func parseSignedFloat(s *scanner) (float64, error) {
	start := s.pos
	s.accept('-')

	if s.digits() == "" {
		return 0, syntaxErr(s, "expected number in default value")
	}
	if s.accept('.') {
		if s.digits() == "" {
			return 0, syntaxErr(s, "expected digits after decimal point")
		}
	}
	if s.accept('E') {
		if !s.accept('+') && !s.accept('-') {
			return 0, syntaxErr(s, "exponent requires an explicit sign")
		}
		if s.digits() == "" {
			return 0, syntaxErr(s, "expected digits in exponent")
		}
	}

	v, err := strconv.ParseFloat(s.input[start:s.pos], 64)
	if err != nil {
		return 0, &SyntaxError{
			Line:    s.input,
			Offset:  start,
			Message: "invalid default value literal",
		}
	}
	return v, nil
}

// IsValidIdentifier checks if a string is usable as a declared field name
func IsValidIdentifier(s string) bool {
	if stringx.IsBlank(s) {
		return false
	}
	sc := newScanner(s)
	ident, ok := sc.identifier()
	return ok && ident == s
}

// syntaxErr creates a syntax error at the scanner's current offset
func syntaxErr(s *scanner, message string) *SyntaxError {
	return &SyntaxError{Line: s.input, Offset: s.pos, Message: message}
}
