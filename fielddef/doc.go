// File: doc.go
// Title: Field Declaration Parser Package Documentation
// Description: Documents the fielddef package which parses single-line field
//              declarations from paramdef documents into structured
//              declaration values with full syntax validation.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial parser implementation

/*
Package fielddef parses the field-declaration mini-language used by paramdef
documents. One line of text describes one field of a packed param record:

	u16 count:4          unsigned 16-bit field read as 4 bits
	f32 temp = -3.5E+2   float field with a default value
	dummy8 pad[8]        8 bytes of padding
	fixstrW label[16]    fixed-length UTF-16 string of 16 elements

Parse turns one such line into a Declaration value or a *SyntaxError. The
grammar is an ordered choice: a line is matched as a dummy field, then as a
simple scalar field, then as a fixed-length string field, and only if none
of those apply does it fall back to an Unrecognized declaration preserving
the unknown type token and the rest of the line verbatim. The fallback lets
documents using a type keyword this package does not know about survive
parsing; deciding what to do with such fields is the caller's business.

A line either parses completely into exactly one Declaration or fails; there
is no partial-match mode. Parsing is a pure function and safe to call from
any number of goroutines.
*/
package fielddef
