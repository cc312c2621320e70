// File: decl.go
// Title: Field Declaration Types
// Description: Defines the Declaration variants produced by the parser
//              (simple scalar, dummy, fixed string, unrecognized) together
//              with the scalar type vocabulary and canonical text rendering
//              for every variant.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial declaration types

package fielddef

import (
	"fmt"
	"strconv"
)

// Declaration is one parsed field declaration. Exactly one of the concrete
// types Simple, Dummy, FixedString or Unrecognized is produced per line.
type Declaration interface {
	// String returns the canonical text rendering of the declaration.
	// Re-parsing the rendering yields an equal value.
	String() string

	declNode() // marker method
}

// ScalarKind distinguishes the scalar type families.
type ScalarKind int

const (
	// ScalarInt is a signed or unsigned integer of 8, 16 or 32 bits.
	ScalarInt ScalarKind = iota

	// ScalarAngle is a 32-bit float that carries an angle. It decodes
	// exactly like f32; the distinction only matters to editors.
	ScalarAngle

	// ScalarFloat is a float of 32 or 64 bits.
	ScalarFloat

	// ScalarBool is a boolean stored in 32 bits. 0 is false, anything
	// else is true.
	ScalarBool
)

// ScalarType is the storage type of a simple field declaration.
type ScalarType struct {
	Kind   ScalarKind
	Signed bool // Integers only
	Bits   int  // 8, 16 or 32 for integers; 32 or 64 for floats
}

// scalarTypes maps every accepted type token to its scalar type. The long
// form "angle32" is an alias for "a32".
var scalarTypes = map[string]ScalarType{
	"s8":      {Kind: ScalarInt, Signed: true, Bits: 8},
	"u8":      {Kind: ScalarInt, Bits: 8},
	"s16":     {Kind: ScalarInt, Signed: true, Bits: 16},
	"u16":     {Kind: ScalarInt, Bits: 16},
	"s32":     {Kind: ScalarInt, Signed: true, Bits: 32},
	"u32":     {Kind: ScalarInt, Bits: 32},
	"f32":     {Kind: ScalarFloat, Bits: 32},
	"f64":     {Kind: ScalarFloat, Bits: 64},
	"a32":     {Kind: ScalarAngle, Bits: 32},
	"angle32": {Kind: ScalarAngle, Bits: 32},
	"b32":     {Kind: ScalarBool, Bits: 32},
}

// Token returns the canonical type token. The angle alias "angle32" renders
// as "a32".
func (t ScalarType) Token() string {
	switch t.Kind {
	case ScalarInt:
		if t.Signed {
			return "s" + strconv.Itoa(t.Bits)
		}
		return "u" + strconv.Itoa(t.Bits)
	case ScalarAngle:
		return "a32"
	case ScalarFloat:
		return "f" + strconv.Itoa(t.Bits)
	case ScalarBool:
		return "b32"
	default:
		return "unknown"
	}
}

// String returns the string representation of the scalar type
func (t ScalarType) String() string {
	return t.Token()
}

// SupportsBitSize reports whether the type may carry a bit-size suffix.
// Only unsigned integers can be narrowed to a bit count.
func (t ScalarType) SupportsBitSize() bool {
	return t.Kind == ScalarInt && !t.Signed
}

// Simple is a scalar field declaration: a storage type, a name, an optional
// bit-size override and an optional default value.
type Simple struct {
	Type    ScalarType
	Name    string
	BitSize *int     // Bits actually read, nil for the full storage width
	Default *float64 // Declared default value, nil when absent
}

func (d *Simple) declNode() {}

// String returns the canonical text rendering of the declaration
func (d *Simple) String() string {
	s := d.Type.Token() + " " + d.Name
	if d.BitSize != nil {
		s += ":" + strconv.Itoa(*d.BitSize)
	}
	return s + renderDefault(d.Default)
}

// RefinementKind distinguishes the two dummy-field size refinements.
type RefinementKind int

const (
	// RefArrayLength sizes the dummy field in bytes: dummy8 pad[8]
	RefArrayLength RefinementKind = iota

	// RefBitSize sizes the dummy field in bits: dummy8 pad:3
	RefBitSize
)

// Refinement is the optional size refinement of a dummy field. The grammar
// offers array length and bit size as alternatives, never both.
type Refinement struct {
	Kind  RefinementKind
	Count int
}

// Dummy is a padding field declaration. Without a refinement the field
// occupies a single byte.
type Dummy struct {
	Name       string
	Refinement *Refinement
	Default    *float64
}

func (d *Dummy) declNode() {}

// String returns the canonical text rendering of the declaration
func (d *Dummy) String() string {
	s := "dummy8 " + d.Name
	if r := d.Refinement; r != nil {
		if r.Kind == RefArrayLength {
			s += "[" + strconv.Itoa(r.Count) + "]"
		} else {
			s += ":" + strconv.Itoa(r.Count)
		}
	}
	return s + renderDefault(d.Default)
}

// FixedString is a fixed-length string field declaration of ArrayLength
// elements. Wide strings ("fixstrW") are double-width encoded.
type FixedString struct {
	Name        string
	Wide        bool
	ArrayLength int
}

func (d *FixedString) declNode() {}

// String returns the canonical text rendering of the declaration
func (d *FixedString) String() string {
	tok := "fixstr"
	if d.Wide {
		tok = "fixstrW"
	}
	return fmt.Sprintf("%s %s[%d]", tok, d.Name, d.ArrayLength)
}

// Unrecognized preserves a declaration whose type token is not part of the
// known vocabulary. The token and the rest of the line are kept verbatim so
// the caller can report or skip the field.
type Unrecognized struct {
	RawType   string // The unknown type token
	Remainder string // Everything after the separating space, verbatim
}

func (d *Unrecognized) declNode() {}

// String returns the canonical text rendering of the declaration
func (d *Unrecognized) String() string {
	return d.RawType + " " + d.Remainder
}

// renderDefault renders the optional default-value suffix. The 'G' format
// keeps the uppercase exponent marker the grammar requires.
func renderDefault(v *float64) string {
	if v == nil {
		return ""
	}
	return " = " + strconv.FormatFloat(*v, 'G', -1, 64)
}
