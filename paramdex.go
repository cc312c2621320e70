// File: paramdex.go
// Title: Param Definition Data Model
// Description: Defines ParamDef, ParamField and the supporting value types
//              (endianness, string format, edit flags) that describe a param
//              schema. Values are constructed by the deserialize subpackage
//              and are immutable by convention afterwards.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial data model

package paramdex

import (
	"strings"

	"github.com/soulskit/paramdex/fielddef"
)

// Endian is the byte order declared by a paramdef.
type Endian int

const (
	// EndianLittle is the default byte order for param data.
	EndianLittle Endian = iota

	// EndianBig is used by a handful of console-era paramdefs.
	EndianBig
)

// String returns the string representation of the endianness
func (e Endian) String() string {
	if e == EndianBig {
		return "big"
	}
	return "little"
}

// EndianFromBool maps the BigEndian header flag to an Endian value
func EndianFromBool(big bool) Endian {
	if big {
		return EndianBig
	}
	return EndianLittle
}

// StringFormat is the text encoding declared for fixed strings in the param.
type StringFormat int

const (
	// FormatShiftJIS encodes fixstr fields as Shift JIS.
	FormatShiftJIS StringFormat = iota

	// FormatUTF16 encodes fixstrW fields as UTF-16.
	FormatUTF16
)

// String returns the string representation of the string format
func (f StringFormat) String() string {
	if f == FormatUTF16 {
		return "utf16"
	}
	return "shiftjis"
}

// StringFormatFromBool maps the Unicode header flag to a StringFormat value
func StringFormatFromBool(unicode bool) StringFormat {
	if unicode {
		return FormatUTF16
	}
	return FormatShiftJIS
}

// EditFlags control how an editor should treat user input for a field.
type EditFlags struct {
	Wrap bool // Value wraps around at its bounds
	Lock bool // Field is read-only in editors
}

// ParseEditFlags reads an EditFlags value from the flag string used in
// paramdef documents. The format is a loose word list, so membership is
// tested by substring as the documents themselves do.
func ParseEditFlags(s string) EditFlags {
	return EditFlags{
		Wrap: strings.Contains(s, "Wrap"),
		Lock: strings.Contains(s, "Lock"),
	}
}

// ParamDef is the schema for one param type: the declared header values and
// the ordered list of fields making up a packed param row.
type ParamDef struct {
	ParamType     string       // Internal type key the param is addressed by
	DataVersion   uint32       // Data version declared for the param
	Endian        Endian       // Declared byte order
	StringFormat  StringFormat // Declared fixed-string encoding
	FormatVersion uint32       // Version of the paramdef document format
	Fields        []ParamField // Fields in declaration order
}

// Field returns the field with the given declared name, or nil if the
// paramdef has no such field. Unrecognized declarations have no name and
// are never returned.
func (d *ParamDef) Field(name string) *ParamField {
	for i := range d.Fields {
		if d.Fields[i].Name() == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// ParamField is one field of a paramdef: the parsed declaration plus the
// optional editor metadata attached to it by the document.
type ParamField struct {
	// Def is the parsed field declaration (type, name, refinements).
	Def fielddef.Declaration

	// Editor metadata. All of it is optional in the documents; string
	// fields are empty and numeric fields are nil when absent.
	DisplayName   string
	Enum          string
	Description   string
	DisplayFormat string
	EditFlags     *EditFlags
	Minimum       *float64
	Maximum       *float64
	Increment     *float64
	SortID        *int
}

// Name returns the declared field name, or the empty string for
// declarations that do not carry one (unrecognized type tokens).
func (f *ParamField) Name() string {
	switch d := f.Def.(type) {
	case *fielddef.Simple:
		return d.Name
	case *fielddef.Dummy:
		return d.Name
	case *fielddef.FixedString:
		return d.Name
	default:
		return ""
	}
}
