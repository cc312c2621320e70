// File: doc.go
// Title: Paramdex Package Documentation
// Description: Documents the paramdex root package which defines the data
//              model for param definitions: the ParamDef header, the ordered
//              field list, and the editor metadata attached to each field.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial data model

/*
Package paramdex defines the data model for param definitions (paramdefs),
the schemas that describe the layout of packed binary param records.

A ParamDef carries the header values declared by a paramdef document
(param type key, data version, endianness, string encoding, format version)
and an ordered list of ParamField entries. Each ParamField pairs the parsed
field declaration (see the fielddef subpackage) with the optional editor
metadata a paramdef may attach to it.

This package holds only the value types. Parsing lives in the subpackages:

  - fielddef deals with one field-declaration line ("u16 count:4 = 0")
  - deserialize turns a whole PARAMDEF XML document into a ParamDef

The package does not decode binary param rows and does not touch the
filesystem; callers supply text and receive values.
*/
package paramdex
