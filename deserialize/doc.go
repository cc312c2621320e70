// File: doc.go
// Title: Paramdef Deserialization Package Documentation
// Description: Documents the deserialize package which turns PARAMDEF XML
//              documents into paramdex.ParamDef values, running every field
//              declaration through the fielddef parser.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-15 v0.1.0: Initial deserializer

/*
Package deserialize reads PARAMDEF XML documents into ParamDef values.

Input is the document text; the package owns no file or network I/O. The
document's header elements (ParamType, DataVersion, BigEndian, Unicode,
FormatVersion) populate the ParamDef header, and every element under Fields
contributes one ParamField: its Def attribute is parsed by the fielddef
package and its child elements supply the optional editor metadata.

	def, err := deserialize.Def(xmlText)

Fields whose type keyword is unknown come back as fielddef.Unrecognized
values rather than errors; genuinely malformed declarations fail the whole
document, with the field index and declaration text in the error chain.
*/
package deserialize
