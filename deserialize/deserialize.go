// File: deserialize.go
// Title: Paramdef XML Deserializer
// Description: Implements deserialization of PARAMDEF XML documents into
//              ParamDef values: header extraction, field iteration and
//              per-field metadata handling with wrapped error context.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-15 v0.1.0: Initial deserializer

package deserialize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/soulskit/paramdex"
	"github.com/soulskit/paramdex/fielddef"
	pdlog "github.com/soulskit/paramdex/log"
	"github.com/soulskit/paramdex/utils/stringx"
)

// rootTag is the required document root element name
const rootTag = "PARAMDEF"

// ErrMissingData reports a required element or attribute that the document
// does not carry. Wrapped errors name the missing item.
var ErrMissingData = errors.New("missing required paramdef data")

var logger = pdlog.GetDefault().WithField("component", "deserialize")

// Def deserializes one PARAMDEF XML document into a ParamDef
func Def(input string) (*paramdex.ParamDef, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(input); err != nil {
		return nil, fmt.Errorf("parsing paramdef XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, fmt.Errorf("%w: root element %s", ErrMissingData, rootTag)
	}

	header := make(map[string]string)
	var fieldsEl *etree.Element
	for _, child := range root.ChildElements() {
		if child.Tag == "Fields" {
			fieldsEl = child
			continue
		}
		text := strings.TrimSpace(child.Text())
		if stringx.IsBlank(text) {
			return nil, fmt.Errorf("blank element %q in paramdef header", child.Tag)
		}
		header[child.Tag] = text
	}
	if fieldsEl == nil {
		return nil, fmt.Errorf("%w: Fields", ErrMissingData)
	}

	paramType, err := headerValue(header, "ParamType")
	if err != nil {
		return nil, err
	}
	dataVersion, err := headerUint32(header, "DataVersion")
	if err != nil {
		return nil, err
	}
	bigEndian, err := headerBool(header, "BigEndian")
	if err != nil {
		return nil, err
	}
	unicode, err := headerBool(header, "Unicode")
	if err != nil {
		return nil, err
	}
	formatVersion, err := headerUint32(header, "FormatVersion")
	if err != nil {
		return nil, err
	}

	def := &paramdex.ParamDef{
		ParamType:     paramType,
		DataVersion:   dataVersion,
		Endian:        paramdex.EndianFromBool(bigEndian),
		StringFormat:  paramdex.StringFormatFromBool(unicode),
		FormatVersion: formatVersion,
	}

	for i, fieldEl := range fieldsEl.ChildElements() {
		field, err := parseFieldElement(fieldEl)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		def.Fields = append(def.Fields, *field)
	}

	logger.Debug("deserialized paramdef", pdlog.Fields{
		"param_type": def.ParamType,
		"fields":     len(def.Fields),
	})

	return def, nil
}

// parseFieldElement builds one ParamField from a Field element: the Def
// attribute goes through the declaration parser, the child elements carry
// the optional editor metadata.
func parseFieldElement(fieldEl *etree.Element) (*paramdex.ParamField, error) {
	defAttr := fieldEl.SelectAttr("Def")
	if defAttr == nil {
		return nil, fmt.Errorf("%w: Def attribute", ErrMissingData)
	}

	decl, err := fielddef.Parse(defAttr.Value)
	if err != nil {
		return nil, fmt.Errorf("def %q: %w", defAttr.Value, err)
	}

	meta := make(map[string]string)
	for _, child := range fieldEl.ChildElements() {
		if text := strings.TrimSpace(child.Text()); stringx.IsNotBlank(text) {
			meta[child.Tag] = text
		}
	}

	field := &paramdex.ParamField{
		Def:           decl,
		DisplayName:   meta["DisplayName"],
		Enum:          meta["Enum"],
		Description:   meta["Description"],
		DisplayFormat: meta["DisplayFormat"],
	}

	if s, ok := meta["EditFlags"]; ok {
		flags := paramdex.ParseEditFlags(s)
		field.EditFlags = &flags
	}
	if field.Minimum, err = metaFloat(meta, "Minimum"); err != nil {
		return nil, err
	}
	if field.Maximum, err = metaFloat(meta, "Maximum"); err != nil {
		return nil, err
	}
	if field.Increment, err = metaFloat(meta, "Increment"); err != nil {
		return nil, err
	}
	if s, ok := meta["SortID"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("SortID %q: %w", s, err)
		}
		field.SortID = &n
	}

	return field, nil
}

// metaFloat returns an optional metadata element as a float, nil if absent
func metaFloat(meta map[string]string, key string) (*float64, error) {
	s, ok := meta[key]
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", key, s, err)
	}
	return &v, nil
}

// headerValue returns a required header element's text
func headerValue(header map[string]string, key string) (string, error) {
	v, ok := header[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingData, key)
	}
	return v, nil
}

// headerUint32 returns a required header element as a uint32
func headerUint32(header map[string]string, key string) (uint32, error) {
	v, err := headerValue(header, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, v, err)
	}
	return uint32(n), nil
}

// headerBool returns a required header element as a bool
func headerBool(header map[string]string, key string) (bool, error) {
	v, err := headerValue(header, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s %q: %w", key, v, err)
	}
	return b, nil
}
