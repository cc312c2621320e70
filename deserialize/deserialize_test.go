// File: deserialize_test.go
// Title: Paramdef Deserializer Unit Tests
// Description: Tests for PARAMDEF XML deserialization: header extraction,
//              field declaration parsing, editor metadata and the error
//              cases for malformed or incomplete documents.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-15 v0.1.0: Initial deserializer tests

package deserialize

import (
	"errors"
	"strings"
	"testing"

	"github.com/soulskit/paramdex"
	"github.com/soulskit/paramdex/fielddef"
)

const weaponParamdef = `<?xml version="1.0" encoding="utf-8"?>
<PARAMDEF>
  <ParamType>EQUIP_PARAM_WEAPON_ST</ParamType>
  <DataVersion>1</DataVersion>
  <BigEndian>False</BigEndian>
  <Unicode>True</Unicode>
  <FormatVersion>203</FormatVersion>
  <Fields>
    <Field Def="u32 behaviorVariationId = 0">
      <DisplayName>Behavior Variation ID</DisplayName>
      <Description>Selects the behavior variation used by this weapon.</Description>
      <EditFlags>Wrap</EditFlags>
      <Minimum>0</Minimum>
      <Maximum>999999</Maximum>
      <Increment>1</Increment>
      <SortID>100</SortID>
    </Field>
    <Field Def="s16 atkBasePhysics = 100" />
    <Field Def="u8 rarity:7" />
    <Field Def="dummy8 pad0[4]" />
    <Field Def="fixstrW name[32]" />
    <Field Def="customtype99 foo bar" />
  </Fields>
</PARAMDEF>`

func TestDef(t *testing.T) {
	def, err := Def(weaponParamdef)
	if err != nil {
		t.Fatalf("Def failed: %v", err)
	}

	if def.ParamType != "EQUIP_PARAM_WEAPON_ST" {
		t.Errorf("ParamType = %q", def.ParamType)
	}
	if def.DataVersion != 1 {
		t.Errorf("DataVersion = %d", def.DataVersion)
	}
	if def.Endian != paramdex.EndianLittle {
		t.Errorf("Endian = %v", def.Endian)
	}
	if def.StringFormat != paramdex.FormatUTF16 {
		t.Errorf("StringFormat = %v", def.StringFormat)
	}
	if def.FormatVersion != 203 {
		t.Errorf("FormatVersion = %d", def.FormatVersion)
	}
	if len(def.Fields) != 6 {
		t.Fatalf("len(Fields) = %d, want 6", len(def.Fields))
	}

	first := def.Fields[0]
	simple, ok := first.Def.(*fielddef.Simple)
	if !ok {
		t.Fatalf("first field is %T, want *fielddef.Simple", first.Def)
	}
	if simple.Name != "behaviorVariationId" {
		t.Errorf("first field name = %q", simple.Name)
	}
	if simple.Default == nil || *simple.Default != 0 {
		t.Errorf("first field default = %v", simple.Default)
	}
	if first.DisplayName != "Behavior Variation ID" {
		t.Errorf("DisplayName = %q", first.DisplayName)
	}
	if first.EditFlags == nil || !first.EditFlags.Wrap || first.EditFlags.Lock {
		t.Errorf("EditFlags = %+v", first.EditFlags)
	}
	if first.Maximum == nil || *first.Maximum != 999999 {
		t.Errorf("Maximum = %v", first.Maximum)
	}
	if first.SortID == nil || *first.SortID != 100 {
		t.Errorf("SortID = %v", first.SortID)
	}

	if bits, ok := def.Fields[2].Def.(*fielddef.Simple); !ok || bits.BitSize == nil || *bits.BitSize != 7 {
		t.Errorf("rarity field = %#v", def.Fields[2].Def)
	}
	if _, ok := def.Fields[3].Def.(*fielddef.Dummy); !ok {
		t.Errorf("pad field = %T, want *fielddef.Dummy", def.Fields[3].Def)
	}
	if fs, ok := def.Fields[4].Def.(*fielddef.FixedString); !ok || !fs.Wide || fs.ArrayLength != 32 {
		t.Errorf("name field = %#v", def.Fields[4].Def)
	}
	if unk, ok := def.Fields[5].Def.(*fielddef.Unrecognized); !ok || unk.RawType != "customtype99" {
		t.Errorf("unknown field = %#v", def.Fields[5].Def)
	}

	if f := def.Field("atkBasePhysics"); f == nil {
		t.Error("Field(atkBasePhysics) = nil")
	}
	if f := def.Field("noSuchField"); f != nil {
		t.Errorf("Field(noSuchField) = %+v, want nil", f)
	}
}

func TestDef_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Malformed XML",
			input: "<PARAMDEF><Fields>",
		},
		{
			name:  "Wrong root element",
			input: "<PARAMS><Fields/></PARAMS>",
		},
		{
			name: "Missing Fields element",
			input: `<PARAMDEF>
				<ParamType>X</ParamType><DataVersion>1</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion>
			</PARAMDEF>`,
		},
		{
			name: "Missing ParamType",
			input: `<PARAMDEF>
				<DataVersion>1</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion><Fields/>
			</PARAMDEF>`,
		},
		{
			name: "Blank header element",
			input: `<PARAMDEF>
				<ParamType> </ParamType><DataVersion>1</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion><Fields/>
			</PARAMDEF>`,
		},
		{
			name: "Non-numeric DataVersion",
			input: `<PARAMDEF>
				<ParamType>X</ParamType><DataVersion>one</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion><Fields/>
			</PARAMDEF>`,
		},
		{
			name: "Field without Def attribute",
			input: `<PARAMDEF>
				<ParamType>X</ParamType><DataVersion>1</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion>
				<Fields><Field/></Fields>
			</PARAMDEF>`,
		},
		{
			name: "Bad SortID",
			input: `<PARAMDEF>
				<ParamType>X</ParamType><DataVersion>1</DataVersion>
				<BigEndian>False</BigEndian><Unicode>True</Unicode>
				<FormatVersion>100</FormatVersion>
				<Fields><Field Def="u32 x"><SortID>first</SortID></Field></Fields>
			</PARAMDEF>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Def(tt.input); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDef_FieldSyntaxError(t *testing.T) {
	input := `<PARAMDEF>
		<ParamType>X</ParamType><DataVersion>1</DataVersion>
		<BigEndian>False</BigEndian><Unicode>True</Unicode>
		<FormatVersion>100</FormatVersion>
		<Fields><Field Def="u9 broken" /></Fields>
	</PARAMDEF>`

	_, err := Def(input)
	if err == nil {
		t.Fatal("expected error for invalid field def")
	}
	var serr *fielddef.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, expected wrapped *fielddef.SyntaxError", err)
	}
	if !strings.Contains(err.Error(), "u9 broken") {
		t.Errorf("error does not name the offending def: %v", err)
	}
}

func TestDef_MissingDataSentinel(t *testing.T) {
	_, err := Def("<PARAMDEF><Fields/></PARAMDEF>")
	if !errors.Is(err, ErrMissingData) {
		t.Errorf("error = %v, expected ErrMissingData in chain", err)
	}
}
