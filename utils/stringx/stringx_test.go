// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Tests for the string predicates shared by the parsing
//              packages.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial utility tests

package stringx

import "testing"

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("IsEmpty(\"\") = false")
	}
	if IsEmpty(" ") || IsEmpty("x") {
		t.Error("IsEmpty true for non-empty input")
	}
}

func TestIsBlank(t *testing.T) {
	blank := []string{"", " ", "\t", " \t\n ", " "}
	notBlank := []string{"x", " x ", "0"}

	for _, s := range blank {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false, want true", s)
		}
		if IsNotBlank(s) {
			t.Errorf("IsNotBlank(%q) = true, want false", s)
		}
	}
	for _, s := range notBlank {
		if IsBlank(s) {
			t.Errorf("IsBlank(%q) = true, want false", s)
		}
		if !IsNotBlank(s) {
			t.Errorf("IsNotBlank(%q) = false, want true", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	numeric := []string{"0", "16", "999999"}
	notNumeric := []string{"", "-1", "1.5", "abc", "1a", " 1"}

	for _, s := range numeric {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range notNumeric {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}
