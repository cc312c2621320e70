// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string predicates shared by the parsing
//              packages. Unicode-safe where it matters and allocation-free
//              throughout.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation

package stringx

import "unicode"

// IsEmpty returns true if the string has length 0
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains any non-whitespace rune
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsNumeric returns true if the string is non-empty and consists only of
// ASCII decimal digits.
func IsNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
