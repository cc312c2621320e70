// File: doc.go
// Title: String Utilities Package Documentation
// Description: Documents the small string helper package shared by the
//              paramdex parsing packages.
// Author: soulskit
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial utilities

// Package stringx provides small string predicates used across the
// paramdex parsing packages: emptiness, blankness and digit checks that
// the standard library does not offer directly.
package stringx
