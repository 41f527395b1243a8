// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package brlen handles branch lengths
// in substitutions per site.
//
// As trees store branch lengths as integers,
// the lengths are scaled,
// so a unit is a millionth of a substitution per site.
package brlen

import "strconv"

// Scale is the number of branch length units
// per substitution per site.
const Scale = 1_000_000

// Units returns the scaled value
// of a branch length
// given in substitutions per site.
func Units(v float64) int64 {
	return int64(v * Scale)
}

// Length returns the branch length
// in substitutions per site
// of a scaled value.
func Length(a int64) float64 {
	return float64(a) / Scale
}

// Format returns a string representation
// of a scaled branch length,
// in substitutions per site.
func Format(a int64) string {
	return strconv.FormatFloat(Length(a), 'f', 2, 64)
}
