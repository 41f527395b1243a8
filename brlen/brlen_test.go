// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package brlen_test

import (
	"testing"

	"github.com/js-arias/metabar/brlen"
)

func TestUnits(t *testing.T) {
	if u := brlen.Units(0.0123); u != 12300 {
		t.Errorf("units: got %d, want %d", u, 12300)
	}
	if u := brlen.Units(0); u != 0 {
		t.Errorf("units: got %d, want %d", u, 0)
	}
}

func TestLength(t *testing.T) {
	if l := brlen.Length(250_000); l != 0.25 {
		t.Errorf("length: got %.6f, want %.6f", l, 0.25)
	}
}

func TestFormat(t *testing.T) {
	if s := brlen.Format(250_000); s != "0.25" {
		t.Errorf("format: got %q, want %q", s, "0.25")
	}
	if s := brlen.Format(0); s != "0.00" {
		t.Errorf("format: got %q, want %q", s, "0.00")
	}
}
