// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package jplace_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/metabar/jplace"
)

var testFile = `{
	"version": 3,
	"tree": "((A:0.2{0},B:0.09{1}):0.7{2},C:0.7{3}){4};",
	"placements": [
		{
			"p": [
				[1, -2578.16, 0.9, 0.004, 0.0003],
				[2, -2580.15, 0.1, 0.001, 0.0005]
			],
			"n": ["frag1"]
		},
		{
			"p": [[3, -1456.11, 1.0, 0.002, 0.0001]],
			"nm": [["frag2", 3]]
		}
	],
	"fields": [
		"edge_num", "likelihood", "like_weight_ratio",
		"distal_length", "pendant_length"
	],
	"metadata": {"invocation": "sepp run"}
}`

func TestRead(t *testing.T) {
	p, err := jplace.Read(strings.NewReader(testFile))
	if err != nil {
		t.Fatalf("unable to read placements: %v", err)
	}

	if v := p.Version(); v != 3 {
		t.Errorf("version: got %d, want 3", v)
	}
	if tr := p.Tree(); tr != "((A:0.2{0},B:0.09{1}):0.7{2},C:0.7{3}){4};" {
		t.Errorf("reference tree: got %q", tr)
	}

	frags := []string{"frag1", "frag2"}
	if g := p.Fragments(); !reflect.DeepEqual(g, frags) {
		t.Errorf("fragments: got %v, want %v", g, frags)
	}

	f := p.Fragment("frag1")
	if f == nil {
		t.Fatalf("fragment %q not found", "frag1")
	}
	if len(f.Places) != 2 {
		t.Fatalf("fragment %q: got %d locations, want 2", f.Name, len(f.Places))
	}
	if f.Mult != 1 {
		t.Errorf("fragment %q: got multiplicity %.3f, want 1", f.Name, f.Mult)
	}
	best := f.Best()
	if best.Edge != 1 {
		t.Errorf("fragment %q: best placement at edge %d, want 1", f.Name, best.Edge)
	}
	if math.Abs(best.Weight-0.9) > 1e-12 {
		t.Errorf("fragment %q: best placement weight %.3f, want 0.9", f.Name, best.Weight)
	}
	if math.Abs(best.Likelihood+2578.16) > 1e-12 {
		t.Errorf("fragment %q: likelihood %.3f, want -2578.16", f.Name, best.Likelihood)
	}
	if math.Abs(best.PendantLen-0.0003) > 1e-12 {
		t.Errorf("fragment %q: pendant length %.6f, want 0.0003", f.Name, best.PendantLen)
	}

	f = p.Fragment("frag2")
	if f == nil {
		t.Fatalf("fragment %q not found", "frag2")
	}
	if f.Mult != 3 {
		t.Errorf("fragment %q: got multiplicity %.3f, want 3", f.Name, f.Mult)
	}
	if best := f.Best(); best.Edge != 3 {
		t.Errorf("fragment %q: best placement at edge %d, want 3", f.Name, best.Edge)
	}

	if f := p.Fragment("no-frag"); f != nil {
		t.Errorf("fragment %q: got %v, want nil", "no-frag", f)
	}
}

func TestReadError(t *testing.T) {
	data := map[string]string{
		"bad version": `{
			"version": 7,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [{"p": [[0, 1.0]], "n": ["f"]}],
			"fields": ["edge_num", "like_weight_ratio"]
		}`,
		"missing field": `{
			"version": 3,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [{"p": [[0, -100.0]], "n": ["f"]}],
			"fields": ["edge_num", "likelihood"]
		}`,
		"no locations": `{
			"version": 3,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [{"p": [], "n": ["f"]}],
			"fields": ["edge_num", "like_weight_ratio"]
		}`,
		"uneven values": `{
			"version": 3,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [{"p": [[0, 1.0, 0.5]], "n": ["f"]}],
			"fields": ["edge_num", "like_weight_ratio"]
		}`,
		"no name": `{
			"version": 3,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [{"p": [[0, 1.0]]}],
			"fields": ["edge_num", "like_weight_ratio"]
		}`,
		"repeated name": `{
			"version": 3,
			"tree": "(A:0.2{0},B:0.09{1}){2};",
			"placements": [
				{"p": [[0, 1.0]], "n": ["f"]},
				{"p": [[1, 1.0]], "n": ["f"]}
			],
			"fields": ["edge_num", "like_weight_ratio"]
		}`,
		"invalid json": `{ "version": 3, `,
	}

	for name, d := range data {
		if _, err := jplace.Read(strings.NewReader(d)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
