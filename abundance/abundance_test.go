// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package abundance_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/metabar/abundance"
)

var testTable = `index,p__A,p__B,Unassigned;__
S1,2,2,0
S2,0,5,5
`

func TestReadCSV(t *testing.T) {
	tab, err := abundance.ReadCSV(strings.NewReader(testTable), "p__")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}

	samples := []string{"S1", "S2"}
	if g := tab.Samples(); !reflect.DeepEqual(g, samples) {
		t.Errorf("samples: got %v, want %v", g, samples)
	}

	taxa := []string{"p__A", "p__B", "p__Unassigned"}
	if g := tab.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("taxa: got %v, want %v", g, taxa)
	}

	vals := map[string]map[string]float64{
		"S1": {"p__A": 2, "p__B": 2, "p__Unassigned": 0},
		"S2": {"p__A": 0, "p__B": 5, "p__Unassigned": 5},
	}
	testValues(t, "read", tab, vals)
}

func TestReadCSVNoPrefix(t *testing.T) {
	data := `index,D_1__A,D_1__B,Unassigned;__
S1,2,2,0
`
	_, err := abundance.ReadCSV(strings.NewReader(data), "p__")
	if err == nil {
		t.Fatalf("reading without prefixed columns: expecting error %q", abundance.ErrNoPrefix)
	}
	if !errors.Is(err, abundance.ErrNoPrefix) {
		t.Errorf("reading without prefixed columns: got error %q, want %q", err, abundance.ErrNoPrefix)
	}
	for _, c := range []string{"D_1__A", "D_1__B"} {
		if !strings.Contains(err.Error(), c) {
			t.Errorf("error %q: expecting column %q", err, c)
		}
	}
}

func TestNormalize(t *testing.T) {
	data := `index,p__A,p__B,Unassigned;__
S1,2,2,0
S2,0,5,5
S3,0,0,0
`
	tab, err := abundance.ReadCSV(strings.NewReader(data), "p__")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	tab.Normalize()

	for _, s := range []string{"S1", "S2"} {
		var sum float64
		for _, tx := range tab.Taxa() {
			sum += tab.Value(s, tx)
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("sample %s: row sum: got %.6f, want 1", s, sum)
		}
	}

	// a sample in which all taxa are zero
	// is kept as all zeros
	for _, tx := range tab.Taxa() {
		if v := tab.Value("S3", tx); v != 0 {
			t.Errorf("sample S3: taxon %q: got %.6f, want 0", tx, v)
		}
	}

	vals := map[string]map[string]float64{
		"S1": {"p__A": 0.5, "p__B": 0.5, "p__Unassigned": 0},
		"S2": {"p__A": 0, "p__B": 0.5, "p__Unassigned": 0.5},
	}
	testValues(t, "normalize", tab, vals)
}

func TestLog2(t *testing.T) {
	tab, err := abundance.ReadCSV(strings.NewReader(testTable), "p__")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	tab.Normalize()
	tab.Log2(-16)

	vals := map[string]map[string]float64{
		"S1": {"p__A": -1, "p__B": -1, "p__Unassigned": -16},
		"S2": {"p__A": -16, "p__B": -1, "p__Unassigned": -1},
	}
	testValues(t, "log2", tab, vals)
}

func TestMatrixTSV(t *testing.T) {
	tab, err := abundance.ReadCSV(strings.NewReader(testTable), "p__")
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	tab.Normalize()
	m := tab.Matrix()

	if g := m.Taxa(); !reflect.DeepEqual(g, []string{"p__A", "p__B", "p__Unassigned"}) {
		t.Errorf("matrix taxa: got %v", g)
	}
	if g := m.Samples(); !reflect.DeepEqual(g, []string{"S1", "S2"}) {
		t.Errorf("matrix samples: got %v", g)
	}

	rows := [][]float64{
		{0.5, 0},
		{0.5, 0.5},
		{0, 0.5},
	}
	if g := m.Values(); !reflect.DeepEqual(g, rows) {
		t.Errorf("matrix values: got %v, want %v", g, rows)
	}
	for i, r := range rows {
		if g := m.Row(i); !reflect.DeepEqual(g, r) {
			t.Errorf("matrix row %d: got %v, want %v", i, g, r)
		}
	}

	want := "taxon\tS1\tS2\r\n" +
		"p__A\t0.500000\t0.000000\r\n" +
		"p__B\t0.500000\t0.500000\r\n" +
		"p__Unassigned\t0.000000\t0.500000\r\n"

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	if w.String() != want {
		t.Errorf("tsv data: got:\n%s\nwant:\n%s", w.String(), want)
	}

	// repeated writes must be identical
	var nw bytes.Buffer
	if err := m.TSV(&nw); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	if !bytes.Equal(w.Bytes(), nw.Bytes()) {
		t.Errorf("tsv data: repeated writes differ")
	}
}

func TestLevels(t *testing.T) {
	prefixes := map[int]string{
		1: "k__",
		2: "p__",
		3: "c__",
		4: "o__",
		5: "f__",
		6: "g__",
		7: "s__",
		8: "",
		0: "",
	}
	for l, p := range prefixes {
		if g := abundance.LevelPrefix(l); g != p {
			t.Errorf("level %d: got prefix %q, want %q", l, g, p)
		}
	}

	if g := abundance.LevelFile(2); g != "level-2.csv" {
		t.Errorf("level 2: got file %q, want %q", g, "level-2.csv")
	}
}

func testValues(t testing.TB, name string, tab *abundance.Table, vals map[string]map[string]float64) {
	t.Helper()

	for s, txs := range vals {
		for tx, v := range txs {
			g := tab.Value(s, tx)
			if math.Abs(g-v) > 1e-12 {
				t.Errorf("%s: sample %s: taxon %q: got %.6f, want %.6f", name, s, tx, g, v)
			}
		}
	}
}
