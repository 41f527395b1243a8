// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package abundance implements reading and writing
// of taxonomic abundance tables,
// the per-level CSV files exported from a metabarcoding study
// (one column per taxon,
// one row per sample).
package abundance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoPrefix is the error produced
// when no column of an abundance table
// starts with the taxon prefix.
// It usually indicates a mismatch
// between the table
// and the reference database version
// used for the taxonomic assignments.
var ErrNoPrefix = errors.New("no taxon column with prefix")

// A Table is a taxonomic abundance table,
// with samples as rows
// and taxa as columns.
//
// Taxon columns are kept in the order of the source file.
// As a rename of the unassigned category
// can produce a repeated taxon name,
// columns are stored by position
// instead of by name.
type Table struct {
	samples []string
	taxa    []string
	m       [][]float64
}

// ReadCSV reads an abundance table from a CSV file
// keeping only the columns of the taxa
// marked with the given taxon prefix.
//
// The sample identifiers are taken from the column
// with the header "index",
// or from the first column
// if no index column is defined.
// A column for the unassigned category
// (a label equal to "Unassigned"
// or starting with "Unassigned;")
// is renamed using the taxon prefix
// before the columns are selected.
//
// Here is an example file:
//
//	index,p__Bacteroidota,p__Firmicutes,Unassigned;__
//	sample1,104,2295,7
//	sample2,320,1605,0
func ReadCSV(r io.Reader, prefix string) (*Table, error) {
	if prefix == "" {
		return nil, errors.New("undefined taxon prefix")
	}

	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	id := 0
	for i, h := range head {
		if strings.ToLower(strings.TrimSpace(h)) == "index" {
			id = i
			break
		}
	}

	var cols []int
	var taxa []string
	var skipped []string
	for i, h := range head {
		if i == id {
			continue
		}
		h = strings.TrimSpace(h)
		tx := renameUnassigned(h, prefix)
		if !strings.HasPrefix(tx, prefix) {
			skipped = append(skipped, h)
			continue
		}
		cols = append(cols, i)
		taxa = append(taxa, tx)
	}
	if len(taxa) == 0 {
		return nil, fmt.Errorf("%w %q: found columns: %s", ErrNoPrefix, prefix, strings.Join(skipped, ", "))
	}

	t := &Table{
		taxa: taxa,
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		sample := strings.TrimSpace(row[id])
		if sample == "" {
			continue
		}

		vals := make([]float64, len(cols))
		for j, c := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: taxon %q: %v", ln, t.taxa[j], err)
			}
			vals[j] = v
		}
		t.samples = append(t.samples, sample)
		t.m = append(t.m, vals)
	}

	return t, nil
}

func renameUnassigned(label, prefix string) string {
	if label == "Unassigned" || strings.HasPrefix(label, "Unassigned;") {
		return prefix + "Unassigned"
	}
	return label
}

// Normalize scales each sample
// to the proportion of the sample total,
// so every row with a nonzero total
// will sum to one.
// Samples in which all taxa are zero
// are left untouched.
func (t *Table) Normalize() {
	for _, row := range t.m {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j, v := range row {
			row[j] = v / sum
		}
	}
}

// Log2 transforms each value
// to its base 2 logarithm.
// As the logarithm of zero is undefined,
// zero values are set to the sentinel value
// (in a table of proportions
// a sentinel of -16 is equivalent
// to a proportion of about 0.000015).
func (t *Table) Log2(sentinel float64) {
	for _, row := range t.m {
		for j, v := range row {
			if v == 0 {
				row[j] = sentinel
				continue
			}
			row[j] = math.Log2(v)
		}
	}
}

// Matrix returns the transpose of the table,
// with taxa as rows
// and samples as columns,
// the orientation used to store
// and to draw the table.
func (t *Table) Matrix() *Matrix {
	m := make([][]float64, len(t.taxa))
	for i := range t.taxa {
		m[i] = make([]float64, len(t.samples))
		for j := range t.samples {
			m[i][j] = t.m[j][i]
		}
	}

	return &Matrix{
		taxa:    append([]string{}, t.taxa...),
		samples: append([]string{}, t.samples...),
		m:       m,
	}
}

// Samples returns the sample identifiers
// in the order of the source file.
func (t *Table) Samples() []string {
	return append([]string{}, t.samples...)
}

// Taxa returns the taxon names
// in the order of the source file.
func (t *Table) Taxa() []string {
	return append([]string{}, t.taxa...)
}

// Value returns the value
// for a given sample and taxon.
// If the taxon name is repeated
// it returns the first column with the name.
func (t *Table) Value(sample, taxon string) float64 {
	s := -1
	for i, n := range t.samples {
		if n == sample {
			s = i
			break
		}
	}
	if s < 0 {
		return 0
	}

	for j, n := range t.taxa {
		if n == taxon {
			return t.m[s][j]
		}
	}
	return 0
}

// Taxonomic ranks used for the level files
// of a taxonomic classification,
// from kingdom (level 1)
// to species (level 7).
var ranks = []string{"k", "p", "c", "o", "f", "g", "s"}

// LevelPrefix returns the taxon prefix
// used by the greengenes-like taxonomies
// for a taxonomic level
// (for example "p__",
// the phylum marker,
// for level 2).
// It returns an empty string
// for an unknown level,
// in that case the prefix must be given explicitly
// by the user.
func LevelPrefix(level int) string {
	if level < 1 || level > len(ranks) {
		return ""
	}
	return ranks[level-1] + "__"
}

// LevelFile returns the conventional name
// of an abundance table file
// for a taxonomic level,
// for example "level-2.csv"
// for the phylum level.
func LevelFile(level int) string {
	return fmt.Sprintf("level-%d.csv", level)
}
