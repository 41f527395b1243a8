// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package abundance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A Matrix is a transposed abundance table,
// with taxa as rows
// and samples as columns.
type Matrix struct {
	taxa    []string
	samples []string
	m       [][]float64
}

// Samples returns the sample identifiers,
// the columns of the matrix.
func (m *Matrix) Samples() []string {
	return append([]string{}, m.samples...)
}

// Taxa returns the taxon names,
// the rows of the matrix.
func (m *Matrix) Taxa() []string {
	return append([]string{}, m.taxa...)
}

// Row returns the values of the i-th taxon row.
// The returned row is a copy
// and can be modified freely.
func (m *Matrix) Row(i int) []float64 {
	return append([]float64{}, m.m[i]...)
}

// Values returns the values of the matrix,
// one row per taxon.
// The returned rows are copies
// and can be modified freely.
func (m *Matrix) Values() [][]float64 {
	v := make([][]float64, len(m.m))
	for i, row := range m.m {
		v[i] = append([]float64{}, row...)
	}
	return v
}

// TSV writes the matrix to a TSV file,
// one row per taxon,
// one column per sample.
// The output is deterministic:
// repeated writes of the same matrix
// produce identical files.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, m.samples...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, tx := range m.taxa {
		row := make([]string, 0, len(m.samples)+1)
		row = append(row, tx)
		for _, v := range m.m[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
