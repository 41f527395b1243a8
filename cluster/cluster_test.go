// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/metabar/cluster"
)

func TestCorrDist(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 2, 1},
		{5, 5, 5},
	}
	d := cluster.CorrDist(rows)

	want := [][]float64{
		{0, 0, 2, 1},
		{0, 0, 2, 1},
		{2, 2, 0, 1},
		{1, 1, 1, 0},
	}
	for i := range want {
		for j := range want[i] {
			if math.Abs(d[i][j]-want[i][j]) > 1e-12 {
				t.Errorf("distance [%d][%d]: got %.6f, want %.6f", i, j, d[i][j], want[i][j])
			}
		}
	}
}

func TestAverage(t *testing.T) {
	d := [][]float64{
		{0, 0.9, 0.1},
		{0.9, 0, 0.8},
		{0.1, 0.8, 0},
	}
	dg := cluster.Average(d)

	order := []int{0, 2, 1}
	if g := dg.Order(); !reflect.DeepEqual(g, order) {
		t.Errorf("leaf order: got %v, want %v", g, order)
	}

	root := dg.Root()
	if math.Abs(root.Height-0.85) > 1e-12 {
		t.Errorf("root height: got %.6f, want %.6f", root.Height, 0.85)
	}
	if root.Row != -1 {
		t.Errorf("root row: got %d, want -1", root.Row)
	}
	if math.Abs(root.Left.Height-0.1) > 1e-12 {
		t.Errorf("first merge height: got %.6f, want %.6f", root.Left.Height, 0.1)
	}
	if root.Right.Row != 1 {
		t.Errorf("last joined terminal: got row %d, want 1", root.Right.Row)
	}
}

func TestAverageSingle(t *testing.T) {
	dg := cluster.Average([][]float64{{0}})
	if g := dg.Order(); !reflect.DeepEqual(g, []int{0}) {
		t.Errorf("leaf order: got %v, want [0]", g)
	}
	root := dg.Root()
	if root.Left != nil || root.Right != nil {
		t.Errorf("single row: expecting a terminal root")
	}
	if root.Row != 0 {
		t.Errorf("single row: got row %d, want 0", root.Row)
	}
}
