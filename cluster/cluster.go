// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster implements
// an agglomerative hierarchical clustering
// of the rows of a data matrix.
package cluster

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CorrDist returns the pairwise distance matrix
// of the rows of a data matrix,
// using the correlation distance,
// that is,
// one minus the Pearson correlation
// between each pair of rows.
// If a correlation is undefined
// (for example,
// if a row has zero variance)
// the distance will be set to one.
func CorrDist(rows [][]float64) [][]float64 {
	d := make([][]float64, len(rows))
	for i := range d {
		d[i] = make([]float64, len(rows))
	}

	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			v := 1 - stat.Correlation(rows[i], rows[j], nil)
			if math.IsNaN(v) {
				v = 1
			}
			d[i][j] = v
			d[j][i] = v
		}
	}
	return d
}

// A Node is a node of a dendrogram.
// In a terminal node
// both descendants are nil
// and Row is the row of the data matrix
// assigned to the node.
// In an internal node
// Row is set to -1
// and Height is the distance
// between the two merged clusters.
type Node struct {
	Left   *Node
	Right  *Node
	Row    int
	Height float64
}

// A Dendrogram is a rooted binary tree
// that results from a hierarchical clustering.
type Dendrogram struct {
	root *Node
}

// Average returns the dendrogram
// built from a distance matrix
// by average linkage clustering
// (i.e. UPGMA),
// in which the distance between two clusters
// is the mean of the distances
// between their members.
// Ties are solved
// picking the first pair found.
func Average(d [][]float64) *Dendrogram {
	n := len(d)
	dg := &Dendrogram{}
	if n == 0 {
		return dg
	}

	dist := make([][]float64, n)
	for i, r := range d {
		dist[i] = append([]float64(nil), r...)
	}

	nodes := make([]*Node, n)
	sizes := make([]int, n)
	act := make([]int, n)
	for i := range nodes {
		nodes[i] = &Node{Row: i}
		sizes[i] = 1
		act[i] = i
	}

	for len(act) > 1 {
		min := math.Inf(1)
		bx, by := 0, 1
		for x := range act {
			for y := x + 1; y < len(act); y++ {
				if v := dist[act[x]][act[y]]; v < min {
					min = v
					bx, by = x, y
				}
			}
		}
		i, j := act[bx], act[by]

		// the distance from any other cluster
		// to the merged cluster
		// is the size weighted mean
		// of the distances to its members
		for _, k := range act {
			if k == i || k == j {
				continue
			}
			v := (dist[k][i]*float64(sizes[i]) + dist[k][j]*float64(sizes[j])) / float64(sizes[i]+sizes[j])
			dist[k][i] = v
			dist[i][k] = v
		}

		nodes[i] = &Node{
			Left:   nodes[i],
			Right:  nodes[j],
			Row:    -1,
			Height: min,
		}
		sizes[i] += sizes[j]
		act = append(act[:by], act[by+1:]...)
	}

	dg.root = nodes[act[0]]
	return dg
}

// Root returns the root node of a dendrogram.
func (d *Dendrogram) Root() *Node {
	return d.root
}

// Order returns the rows of the data matrix
// in the order in which they appear
// as terminals of the dendrogram,
// from left to right.
func (d *Dendrogram) Order() []int {
	if d.root == nil {
		return nil
	}
	return d.root.leafOrder(nil)
}

func (n *Node) leafOrder(ls []int) []int {
	if n.Left == nil && n.Right == nil {
		return append(ls, n.Row)
	}
	ls = n.Left.leafOrder(ls)
	return n.Right.leafOrder(ls)
}
