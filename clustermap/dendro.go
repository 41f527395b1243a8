// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clustermap

import (
	"github.com/js-arias/metabar/cluster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A dendroPlot is a dendrogram
// drawn at a margin of a heat map.
// The dendrogram of the rows
// is drawn at the left of the map,
// growing to the left,
// and the dendrogram of the columns
// is drawn at the top,
// growing upwards.
type dendroPlot struct {
	root *cluster.Node
	at   []int // position of each data row in the heat map
	base float64
	size float64
	max  float64
	rows bool
	sty  draw.LineStyle
}

func newDendroPlot(dg *cluster.Dendrogram, leaves int, rows bool, base, size float64) *dendroPlot {
	at := make([]int, leaves)
	for i, r := range dg.Order() {
		at[r] = i
	}

	max := dg.Root().Height
	if max <= 0 {
		max = 1
	}

	return &dendroPlot{
		root: dg.Root(),
		at:   at,
		base: base,
		size: size,
		max:  max,
		rows: rows,
		sty:  plotter.DefaultLineStyle,
	}
}

// DataRange implements the plot.DataRanger interface.
func (dp *dendroPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	leaves := float64(len(dp.at))
	if dp.rows {
		return dp.base - dp.size, dp.base, 0, leaves
	}
	return 0, leaves, dp.base, dp.base + dp.size
}

// Plot implements the plot.Plotter interface.
func (dp *dendroPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.SetLineStyle(dp.sty)
	dp.draw(dp.root, c, trX, trY)
}

// draw strokes the connections
// between a node and its descendants
// and returns the location of the node
// on the leaf axis
// and on the height axis.
func (dp *dendroPlot) draw(n *cluster.Node, c draw.Canvas, trX, trY func(float64) vg.Length) (leaf, height float64) {
	if n.Left == nil && n.Right == nil {
		return float64(dp.at[n.Row]) + 0.5, dp.base
	}

	lLeaf, lHeight := dp.draw(n.Left, c, trX, trY)
	rLeaf, rHeight := dp.draw(n.Right, c, trX, trY)

	height = dp.base - n.Height*dp.size/dp.max
	if !dp.rows {
		height = dp.base + n.Height*dp.size/dp.max
	}

	var p vg.Path
	if dp.rows {
		p.Move(vg.Point{X: trX(lHeight), Y: trY(lLeaf)})
		p.Line(vg.Point{X: trX(height), Y: trY(lLeaf)})
		p.Line(vg.Point{X: trX(height), Y: trY(rLeaf)})
		p.Line(vg.Point{X: trX(rHeight), Y: trY(rLeaf)})
	} else {
		p.Move(vg.Point{X: trX(lLeaf), Y: trY(lHeight)})
		p.Line(vg.Point{X: trX(lLeaf), Y: trY(height)})
		p.Line(vg.Point{X: trX(rLeaf), Y: trY(height)})
		p.Line(vg.Point{X: trX(rLeaf), Y: trY(rHeight)})
	}
	c.Stroke(p)

	return (lLeaf + rLeaf) / 2, height
}
