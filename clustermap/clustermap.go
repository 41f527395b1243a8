// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clustermap implements a clustered heat map,
// a graphic representation of a data matrix
// in which the value of each cell
// is given by a color,
// and rows and columns can be reordered
// by a hierarchical clustering
// shown as dendrograms
// in the margins of the map.
package clustermap

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/metabar/cluster"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default values for the plot parameters.
const (
	defaultDPI      = 300
	defaultFontSize = 8  // points
	defaultSize     = 10 // inches
)

// size of a marginal dendrogram,
// as a fraction of the heat map
const dendroSize = 0.15

// Score indicates the axis used to scale the values
// of a data matrix into standard scores
// (i.e. z-scores)
// before clustering and drawing.
type Score int

const (
	// NoScore uses the values as given.
	NoScore Score = iota

	// RowScore scales the values of each row.
	RowScore

	// ColScore scales the values of each column.
	ColScore
)

// ParseScore returns a score axis
// from a string.
func ParseScore(s string) (Score, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoScore, nil
	case "row", "rows":
		return RowScore, nil
	case "col", "cols", "column", "columns":
		return ColScore, nil
	}
	return NoScore, fmt.Errorf("invalid score axis %q", s)
}

// String returns the name of a score axis.
func (s Score) String() string {
	switch s {
	case NoScore:
		return "none"
	case RowScore:
		return "row"
	case ColScore:
		return "col"
	}
	return "unknown"
}

// A Plot is a clustered heat map of a data matrix.
// The zero value is not usable:
// at least the labels
// and the data values must be defined.
type Plot struct {
	// Labels of the rows and columns
	// of the data matrix.
	RowLabels []string
	ColLabels []string

	// Values of the data matrix,
	// as rows of columns.
	Values [][]float64

	// ClusterRows and ClusterCols indicate
	// if the rows,
	// or the columns,
	// will be ordered by a hierarchical clustering
	// with a dendrogram at the margin of the map.
	ClusterRows bool
	ClusterCols bool

	// Score is the axis used to scale the values
	// into standard scores.
	Score Score

	// ColorMap is the name of the color map
	// used to color the cells.
	// If empty,
	// the iridescent scheme will be used.
	ColorMap string

	// FontSize is the size of the label fonts,
	// in points.
	FontSize float64

	// NoRowTicks and NoColTicks indicate
	// if the row labels,
	// or the column labels,
	// will be omitted.
	NoRowTicks bool
	NoColTicks bool

	// DPI is the resolution of the image,
	// in dots per inch.
	DPI int

	// Width and Height are the size of the image,
	// in inches.
	Width  float64
	Height float64
}

// Render builds the heat map
// and saves it as an image file
// with the indicated name.
// The image format is taken
// from the extension of the file
// and can be JPEG
// (".jpg" or ".jpeg")
// or PNG (".png").
func (cp *Plot) Render(name string) (err error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return fmt.Errorf("heat map %q: unknown image format %q", name, ext)
	}

	p, err := cp.build()
	if err != nil {
		return fmt.Errorf("heat map %q: %v", name, err)
	}

	w, h := cp.Width, cp.Height
	if w <= 0 {
		w = defaultSize
	}
	if h <= 0 {
		h = defaultSize
	}
	dpi := cp.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(img))

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if ext == ".png" {
		if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
			return fmt.Errorf("when writing file %q: %v", name, err)
		}
		return nil
	}
	if _, err := (vgimg.JpegCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("when writing file %q: %v", name, err)
	}
	return nil
}

func (cp *Plot) build() (*plot.Plot, error) {
	rows := len(cp.Values)
	if rows == 0 {
		return nil, errors.New("empty data matrix")
	}
	cols := len(cp.Values[0])
	if cols == 0 {
		return nil, errors.New("empty data matrix")
	}

	vals := make([][]float64, rows)
	for i, r := range cp.Values {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d: got %d values, want %d", i, len(r), cols)
		}
		vals[i] = append([]float64(nil), r...)
	}
	rLabels := append([]string(nil), cp.RowLabels...)
	cLabels := append([]string(nil), cp.ColLabels...)
	if len(rLabels) != rows {
		return nil, fmt.Errorf("got %d row labels, want %d", len(rLabels), rows)
	}
	if len(cLabels) != cols {
		return nil, fmt.Errorf("got %d column labels, want %d", len(cLabels), cols)
	}

	switch cp.Score {
	case RowScore:
		for _, r := range vals {
			zScore(r)
		}
	case ColScore:
		c := make([]float64, rows)
		for j := 0; j < cols; j++ {
			for i, r := range vals {
				c[i] = r[j]
			}
			zScore(c)
			for i, v := range c {
				vals[i][j] = v
			}
		}
	}

	// the clustering is made
	// on the scaled values
	var rowDg, colDg *cluster.Dendrogram
	if cp.ClusterRows {
		rowDg = cluster.Average(cluster.CorrDist(vals))
	}
	if cp.ClusterCols {
		cv := make([][]float64, cols)
		for j := range cv {
			c := make([]float64, rows)
			for i, r := range vals {
				c[i] = r[j]
			}
			cv[j] = c
		}
		colDg = cluster.Average(cluster.CorrDist(cv))
	}

	if rowDg != nil {
		nv := make([][]float64, rows)
		nl := make([]string, rows)
		for i, r := range rowDg.Order() {
			nv[i] = vals[r]
			nl[i] = rLabels[r]
		}
		vals, rLabels = nv, nl
	}
	if colDg != nil {
		ord := colDg.Order()
		for i, r := range vals {
			nr := make([]float64, cols)
			for j, c := range ord {
				nr[j] = r[c]
			}
			vals[i] = nr
		}
		nl := make([]string, cols)
		for j, c := range ord {
			nl[j] = cLabels[c]
		}
		cLabels = nl
	}

	pal, err := colorMap(cp.ColorMap)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Add(plotter.NewHeatMap(grid{v: vals}, pal))

	if rowDg != nil {
		p.Add(newDendroPlot(rowDg, rows, true, 0, dendroSize*float64(cols)))
	}
	if colDg != nil {
		p.Add(newDendroPlot(colDg, cols, false, float64(rows), dendroSize*float64(rows)))
	}

	fs := cp.FontSize
	if fs <= 0 {
		fs = defaultFontSize
	}

	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	if !cp.NoRowTicks {
		rt := make([]plot.Tick, 0, rows)
		for i, l := range rLabels {
			rt = append(rt, plot.Tick{Value: float64(i) + 0.5, Label: l})
		}
		p.Y.Tick.Marker = plot.ConstantTicks(rt)
		p.Y.Tick.Label.Font.Size = vg.Points(fs)
	}

	p.X.Tick.Marker = plot.ConstantTicks(nil)
	if !cp.NoColTicks {
		ct := make([]plot.Tick, 0, cols)
		for i, l := range cLabels {
			ct = append(ct, plot.Tick{Value: float64(i) + 0.5, Label: l})
		}
		p.X.Tick.Marker = plot.ConstantTicks(ct)
		p.X.Tick.Label.Font.Size = vg.Points(fs)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return p, nil
}

// zScore scales the values of a vector
// to standard scores.
// If the deviation of the vector is undefined,
// or zero,
// all values will be set to zero.
func zScore(v []float64) {
	m, sd := stat.MeanStdDev(v, nil)
	for i, x := range v {
		if sd == 0 || math.IsNaN(sd) {
			v[i] = 0
			continue
		}
		v[i] = (x - m) / sd
	}
}

// A grid is the data matrix of the heat map.
// Each cell is an unit square
// so the heat map spans
// from zero to the number of columns
// on the X axis,
// and from zero to the number of rows
// on the Y axis.
type grid struct {
	v [][]float64
}

func (g grid) Dims() (c, r int) {
	return len(g.v[0]), len(g.v)
}

func (g grid) Z(c, r int) float64 {
	return g.v[r][c]
}

func (g grid) X(c int) float64 {
	return float64(c) + 0.5
}

func (g grid) Y(r int) float64 {
	return float64(r) + 0.5
}
