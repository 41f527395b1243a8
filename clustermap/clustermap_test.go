// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clustermap_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/metabar/clustermap"

	_ "image/jpeg"
	_ "image/png"
)

func testPlot() *clustermap.Plot {
	return &clustermap.Plot{
		RowLabels: []string{"p__A", "p__B", "p__C"},
		ColLabels: []string{"S1", "S2", "S3", "S4"},
		Values: [][]float64{
			{0.5, 0.1, 0.4, 0},
			{0.4, 0.2, 0.4, 0.1},
			{0.1, 0.7, 0.2, 0.9},
		},
		ClusterRows: true,
		ClusterCols: true,
		DPI:         100,
		Width:       3,
		Height:      3,
	}
}

func TestRender(t *testing.T) {
	tmp := t.TempDir()

	for _, ext := range []string{".jpg", ".png"} {
		name := filepath.Join(tmp, "heatmap"+ext)
		p := testPlot()
		if err := p.Render(name); err != nil {
			t.Fatalf("unable to render %q: %v", name, err)
		}
		testImage(t, name, 300, 300)
	}

	p := testPlot()
	p.NoRowTicks = true
	p.NoColTicks = true
	p.Score = clustermap.ColScore
	name := filepath.Join(tmp, "no-ticks.jpg")
	if err := p.Render(name); err != nil {
		t.Fatalf("unable to render %q: %v", name, err)
	}
	testImage(t, name, 300, 300)
}

func TestRenderColorMaps(t *testing.T) {
	tmp := t.TempDir()

	maps := append(clustermap.ColorMaps(), "RdBu")
	for _, cm := range maps {
		name := filepath.Join(tmp, cm+".jpg")
		p := testPlot()
		p.ColorMap = cm
		p.Score = clustermap.RowScore
		if err := p.Render(name); err != nil {
			t.Fatalf("color map %q: unable to render: %v", cm, err)
		}
		testImage(t, name, 300, 300)
	}
}

func TestRenderError(t *testing.T) {
	tmp := t.TempDir()

	p := testPlot()
	p.ColorMap = "no-color-map"
	name := filepath.Join(tmp, "heatmap.jpg")
	if err := p.Render(name); err == nil {
		t.Errorf("render with color map %q: expecting error", p.ColorMap)
	}

	p = testPlot()
	name = filepath.Join(tmp, "heatmap.gif")
	if err := p.Render(name); err == nil {
		t.Errorf("render to %q: expecting error", name)
	}

	p = testPlot()
	p.Values = nil
	name = filepath.Join(tmp, "empty.jpg")
	if err := p.Render(name); err == nil {
		t.Errorf("render without values: expecting error")
	}
}

func TestParseScore(t *testing.T) {
	scores := map[string]clustermap.Score{
		"":        clustermap.NoScore,
		"none":    clustermap.NoScore,
		"row":     clustermap.RowScore,
		"rows":    clustermap.RowScore,
		"col":     clustermap.ColScore,
		"columns": clustermap.ColScore,
	}
	for s, want := range scores {
		g, err := clustermap.ParseScore(s)
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", s, err)
		}
		if g != want {
			t.Errorf("parse %q: got %v, want %v", s, g, want)
		}
	}

	if _, err := clustermap.ParseScore("diagonal"); err == nil {
		t.Errorf("parse %q: expecting error", "diagonal")
	}
}

func testImage(t testing.TB, name string, width, height int) {
	t.Helper()

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("unable to open image %q: %v", name, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("unable to decode image %q: %v", name, err)
	}
	if cfg.Width != width || cfg.Height != height {
		t.Errorf("image %q: got size %dx%d, want %dx%d", name, cfg.Width, cfg.Height, width, height)
	}
}
