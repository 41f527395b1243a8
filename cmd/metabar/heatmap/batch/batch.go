// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements a command to draw
// the standard set of heat maps
// for the abundance tables of a project.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/metabar/abundance"
	"github.com/js-arias/metabar/clustermap"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: `batch [--levels <number>,...] [--prefix <prefix>]
	[--sentinel <value>] [--score <axis>] [--cmap <color-map>]
	[--dpi <number>] [--size <width>x<height>] [--font <size>]
	[-o|--outdir <directory>] <project-file>`,
	Short: "draw heat maps for all abundance tables",
	Long: `
Command batch draws the standard set of heat maps for the abundance tables
of a project. For each taxonomic level, four heat maps are drawn: with raw
proportions and with log2 transformed proportions, each with and without the
clustering of the taxon rows. Sample columns are always clustered. Each heat
map is stored as a JPEG image, and the matrix behind each image is stored as
a TSV file.

The name of each file indicates the level and the variant. For example, for
the level 2 table the files are:

	heatmap_of_level-2.jpg
	heatmap_of_level-2_row_cluster.jpg
	heatmap_of_level-2_log2.jpg
	heatmap_of_level-2_log2_row_cluster.jpg

and the equivalent "raw_data_of_" TSV files. The name of each written file
is printed to the standard output.

The flag --levels sets the taxonomic levels to process, as a comma separated
list of numbers. Default is "2,3,4,5,6,7". The levels must have a table file
in the abundance directory of the project.

The flag --prefix sets the column prefix of the tables. By default, the
standard prefix of each level will be used (see "metabar help tables").

The flag --sentinel sets the value used for zero proportions in the log2
transform, -16 by default.

The flags --score, --cmap, --dpi, --size, and --font are equivalent to the
flags of the draw command (see "metabar help heatmap draw").

The flag --outdir, or -o, sets the directory for the output files. By
default, the files are written in the current directory.

The first argument of the command is the name of the file that contains the
project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dpiFlag int
var sentinel float64
var fontSize float64
var levelsFlag string
var prefixFlag string
var scoreFlag string
var cmapFlag string
var sizeFlag string
var outDir string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&dpiFlag, "dpi", 300, "")
	c.Flags().Float64Var(&sentinel, "sentinel", -16, "")
	c.Flags().Float64Var(&fontSize, "font", 8, "")
	c.Flags().StringVar(&levelsFlag, "levels", "2,3,4,5,6,7", "")
	c.Flags().StringVar(&prefixFlag, "prefix", "", "")
	c.Flags().StringVar(&scoreFlag, "score", "none", "")
	c.Flags().StringVar(&cmapFlag, "cmap", "", "")
	c.Flags().StringVar(&sizeFlag, "size", "10x10", "")
	c.Flags().StringVar(&outDir, "outdir", "", "")
	c.Flags().StringVar(&outDir, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	levels, err := parseLevels(levelsFlag)
	if err != nil {
		return err
	}
	score, err := clustermap.ParseScore(scoreFlag)
	if err != nil {
		return err
	}
	width, height, err := parseSize(sizeFlag)
	if err != nil {
		return err
	}

	p, err := project.Read(args[0])
	if err != nil {
		return fmt.Errorf("unable to open project %q: %v", args[0], err)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	for _, l := range levels {
		t, err := p.AbundanceTable(l, prefixFlag)
		if err != nil {
			return err
		}
		t.Normalize()

		base := strings.TrimSuffix(abundance.LevelFile(l), ".csv")
		if err := drawVariants(c, t, base, score, width, height); err != nil {
			return err
		}

		t.Log2(sentinel)
		if err := drawVariants(c, t, base+"_log2", score, width, height); err != nil {
			return err
		}
	}
	return nil
}

// drawVariants writes the TSV file and the heat maps,
// with and without row clustering,
// of a scaled abundance table.
func drawVariants(c *command.Command, t *abundance.Table, base string, score clustermap.Score, width, height float64) error {
	m := t.Matrix()
	for _, rows := range []bool{false, true} {
		name := base
		if rows {
			name += "_row_cluster"
		}

		dataName := filepath.Join(outDir, "raw_data_of_"+name+".tsv")
		if err := writeData(dataName, m); err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\n", dataName)

		cp := &clustermap.Plot{
			RowLabels:   m.Taxa(),
			ColLabels:   m.Samples(),
			Values:      m.Values(),
			ClusterRows: rows,
			ClusterCols: true,
			Score:       score,
			ColorMap:    cmapFlag,
			FontSize:    fontSize,
			DPI:         dpiFlag,
			Width:       width,
			Height:      height,
		}
		imgName := filepath.Join(outDir, "heatmap_of_"+name+".jpg")
		if err := cp.Render(imgName); err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\n", imgName)
	}
	return nil
}

func writeData(name string, m *abundance.Matrix) (err error) {
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

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// parseLevels returns the taxonomic levels
// given as a comma separated list of numbers.
func parseLevels(s string) ([]int, error) {
	var levels []int
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		l, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid levels value %q: %v", s, err)
		}
		levels = append(levels, l)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("invalid levels value %q", s)
	}
	return levels, nil
}

// parseSize returns the width and height,
// in inches,
// of an image size given as "<width>x<height>".
func parseSize(s string) (width, height float64, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size value %q", s)
	}
	width, err = strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size value %q: %v", s, err)
	}
	height, err = strconv.ParseFloat(h, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size value %q: %v", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size value %q", s)
	}
	return width, height, nil
}
