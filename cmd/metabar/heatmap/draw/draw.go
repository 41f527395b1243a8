// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// a clustered heat map of a taxonomic abundance table.
package draw

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
	Usage: `draw [--level <number>] [-i|--input <csv-file>]
	[--prefix <prefix>] [--log2] [--sentinel <value>]
	[--norows] [--nocols] [--score <axis>]
	[--cmap <color-map>] [--dpi <number>] [--size <width>x<height>]
	[--font <size>] [--noxticks] [--noyticks]
	[-o|--output <image-file>] [--data <tsv-file>]
	<project-file>`,
	Short: "draw a heat map of an abundance table",
	Long: `
Command draw reads a taxonomic abundance table, scales the abundances to
proportions per sample, and draws the resulting matrix as a heat map with the
taxa as rows and the samples as columns. The scaled matrix is always stored
as a TSV file, so the data behind the image can be inspected or reused.

The flag --level sets the taxonomic level of the table, using the level files
defined in the project. Default is level 2 (phylum). If the flag --input, or
-i, is set, the table will be read from the indicated CSV file instead of the
project.

The flag --prefix sets the column prefix of the table. By default, the
standard prefix of the level will be used (see "metabar help tables").

If the flag --log2 is set, the proportions will be transformed to logarithms
in base 2. As the logarithm of zero is undefined, zero proportions are set to
the value of the flag --sentinel, -16 by default, about one part in 65000.

By default, both rows and columns are re-ordered by a hierarchical clustering
using the correlation between the profiles. The flag --norows disables the
clustering of the rows, and the flag --nocols the clustering of the columns.

The flag --score standardizes the values by rows or columns before drawing.
Valid values are "none" (the default), "rows", and "cols".

The flag --cmap sets the color map of the heat map. Default is "iridescent".
For the list of valid color maps see "metabar help palettes".

The flags --dpi, --size, and --font control the image resolution in pixels
per inch (default 300), the image dimensions in inches (default "10x10"),
and the label font size in points (default 8).

The flags --noxticks and --noyticks remove the sample and taxon labels from
the image.

The flag --output, or -o, sets the name of the image file. The image format
is inferred from the file extension, either JPEG (".jpg" or ".jpeg") or PNG
(".png"). The flag --data sets the name of the TSV file. By default, the
names are derived from the table file name.

The first argument of the command is the name of the file that contains the
project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag int
var dpiFlag int
var sentinel float64
var fontSize float64
var useLog bool
var noRows bool
var noCols bool
var noXTicks bool
var noYTicks bool
var inputFile string
var prefixFlag string
var scoreFlag string
var cmapFlag string
var sizeFlag string
var output string
var dataFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&levelFlag, "level", 2, "")
	c.Flags().IntVar(&dpiFlag, "dpi", 300, "")
	c.Flags().Float64Var(&sentinel, "sentinel", -16, "")
	c.Flags().Float64Var(&fontSize, "font", 8, "")
	c.Flags().BoolVar(&useLog, "log2", false, "")
	c.Flags().BoolVar(&noRows, "norows", false, "")
	c.Flags().BoolVar(&noCols, "nocols", false, "")
	c.Flags().BoolVar(&noXTicks, "noxticks", false, "")
	c.Flags().BoolVar(&noYTicks, "noyticks", false, "")
	c.Flags().StringVar(&inputFile, "input", "", "")
	c.Flags().StringVar(&inputFile, "i", "", "")
	c.Flags().StringVar(&prefixFlag, "prefix", "", "")
	c.Flags().StringVar(&scoreFlag, "score", "none", "")
	c.Flags().StringVar(&cmapFlag, "cmap", "", "")
	c.Flags().StringVar(&sizeFlag, "size", "10x10", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&dataFile, "data", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	score, err := clustermap.ParseScore(scoreFlag)
	if err != nil {
		return err
	}
	width, height, err := parseSize(sizeFlag)
	if err != nil {
		return err
	}

	t, base, err := readTable(args[0])
	if err != nil {
		return err
	}

	t.Normalize()
	suffix := ""
	if useLog {
		t.Log2(sentinel)
		suffix = "_log2"
	}
	if !noRows {
		suffix += "_row_cluster"
	}
	m := t.Matrix()

	dataName := dataFile
	if dataName == "" {
		dataName = fmt.Sprintf("raw_data_of_%s%s.tsv", base, suffix)
	}
	if err := writeData(dataName, m); err != nil {
		return err
	}

	imgName := output
	if imgName == "" {
		imgName = fmt.Sprintf("heatmap_of_%s%s.jpg", base, suffix)
	}
	cp := &clustermap.Plot{
		RowLabels:   m.Taxa(),
		ColLabels:   m.Samples(),
		Values:      m.Values(),
		ClusterRows: !noRows,
		ClusterCols: !noCols,
		Score:       score,
		ColorMap:    cmapFlag,
		FontSize:    fontSize,
		NoRowTicks:  noYTicks,
		NoColTicks:  noXTicks,
		DPI:         dpiFlag,
		Width:       width,
		Height:      height,
	}
	if err := cp.Render(imgName); err != nil {
		return err
	}
	return nil
}

// readTable reads the abundance table,
// either from an explicit CSV file
// or from the table directory defined in the project.
// It also returns the base name used to name the output files.
func readTable(name string) (*abundance.Table, string, error) {
	if inputFile == "" {
		p, err := project.Read(name)
		if err != nil {
			return nil, "", fmt.Errorf("unable to open project %q: %v", name, err)
		}
		t, err := p.AbundanceTable(levelFlag, prefixFlag)
		if err != nil {
			return nil, "", err
		}
		base := strings.TrimSuffix(abundance.LevelFile(levelFlag), ".csv")
		return t, base, nil
	}

	prefix := prefixFlag
	if prefix == "" {
		prefix = abundance.LevelPrefix(levelFlag)
	}
	if prefix == "" {
		return nil, "", fmt.Errorf("no column prefix for level %d", levelFlag)
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	t, err := abundance.ReadCSV(f, prefix)
	if err != nil {
		return nil, "", fmt.Errorf("on file %q: %v", inputFile, err)
	}
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return t, base, nil
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
