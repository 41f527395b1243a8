// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/metabar/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--scale <value>]
	[--step <value>] [--tick <tick-value>]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads the trees of a project and draws each tree into an
SVG-encoded file. Terminals are drawn at their distance from the root, so
the inserted sequences will be drawn at the place in which they were added
to the reference tree.

The argument of the command is the name of the project file.

By default, the scale of the drawing is in hundredths of a substitution per
site. To change the scale, use the flag --scale with a value in substitutions
per site.

By default, 10 pixel units will be used per scale unit; use the flag --step
to define a different value (it can have decimal points).

By default, all trees in the project will be drawn. If the flag --tree is
set, only the indicated tree will be printed.

By default, a ruler with ticks every scale unit will be added at the bottom
of the drawing. Use the flag --tick to define the tick lines, using the
following format: "<min-tick>,<max-tick>,<label-tick>", in which min-tick
indicates minor ticks, max-tick indicates major ticks, and label-tick the
ticks that will be labeled; for example, the default is "1,5,5" which means
that small ticks will be added each scale unit, major ticks will be added
every 5 scale units, and labels will be added every 5 scale units.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepX float64
var scaleFlag float64
var treeName string
var tickFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&stepX, "step", 10, "")
	c.Flags().Float64Var(&scaleFlag, "scale", 0.01, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&tickFlag, "tick", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	tv, err := parseTick()
	if err != nil {
		return err
	}
	if scaleFlag <= 0 {
		return fmt.Errorf("invalid scale value: %.6f", scaleFlag)
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tf := p.Path(project.Trees)
	if tf == "" {
		return nil
	}

	tc, err := readTreeFile(tf)
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			return fmt.Errorf("tree %q not in project", tn)
		}
		if err := writeSVG(tn, copyTree(t, stepX, scaleFlag, tv)); err != nil {
			return err
		}
	}
	return nil
}

func readTreeFile(name string) (*timetree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

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

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

type tickValues struct {
	min   int
	max   int
	label int
}

func parseTick() (tickValues, error) {
	if tickFlag == "" {
		return tickValues{
			min:   1,
			max:   5,
			label: 5,
		}, nil
	}

	vals := strings.Split(tickFlag, ",")
	if len(vals) != 3 {
		return tickValues{}, fmt.Errorf("invalid tick values: %q", tickFlag)
	}

	min, err := strconv.Atoi(vals[0])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid minor tick value: %q: %v", tickFlag, err)
	}

	max, err := strconv.Atoi(vals[1])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid major tick value: %q: %v", tickFlag, err)
	}

	label, err := strconv.Atoi(vals[2])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid label tick value: %q: %v", tickFlag, err)
	}

	if min < 1 || max < 1 || label < 1 {
		return tickValues{}, fmt.Errorf("invalid tick values: %q", tickFlag)
	}

	return tickValues{
		min:   min,
		max:   max,
		label: label,
	}, nil
}
