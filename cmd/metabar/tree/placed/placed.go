// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package placed implements a command to print
// the placements of the sequences of a project.
package placed

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/metabar/jplace"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: "placed [--file <jplace-file>] [--edges] <project-file>",
	Short: "print the placements of the sequences",
	Long: `
Command placed reads the placements of the sequences of a project, as
produced by a phylogenetic placement run, and prints the fragment name, the
fragment multiplicity, the edge of the reference tree in which the fragment
was placed, and the weight of the placement, as a TSV table in the standard
output.

By default, only the best placement, i.e. the placement with the largest
weight ratio, will be printed for each fragment. If the flag --edges is set,
all the placements of each fragment will be printed.

The flag --file sets a jplace file to be read instead of the placements file
defined in the project.

The first argument of the command is the name of the file that contains the
project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var edgesFlag bool
var placeFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&edgesFlag, "edges", false, "")
	c.Flags().StringVar(&placeFile, "file", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	pl, err := readPlacements(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "fragment\tmultiplicity\tedge\tweight\n")
	for _, n := range pl.Fragments() {
		fr := pl.Fragment(n)
		if edgesFlag {
			for _, pc := range fr.Places {
				fmt.Fprintf(c.Stdout(), "%s\t%.3f\t%d\t%.6f\n", fr.Name, fr.Mult, pc.Edge, pc.Weight)
			}
			continue
		}
		best := fr.Best()
		fmt.Fprintf(c.Stdout(), "%s\t%.3f\t%d\t%.6f\n", fr.Name, fr.Mult, best.Edge, best.Weight)
	}
	return nil
}

func readPlacements(name string) (*jplace.Placements, error) {
	if placeFile == "" {
		p, err := project.Read(name)
		if err != nil {
			return nil, fmt.Errorf("unable to open project %q: %v", name, err)
		}
		return p.Placements()
	}

	f, err := os.Open(placeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pl, err := jplace.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", placeFile, err)
	}
	return pl, nil
}
