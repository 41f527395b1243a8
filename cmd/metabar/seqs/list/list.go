// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the representative sequences of a project.
package list

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: "list <project-file>",
	Short: "print a list of the sequences in a project",
	Long: `
Command list reads the representative sequences from a project and prints
the name and the length, in base pairs, of each sequence in the standard
output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	sf := p.Path(project.RepSeqs)
	if sf == "" {
		return nil
	}

	f, err := os.Open(sf)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", s.Name(), s.Len())
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("while reading file %q: %v", sf, err)
	}
	return nil
}
