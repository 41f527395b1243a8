// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the taxonomic abundance tables defined in a project.
package list

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/metabar/abundance"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: "list [--level <number>] [--prefix <prefix>] <project-file>",
	Short: "print a list of abundance tables",
	Long: `
Command list reads the abundance tables defined in a project and prints the
taxonomic level, the file name, the column prefix, and the number of samples
and taxa of each table, as a TSV table.

The flag --level sets a single taxonomic level to print. By default, all
levels with a table in the abundance directory will be printed.

The flag --prefix sets the column prefix used to read the tables. By default,
the standard prefix of each level will be used (see "metabar help tables").

The first argument of the command is the name of the file that contains the
project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag int
var prefixFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&levelFlag, "level", 0, "")
	c.Flags().StringVar(&prefixFlag, "prefix", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := project.Read(args[0])
	if err != nil {
		return fmt.Errorf("unable to open project %q: %v", args[0], err)
	}

	fmt.Fprintf(c.Stdout(), "level\tfile\tprefix\tsamples\ttaxa\n")
	if levelFlag > 0 {
		return printTable(c, p, levelFlag)
	}
	for l := 1; l <= 7; l++ {
		err := printTable(c, p, l)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printTable(c *command.Command, p *project.Project, level int) error {
	t, err := p.AbundanceTable(level, prefixFlag)
	if err != nil {
		return err
	}

	prefix := prefixFlag
	if prefix == "" {
		prefix = abundance.LevelPrefix(level)
	}
	fmt.Fprintf(c.Stdout(), "%d\t%s\t%s\t%d\t%d\n", level, abundance.LevelFile(level), prefix, len(t.Samples()), len(t.Taxa()))
	return nil
}
