// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package build implements a command to run
// a phylogenetic placement tool
// on the representative sequences of a project.
package build

import (
	"errors"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/project"
	"github.com/js-arias/metabar/sepp"
)

var Command = &command.Command{
	Usage: `build [--seqs <fasta-file>] [--db <reference-database>]
	[--tool <command>] [--threads <number>] [--verbose]
	[-o|--output <tree-file>] [-p|--placements <placements-file>]
	<project-file>`,
	Short: "run the phylogenetic placement of the sequences",
	Long: `
Command build runs an external phylogenetic placement tool to insert the
representative sequences of a project into a reference tree. The tool
produces a tree file with the inserted sequences and a placement file with
the location of each sequence on the branches of the reference tree. Both
files will be registered in the project.

By default, the sequences and the reference database defined in the project
will be used. The flag --seqs sets a different FASTA file for the sequences,
and the flag --db a different reference database. Both files will be
registered in the project.

The flag --tool sets the command used to run the placement. Default is
"qiime", called as:

	qiime fragment-insertion sepp
		--i-representative-sequences <fasta-file>
		--i-reference-database <reference-database>
		--o-tree <tree-file>
		--o-placements <placements-file>

The flag --threads sets the number of threads used by the tool. If the flag
--verbose is set, the tool will print information about the run. The output
of the tool is printed to the standard output and the standard error.

The flag --output, or -o, sets the name of the resulting tree file. Default
is "insertion-tree.qza". The flag --placements, or -p, sets the name of the
resulting placements file. Default is "insertion-placements.qza".

The first argument of the command is the name of the file that contains the
project. If the project file does not exist, a new project will be created.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var threads int
var verbose bool
var seqsFile string
var dbFile string
var toolFlag string
var treeOut string
var placeOut string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&threads, "threads", 0, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&seqsFile, "seqs", "", "")
	c.Flags().StringVar(&dbFile, "db", "", "")
	c.Flags().StringVar(&toolFlag, "tool", "", "")
	c.Flags().StringVar(&treeOut, "output", "insertion-tree.qza", "")
	c.Flags().StringVar(&treeOut, "o", "insertion-tree.qza", "")
	c.Flags().StringVar(&placeOut, "placements", "insertion-placements.qza", "")
	c.Flags().StringVar(&placeOut, "p", "insertion-placements.qza", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if seqsFile == "" {
		seqsFile = p.Path(project.RepSeqs)
		if seqsFile == "" {
			return c.UsageError("expecting representative sequences, flag --seqs")
		}
	}
	if dbFile == "" {
		dbFile = p.Path(project.RefDB)
		if dbFile == "" {
			return c.UsageError("expecting reference database, flag --db")
		}
	}

	n, err := countSequences(seqsFile)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("on file %q: no sequences found", seqsFile)
	}
	if _, err := os.Stat(dbFile); err != nil {
		return err
	}

	s := sepp.SEPP{
		Cmd:        toolFlag,
		Sequences:  seqsFile,
		RefDB:      dbFile,
		Tree:       treeOut,
		Placements: placeOut,
		Threads:    threads,
		Verbose:    verbose,
	}
	cmd, err := s.BuildCommand()
	if err != nil {
		return err
	}
	cmd.Stdout = c.Stdout()
	cmd.Stderr = c.Stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("while running placement: %v", err)
	}

	p.Add(project.RepSeqs, seqsFile)
	p.Add(project.RefDB, dbFile)
	p.Add(project.Tree, treeOut)
	p.Add(project.Placements, placeOut)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// countSequences returns the number of sequences
// in a FASTA file.
func countSequences(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	var n int
	for sc.Next() {
		n++
	}
	if err := sc.Error(); err != nil {
		return 0, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return n, nil
}
