// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// representative sequences to a project.
package add

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <fasta-file>]
	<project-file> [<fasta-file>...]`,
	Short: "add representative sequences to a project",
	Long: `
Command add reads one or more DNA sequences in FASTA format, such as the
representative sequences of a metabarcoding study, and adds the sequences to
a project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more FASTA files can be given as arguments. If no file is given, the
sequences will be read from the standard input. The name of each sequence
must be unique in the project.

By default the sequences will be stored in the sequence file currently
defined for the project. If the project does not have a sequence file, a new
one will be created with the name 'rep-seqs.fasta'. A different sequence file
name can be defined using the flag --file, or -f. If this flag is used, and
there is a sequence file already defined, then a new file with that name will
be created, and used as the sequence file for the project (previously defined
sequences will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seqFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&seqFile, "file", "", "")
	c.Flags().StringVar(&seqFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	var sq []*linear.Seq
	names := make(map[string]bool)
	if sf := p.Path(project.RepSeqs); sf != "" {
		sq, err = readFasta(nil, sf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", sf, err)
		}
		for _, s := range sq {
			names[s.Name()] = true
		}
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		ns, err := readFasta(c.Stdin(), fn)
		if err != nil {
			return err
		}

		for _, s := range ns {
			if names[s.Name()] {
				return fmt.Errorf("when adding sequences from %q: sequence %q repeated", a, s.Name())
			}
			names[s.Name()] = true
			sq = append(sq, s)
		}
	}

	if seqFile == "" {
		seqFile = p.Path(project.RepSeqs)
		if seqFile == "" {
			seqFile = "rep-seqs.fasta"
		}
	}

	if err := writeFasta(sq); err != nil {
		return err
	}
	p.Add(project.RepSeqs, seqFile)
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

func readFasta(r io.Reader, name string) ([]*linear.Seq, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	var sq []*linear.Seq
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		sq = append(sq, s)
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return sq, nil
}

func writeFasta(sq []*linear.Seq) (err error) {
	f, err := os.Create(seqFile)
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
	for _, s := range sq {
		fmt.Fprintf(bw, "%60a\n", s)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", seqFile, err)
	}
	return nil
}
