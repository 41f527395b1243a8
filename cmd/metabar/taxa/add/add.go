// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a directory of taxonomic abundance tables
// to a project.
package add

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/js-arias/command"
	"github.com/js-arias/metabar/abundance"
	"github.com/js-arias/metabar/project"
)

var Command = &command.Command{
	Usage: "add -d|--dir <directory> <project-file>",
	Short: "add abundance tables to a project",
	Long: `
Command add registers a directory with taxonomic abundance tables in a
project, so they can be used by other commands.

The flag --dir, or -d, is required and sets the directory that contains the
abundance tables. Inside the directory, the table for each taxonomic level
must be stored as a CSV file called "level-<number>.csv", as exported by a
taxonomic assignment pipeline. At least one level file must exist in the
directory.

The first argument of the command is the name of the file that contains the
project. If the project file does not exist, a new project will be created.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dirFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&dirFlag, "dir", "", "")
	c.Flags().StringVar(&dirFlag, "d", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if dirFlag == "" {
		return c.UsageError("expecting abundance table directory, flag --dir")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	levels, err := tableLevels(dirFlag)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return fmt.Errorf("no abundance tables found in %q", dirFlag)
	}

	p.Add(project.Abundance, dirFlag)
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

// tableLevels returns the taxonomic levels
// that have an abundance table file
// in dir.
func tableLevels(dir string) ([]int, error) {
	var levels []int
	for l := 1; l <= 7; l++ {
		name := filepath.Join(dir, abundance.LevelFile(l))
		if _, err := os.Stat(name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}
