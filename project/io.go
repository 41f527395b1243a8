// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/js-arias/metabar/abundance"
	"github.com/js-arias/metabar/jplace"
	"github.com/js-arias/timetree"
)

// AbundanceTable reads the taxonomic abundance table
// of the indicated taxonomic level
// from the abundance directory
// defined in a project.
// If the prefix is empty,
// the standard prefix of the level
// will be used.
func (p *Project) AbundanceTable(level int, prefix string) (*abundance.Table, error) {
	dir := p.Path(Abundance)
	if dir == "" {
		return nil, fmt.Errorf("abundance tables not defined in project %q", p.name)
	}
	if prefix == "" {
		prefix = abundance.LevelPrefix(level)
	}
	if prefix == "" {
		return nil, fmt.Errorf("no column prefix for level %d", level)
	}

	name := filepath.Join(dir, abundance.LevelFile(level))
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := abundance.ReadCSV(f, prefix)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Placements reads a placement file
// as defined in a project.
func (p *Project) Placements() (*jplace.Placements, error) {
	name := p.Path(Placements)
	if name == "" {
		return nil, fmt.Errorf("placements not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pl, err := jplace.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return pl, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

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
