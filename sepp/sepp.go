// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sepp provides interaction with the SEPP phylogenetic placement tool,
// as implemented by the fragment-insertion plugin of QIIME.
package sepp

import (
	"errors"
	"os/exec"

	"github.com/biogo/external"
)

var ErrMissingRequired = errors.New("sepp: missing required argument")

// SEPP defines parameters for a SEPP run.
type SEPP struct {
	// Usage: qiime fragment-insertion sepp [OPTIONS]
	//
	Cmd    string `buildarg:"{{if .}}{{.}}{{else}}qiime{{end}}"`              // qiime
	Plugin string `buildarg:"{{if .}}{{.}}{{else}}fragment-insertion{{end}}"` // fragment-insertion
	Action string `buildarg:"{{if .}}{{.}}{{else}}sepp{{end}}"`               // sepp

	// Input files:
	Sequences string `buildarg:"{{if .}}--i-representative-sequences{{split}}{{.}}{{end}}"` // --i-representative-sequences: fragments to be inserted
	RefDB     string `buildarg:"{{if .}}--i-reference-database{{split}}{{.}}{{end}}"`       // --i-reference-database: reference alignment and tree

	// Output files:
	Tree       string `buildarg:"{{if .}}--o-tree{{split}}{{.}}{{end}}"`       // --o-tree: reference tree with the inserted fragments
	Placements string `buildarg:"{{if .}}--o-placements{{split}}{{.}}{{end}}"` // --o-placements: placements of the fragments

	// Run options:
	Threads int  `buildarg:"{{if .}}--p-threads{{split}}{{.}}{{end}}"` // --p-threads: number of threads
	Verbose bool `buildarg:"{{if .}}--verbose{{end}}"`                 // --verbose: display verbose output
}

// BuildCommand returns an exec.Cmd built from the parameters in s.
func (s SEPP) BuildCommand() (*exec.Cmd, error) {
	if s.Sequences == "" || s.RefDB == "" || s.Tree == "" || s.Placements == "" {
		return nil, ErrMissingRequired
	}
	cl := external.Must(external.Build(s))
	return exec.Command(cl[0], cl[1:]...), nil
}
