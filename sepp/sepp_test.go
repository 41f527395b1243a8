// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sepp_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/metabar/sepp"
)

func TestBuildCommand(t *testing.T) {
	s := sepp.SEPP{
		Sequences:  "rep-seqs.qza",
		RefDB:      "sepp-refs-gg-13-8.qza",
		Tree:       "insertion-tree.qza",
		Placements: "insertion-placements.qza",
		Threads:    4,
		Verbose:    true,
	}
	cmd, err := s.BuildCommand()
	if err != nil {
		t.Fatalf("unable to build command: %v", err)
	}

	want := []string{
		"qiime", "fragment-insertion", "sepp",
		"--i-representative-sequences", "rep-seqs.qza",
		"--i-reference-database", "sepp-refs-gg-13-8.qza",
		"--o-tree", "insertion-tree.qza",
		"--o-placements", "insertion-placements.qza",
		"--p-threads", "4",
		"--verbose",
	}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("arguments: got %v, want %v", cmd.Args, want)
	}
}

func TestBuildCommandDefaults(t *testing.T) {
	s := sepp.SEPP{
		Sequences:  "rep-seqs.qza",
		RefDB:      "refs.qza",
		Tree:       "tree.qza",
		Placements: "placements.qza",
	}
	cmd, err := s.BuildCommand()
	if err != nil {
		t.Fatalf("unable to build command: %v", err)
	}

	want := []string{
		"qiime", "fragment-insertion", "sepp",
		"--i-representative-sequences", "rep-seqs.qza",
		"--i-reference-database", "refs.qza",
		"--o-tree", "tree.qza",
		"--o-placements", "placements.qza",
	}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("arguments: got %v, want %v", cmd.Args, want)
	}
}

func TestBuildCommandRequired(t *testing.T) {
	pars := []sepp.SEPP{
		{RefDB: "refs.qza", Tree: "tree.qza", Placements: "placements.qza"},
		{Sequences: "rep-seqs.qza", Tree: "tree.qza", Placements: "placements.qza"},
		{Sequences: "rep-seqs.qza", RefDB: "refs.qza", Placements: "placements.qza"},
		{Sequences: "rep-seqs.qza", RefDB: "refs.qza", Tree: "tree.qza"},
	}
	for _, s := range pars {
		if _, err := s.BuildCommand(); !errors.Is(err, sepp.ErrMissingRequired) {
			t.Errorf("parameters %+v: got error %q, want %q", s, err, sepp.ErrMissingRequired)
		}
	}
}
