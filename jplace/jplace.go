// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jplace reads the placements of query sequences
// on the branches of a reference phylogenetic tree,
// stored in the jplace format
// <https://doi.org/10.1371/journal.pone.0031009>.
package jplace

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// A Place is a location of a query fragment
// on a branch of the reference tree.
type Place struct {
	Edge       int     // branch,
	Likelihood float64 // likelihood of the placement
	Weight     float64 // likelihood weight ratio
	DistalLen  float64 // distance to the distal node of the branch
	PendantLen float64 // length of the attachment branch
}

// A Fragment is a query sequence
// placed on the reference tree.
// A fragment can be placed
// at one or more locations,
// each with its own weight.
type Fragment struct {
	Name   string
	Mult   float64 // multiplicity of the fragment
	Places []Place
}

// Best returns the placement location
// with the largest placement weight.
func (f *Fragment) Best() Place {
	best := f.Places[0]
	for _, p := range f.Places[1:] {
		if p.Weight > best.Weight {
			best = p
		}
	}
	return best
}

// Placements is a collection of the placements
// of a set of query fragments
// on a reference tree.
type Placements struct {
	version int
	tree    string
	frags   map[string]*Fragment
}

// Fields required in a jplace file.
var reqFields = []string{
	"edge_num",
	"like_weight_ratio",
}

type jplaceFile struct {
	Version    int        `json:"version"`
	Tree       string     `json:"tree"`
	Fields     []string   `json:"fields"`
	Placements []placeRec `json:"placements"`
}

type placeRec struct {
	P  [][]float64 `json:"p"`
	N  []string    `json:"n"`
	NM [][]any     `json:"nm"`
}

// Read reads a set of placements
// in jplace format
// from an io.Reader.
//
// The values of each placement location
// are interpreted using the fields definition
// of the file,
// and at least the fields "edge_num"
// and "like_weight_ratio"
// must be defined.
func Read(r io.Reader) (*Placements, error) {
	var jf jplaceFile
	if err := json.NewDecoder(r).Decode(&jf); err != nil {
		return nil, fmt.Errorf("while reading jplace data: %v", err)
	}
	if jf.Version < 1 || jf.Version > 3 {
		return nil, fmt.Errorf("unsupported jplace version %d", jf.Version)
	}

	fields := make(map[string]int, len(jf.Fields))
	for i, f := range jf.Fields {
		f = strings.ToLower(strings.Join(strings.Fields(f), " "))
		fields[f] = i
	}
	for _, f := range reqFields {
		if _, ok := fields[f]; !ok {
			return nil, fmt.Errorf("expecting field %q", f)
		}
	}

	p := &Placements{
		version: jf.Version,
		tree:    jf.Tree,
		frags:   make(map[string]*Fragment, len(jf.Placements)),
	}
	for i, rec := range jf.Placements {
		if len(rec.P) == 0 {
			return nil, fmt.Errorf("placement %d: without placement locations", i)
		}
		places := make([]Place, 0, len(rec.P))
		for _, row := range rec.P {
			if len(row) != len(jf.Fields) {
				return nil, fmt.Errorf("placement %d: got %d values, want %d", i, len(row), len(jf.Fields))
			}
			pl := Place{
				Edge:   int(row[fields["edge_num"]]),
				Weight: row[fields["like_weight_ratio"]],
			}
			if j, ok := fields["likelihood"]; ok {
				pl.Likelihood = row[j]
			}
			if j, ok := fields["distal_length"]; ok {
				pl.DistalLen = row[j]
			}
			if j, ok := fields["pendant_length"]; ok {
				pl.PendantLen = row[j]
			}
			places = append(places, pl)
		}

		names, err := recNames(rec)
		if err != nil {
			return nil, fmt.Errorf("placement %d: %v", i, err)
		}
		for _, nm := range names {
			if _, dup := p.frags[nm.name]; dup {
				return nil, fmt.Errorf("placement %d: fragment %q repeated", i, nm.name)
			}
			p.frags[nm.name] = &Fragment{
				Name:   nm.name,
				Mult:   nm.mult,
				Places: places,
			}
		}
	}
	return p, nil
}

type nameMult struct {
	name string
	mult float64
}

func recNames(rec placeRec) ([]nameMult, error) {
	var names []nameMult
	for _, n := range rec.N {
		n = strings.Join(strings.Fields(n), " ")
		if n == "" {
			continue
		}
		names = append(names, nameMult{name: n, mult: 1})
	}
	for _, nm := range rec.NM {
		if len(nm) == 0 {
			return nil, fmt.Errorf("invalid name-multiplicity pair")
		}
		n, ok := nm[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid name-multiplicity pair")
		}
		n = strings.Join(strings.Fields(n), " ")
		if n == "" {
			continue
		}
		mult := 1.0
		if len(nm) > 1 {
			m, ok := nm[1].(float64)
			if !ok {
				return nil, fmt.Errorf("invalid name-multiplicity pair")
			}
			mult = m
		}
		names = append(names, nameMult{name: n, mult: mult})
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("expecting fragment name")
	}
	return names, nil
}

// Fragments returns the names of the placed fragments,
// in alphabetical order.
func (p *Placements) Fragments() []string {
	names := make([]string, 0, len(p.frags))
	for n := range p.frags {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Fragment returns a placed fragment by its name.
// It returns nil
// if the fragment is not in the collection.
func (p *Placements) Fragment(name string) *Fragment {
	name = strings.Join(strings.Fields(name), " ")
	return p.frags[name]
}

// Tree returns the reference tree,
// in newick format,
// with the branches numbered
// in curly brackets.
func (p *Placements) Tree() string {
	return p.tree
}

// Version returns the version of the jplace format
// used in the source file.
func (p *Placements) Version() int {
	return p.version
}
