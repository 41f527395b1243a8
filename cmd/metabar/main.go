// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// MetaBar is a tool for taxonomic composition analysis
// of metabarcoding studies.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/cmd/metabar/heatmap"
	"github.com/js-arias/metabar/cmd/metabar/seqs"
	"github.com/js-arias/metabar/cmd/metabar/taxa"
	"github.com/js-arias/metabar/cmd/metabar/tree"
)

var app = &command.Command{
	Usage: "metabar <command> [<argument>...]",
	Short: "a tool for taxonomic composition analysis",
}

func init() {
	app.Add(heatmap.Command)
	app.Add(seqs.Command)
	app.Add(taxa.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
