// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that deal with phylogenetic placement trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/cmd/metabar/tree/add"
	"github.com/js-arias/metabar/cmd/metabar/tree/build"
	"github.com/js-arias/metabar/cmd/metabar/tree/draw"
	"github.com/js-arias/metabar/cmd/metabar/tree/list"
	"github.com/js-arias/metabar/cmd/metabar/tree/placed"
	"github.com/js-arias/metabar/cmd/metabar/tree/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic placement trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(build.Command)
	Command.Add(draw.Command)
	Command.Add(list.Command)
	Command.Add(placed.Command)
	Command.Add(terms.Command)
}
