// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqs is a metapackage for commands
// that deal with the representative sequences of a project.
package seqs

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/cmd/metabar/seqs/add"
	"github.com/js-arias/metabar/cmd/metabar/seqs/list"
)

var Command = &command.Command{
	Usage: "seqs <command> [<argument>...]",
	Short: "commands for representative sequences",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
}
