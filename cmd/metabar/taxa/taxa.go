// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa is a metapackage for commands
// that deal with taxonomic abundance tables.
package taxa

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/cmd/metabar/taxa/add"
	"github.com/js-arias/metabar/cmd/metabar/taxa/list"
)

var Command = &command.Command{
	Usage: "taxa <command> [<argument>...]",
	Short: "commands for taxonomic abundance tables",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
}
