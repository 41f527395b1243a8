// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heatmap is a metapackage for commands
// that draw heat maps of taxonomic abundance tables.
package heatmap

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metabar/cmd/metabar/heatmap/batch"
	"github.com/js-arias/metabar/cmd/metabar/heatmap/draw"
)

var Command = &command.Command{
	Usage: "heatmap <command> [<argument>...]",
	Short: "commands for heat maps of abundance tables",
}

func init() {
	Command.Add(batch.Command)
	Command.Add(draw.Command)
}
