// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(palettesGuide)
	app.Add(projectsGuide)
	app.Add(tablesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
MetaBar requires several files to read and process the data of a
metabarcoding study. To reduce the burden of keeping track of many files, a
single project file is used to hold the reference of all files required in
the analysis. This guide explains the structure of the file, but most of the
time, the best and most secure way to edit or view this file is by using
metabar commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# metabar project files
	dataset	path
	abundance	taxa-tables
	placements	insertion-placements.jplace
	refdb	sepp-refs-gg-13-8.qza
	repseqs	rep-seqs.fasta
	tree	insertion-tree.qza
	trees	trees.tab

The valid file types are:

- Taxonomic abundance tables. Defined by the dataset keyword "abundance".
  This path is a directory that contains one CSV table per taxonomic level
  (see "metabar help tables"). The recommended way to add the tables is by
  using the command 'metabar taxa add'.
- Placements. Defined by the dataset keyword "placements". This file contains
  the placements of the representative sequences on the branches of the
  reference tree, as produced by a phylogenetic placement run. The
  recommended way to add a placements file is by using the command
  'metabar tree build'.
- Reference databases. Defined by the dataset keyword "refdb". This file
  contains the reference alignment and tree used by the phylogenetic
  placement tool. The recommended way to add a reference database is by using
  the command 'metabar tree build'.
- Representative sequences. Defined by the dataset keyword "repseqs". This
  file contains the representative sequences of the study in FASTA format.
  The recommended way to add sequences is by using the command
  'metabar seqs add'.
- Placement trees. Defined by the dataset keyword "tree". This file contains
  the reference tree with the representative sequences inserted, as produced
  by a phylogenetic placement run. The recommended way to add this file is by
  using the command 'metabar tree build'.
- Imported trees. Defined by the dataset keyword "trees". This file contains
  one or more trees in the form of a tab-delimited file. The recommended way
  to add a tree file is by using the command 'metabar tree add'.
	`,
}

var tablesGuide = &command.Command{
	Usage: "tables",
	Short: "about abundance table files",
	Long: `
In MetaBar, the taxonomic composition of a study is stored in a directory of
taxonomic abundance tables, with a CSV table per taxonomic level, as exported
by a taxonomic assignment pipeline. The table of each level must be stored in
a file called "level-<number>.csv", for example "level-2.csv" for the phylum
level.

In each table, rows are samples and columns are taxa. The first column,
"index", contains the sample names. Each taxon column must be prefixed with
the level prefix, which indicates the level of the taxonomic assignment. The
standard prefixes are:

	1	k__	kingdom
	2	p__	phylum
	3	c__	class
	4	o__	order
	5	f__	family
	6	g__	genus
	7	s__	species

Reads without an assignment at the level are usually reported in a column
called "Unassigned;__" or similar; any column without the prefix that starts
with "Unassigned" will be read as the unassigned taxon of the level. Tables
with a different prefix, for example the prefixes of the SILVA database, can
be read using the flag --prefix of the commands that read the tables. Columns
with metadata, i.e. any column without the prefix, will be ignored.

Here is an example table:

	index,p__Bacteroidetes,p__Firmicutes,Unassigned;__
	sample-1,1502,2301,67
	sample-2,980,3400,12

Heat map commands scale each abundance to a proportion of the sample reads.
The scaled matrix behind each heat map is always stored as a TSV file, with
the taxa as rows and the samples as columns, with the name prefix
"raw_data_of_". These files can be used to inspect the exact values drawn,
or as input for third-party applications.
	`,
}

var palettesGuide = &command.Command{
	Usage: "palettes",
	Short: "about heat map color maps",
	Long: `
Heat map commands accept the flag --cmap to set the color map used to draw
the cells. By default, the iridescent color map is used, a color-blind safe
map with a smooth perception of the value scale.

The following color maps are available:

	black-body
	extended-kindlmann
	incandescent
	iridescent
	kindlmann
	rainbow
	smooth-blue-red

Color map names are not case sensitive. Additionally, any ColorBrewer
palette name can be used, for example "RdBu", "PuOr", or "YlGnBu". As
ColorBrewer palettes are discrete, the drawing will use the largest valid
number of colors of the palette.

For log2 transformed proportions, a diverging color map, such as
"smooth-blue-red" or "RdBu", makes it easier to separate the abundances
above and below the sentinel value.
	`,
}
