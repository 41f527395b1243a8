// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clustermap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// number of colors sampled
// from a continuous color map
const palColors = 255

// ColorMaps returns the names of the color maps
// defined in the package.
// Any ColorBrewer palette
// (for example "RdBu" or "YlGnBu")
// is also accepted
// by its canonical name.
func ColorMaps() []string {
	return []string{
		"black-body",
		"extended-kindlmann",
		"incandescent",
		"iridescent",
		"kindlmann",
		"rainbow",
		"smooth-blue-red",
	}
}

// colorMap returns the color palette
// associated with a color map name.
// The color blind safe schemes of Paul Tol
// ("iridescent",
// "incandescent",
// and "rainbow"),
// the color maps of Kenneth Moreland
// ("smooth-blue-red",
// "kindlmann",
// "extended-kindlmann",
// and "black-body"),
// and the ColorBrewer palettes of Cynthia Brewer
// (such as "RdBu" or "YlGnBu")
// are accepted.
// If the name is empty,
// the iridescent scheme will be used.
func colorMap(name string) (palette.Palette, error) {
	switch strings.ToLower(name) {
	case "", "iridescent":
		return gradPalette(func(v float64) color.Color {
			return blind.Sequential(blind.Iridescent, v)
		}), nil
	case "incandescent":
		return gradPalette(func(v float64) color.Color {
			return blind.Sequential(blind.Incandescent, v)
		}), nil
	case "rainbow":
		return gradPalette(func(v float64) color.Color {
			return blind.Sequential(blind.RainbowPurpleToRed, v)
		}), nil
	case "smooth-blue-red":
		return morelandPalette(moreland.SmoothBlueRed()), nil
	case "kindlmann":
		return morelandPalette(moreland.Kindlmann()), nil
	case "extended-kindlmann":
		return morelandPalette(moreland.ExtendedKindlmann()), nil
	case "black-body":
		return morelandPalette(moreland.BlackBody()), nil
	}

	// search for a ColorBrewer palette
	// with as many colors as possible
	for v := 11; v >= 3; v-- {
		if p, err := brewer.GetPalette(brewer.TypeAny, name, v); err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown color map %q", name)
}

// A gradPalette is a palette
// sampled from a continuous color gradient
// defined in the [0,1] interval.
type gradPalette func(v float64) color.Color

func (g gradPalette) Colors() []color.Color {
	cs := make([]color.Color, palColors)
	for i := range cs {
		cs[i] = g(float64(i) / float64(palColors-1))
	}
	return cs
}

func morelandPalette(cm palette.ColorMap) palette.Palette {
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(palColors)
}
