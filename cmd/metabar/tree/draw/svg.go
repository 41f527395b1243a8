// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/metabar/brlen"
	"github.com/js-arias/timetree"
)

const yStep = 12

type node struct {
	x    float64
	y    int
	topY int
	botY int

	id  int
	tax string
	age float64

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	root  *node

	stepX float64
	scale float64
	tick  tickValues
}

func copyTree(t *timetree.Tree, xStep, scale float64, tv tickValues) svgTree {
	maxSz := 0
	var root *node
	ids := make(map[int]*node)
	unit := float64(brlen.Units(scale))
	for _, id := range t.Nodes() {
		var anc *node
		p := t.Parent(id)
		if p >= 0 {
			anc = ids[p]
		}

		n := &node{
			id:  id,
			tax: t.Taxon(id),
			anc: anc,
			age: float64(t.Age(id)) / unit,
		}
		if anc == nil {
			root = n
		} else {
			anc.desc = append(anc.desc, n)
		}
		ids[id] = n
		if len(n.tax) > maxSz {
			maxSz = len(n.tax)
		}
	}

	s := svgTree{
		root:  root,
		stepX: xStep,
		scale: scale,
		tick:  tv,
	}
	s.prepare(root, xStep)
	s.y = s.y * yStep
	s.taxSz = maxSz

	return s
}

func (s *svgTree) prepare(n *node, xStep float64) {
	n.x = (s.root.age-n.age)*xStep + 10
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, xStep)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

// units returns the length of the ruler,
// in scale units.
func (s svgTree) units() int {
	u := int(math.Ceil((s.x - 10) / s.stepX))
	if u < 1 {
		u = 1
	}
	return u
}

func (s svgTree) draw(w io.Writer) error {
	units := s.units()
	width := int(float64(units)*s.stepX) + 10 + s.taxSz*6

	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 40)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(width)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e)
	s.ruler(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (n node) draw(e *xml.Encoder) {
	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(int(n.y))},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// draws vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(int(n.topY))
	ln.Attr[3].Value = strconv.Itoa(int(n.botY))
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	if n.desc == nil {
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(int(n.y + 5))},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.tax))
		e.EncodeToken(tx.End())
	}

	for _, d := range n.desc {
		d.label(e)
	}
}

// ruler draws a ruler of branch lengths,
// in substitutions per site,
// at the bottom of the drawing.
func (s svgTree) ruler(e *xml.Encoder) {
	y := s.y + 10
	units := s.units()
	end := 10 + float64(units)*s.stepX

	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: "10"},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(end))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(y)},
		},
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for u := 0; u <= units; u++ {
		sz := 0
		if u%s.tick.min == 0 {
			sz = 4
		}
		if u%s.tick.max == 0 {
			sz = 7
		}
		if sz == 0 {
			continue
		}

		x := 10 + float64(u)*s.stepX
		tick := xml.StartElement{
			Name: xml.Name{Local: "line"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(x))},
				{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(y)},
				{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(x))},
				{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(y + sz)},
			},
		}
		e.EncodeToken(tick)
		e.EncodeToken(tick.End())

		if u%s.tick.label != 0 {
			continue
		}
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(x))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y + 22)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "text-anchor"}, Value: "middle"},
			},
		}
		e.EncodeToken(tx)
		v := strconv.FormatFloat(float64(u)*s.scale, 'f', -1, 64)
		e.EncodeToken(xml.CharData(v))
		e.EncodeToken(tx.End())
	}
}
