package layout

import (
	"devt.de/xtc/xc/ast"
	"devt.de/xtc/xc/config"
)

/*
charWidth and lineHeight are the fixed glyph metrics Pass 3 uses to size a
node's box from its label text. The render package is free to pick its own
font and re-measure; these are only the portable defaults the core layout
contract requires for a self-consistent geometry record (see spec §4.3).
*/
const (
	charWidth  = 8
	lineHeight = 16
)

/*
Geometry is the draw pass's primitive record for a single node: its label,
and the pixel box (x, y, width, height) the rasterizer should paint it in.
*/
type Geometry struct {
	Node   *ast.Node
	Label  string
	X, Y   int
	Width  int
	Height int
}

/*
Edge is a connector from a parent's bottom-center to a child's top-center.
*/
type Edge struct {
	FromX, FromY int
	ToX, ToY     int
}

/*
Drawing is the complete set of geometry records Pass 3 emits, in insertion
order (see Layout.Order).
*/
type Drawing struct {
	Nodes []Geometry
	Edges []Edge
}

/*
Draw runs Pass 3 over a Layout: for each node, in insertion order, it emits
a Geometry record and an Edge to each of its already-placed children.
*/
func Draw(l *Layout) *Drawing {
	hstep := config.Int(config.HStep)
	vstep := config.Int(config.VStep)
	pad := config.Int(config.NodePad)
	margin := config.Int(config.CanvasMargin)

	d := &Drawing{}
	boxOf := make(map[*ast.Node]Geometry, len(l.Order))

	for _, n := range l.Order {
		pos := l.Pos[n]
		label := n.Label()

		g := Geometry{
			Node:   n,
			Label:  label,
			X:      margin + pos.Offset*hstep,
			Y:      margin + pos.Depth*vstep,
			Width:  pad*2 + len(label)*charWidth,
			Height: pad*2 + lineHeight,
		}

		boxOf[n] = g
		d.Nodes = append(d.Nodes, g)

		for _, c := range n.Children {
			cg := boxOf[c]
			d.Edges = append(d.Edges, Edge{
				FromX: g.X + g.Width/2,
				FromY: g.Y + g.Height,
				ToX:   cg.X + cg.Width/2,
				ToY:   cg.Y,
			})
		}
	}

	return d
}
