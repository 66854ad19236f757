package layout

import (
	"devt.de/krotik/common/errorutil"
	"devt.de/xtc/xc/ast"
)

/*
builder carries Pass 2's mutable state: the next unclaimed offset at each
depth, and the positions assigned so far.
*/
type builder struct {
	next  []int
	pos   map[*ast.Node]Position
	order []*ast.Node
}

/*
visit places n after recursively placing all of its children (post-order).
A leaf claims the next free offset at its depth. An internal node is placed
at the midpoint of its first and last child; if that midpoint collides with
space already claimed at this depth, the node - and its whole subtree - is
shifted right by the minimal amount that resolves the collision.
*/
func (b *builder) visit(n *ast.Node, depth int) {
	for _, c := range n.Children {
		b.visit(c, depth+1)
	}

	if len(n.Children) == 0 {
		offset := b.next[depth]
		b.next[depth] += 2

		b.pos[n] = Position{Offset: offset, Depth: depth}
		b.order = append(b.order, n)
		return
	}

	first := b.pos[n.Children[0]].Offset
	last := b.pos[n.Children[len(n.Children)-1]].Offset

	errorutil.AssertTrue(first <= last,
		"children must be placed left-to-right before their parent is")

	desired := (first + last) / 2

	b.pos[n] = Position{Offset: desired, Depth: depth}
	b.order = append(b.order, n)

	if desired >= b.next[depth] {
		b.next[depth] = desired + 2
		return
	}

	b.applyShift(n, b.next[depth]-desired)
}

/*
applyShift adds shift to n's offset and recurses over n's entire subtree,
widening b.next (the next free offset) at every depth touched so that a sibling placed
afterward never overlaps the shifted subtree.
*/
func (b *builder) applyShift(n *ast.Node, shift int) {
	p := b.pos[n]
	p.Offset += shift
	b.pos[n] = p

	if want := p.Offset + 2; want > b.next[p.Depth] {
		b.next[p.Depth] = want
	}

	for _, c := range n.Children {
		b.applyShift(c, shift)
	}
}
