/*
Package layout implements the two-pass tidy-tree algorithm that assigns
every AST node a non-overlapping (offset, depth) coordinate: a post-order
count pass sizes each depth level, and a post-order offset pass places each
node at the midpoint of its children, shifting whole subtrees right to
resolve collisions.
*/
package layout

import "devt.de/xtc/xc/ast"

/*
Position is an integer lattice coordinate assigned to an AST node.
*/
type Position struct {
	Offset int
	Depth  int
}

/*
Layout is the result of running both passes over a tree: a position for
every node, an insertion-ordered list of nodes (post-order, the order the
draw pass iterates in), and the per-depth node counts from the count pass.
*/
type Layout struct {
	Pos      map[*ast.Node]Position
	Order    []*ast.Node
	NCount   []int
	MaxDepth int
}

/*
Build runs the count pass and the offset pass over the tree rooted at root
and returns the resulting Layout.
*/
func Build(root *ast.Node) *Layout {
	nCount, maxDepth := count(root)

	b := &builder{
		next: make([]int, maxDepth+1),
		pos:  make(map[*ast.Node]Position),
	}
	b.visit(root, 0)

	return &Layout{
		Pos:      b.pos,
		Order:    b.order,
		NCount:   nCount,
		MaxDepth: maxDepth,
	}
}
