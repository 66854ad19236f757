package layout

import "devt.de/xtc/xc/ast"

/*
count runs Pass 1: a post-order traversal that increments nCount[depth] for
every visited node and tracks the maximum depth reached. The returned slice
is dense over [0, maxDepth].
*/
func count(root *ast.Node) (nCount []int, maxDepth int) {
	var visit func(n *ast.Node, depth int)

	visit = func(n *ast.Node, depth int) {
		for _, c := range n.Children {
			visit(c, depth+1)
		}

		if depth > maxDepth {
			maxDepth = depth
		}
		for depth >= len(nCount) {
			nCount = append(nCount, 0)
		}
		nCount[depth]++
	}

	visit(root, 0)

	return nCount, maxDepth
}
