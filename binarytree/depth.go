package binarytree

// Depths walks the tree breadth first and returns (maxLeafDepth, minLeafDepth).
//
// maxLeafDepth counts the levels below n, so a leaf reports 0 and a node whose
// children are both leaves reports 1. minLeafDepth is recorded the first time
// a leaf is met while it is still zero and is never lowered afterwards; when n
// is itself a leaf it stays 0. Expression construction branches on these exact
// values, so they must not be replaced by a textbook min/max depth.
func Depths(n *Node) (maxLeafDepth, minLeafDepth int) {
	maxLeafDepth = -1
	current := []*Node{n}
	for len(current) > 0 {
		maxLeafDepth++
		var next []*Node
		for _, node := range current {
			if node.IsLeaf() && minLeafDepth == 0 {
				minLeafDepth = maxLeafDepth
			}
			if node.Left != nil {
				next = append(next, node.Left)
			}
			if node.Right != nil {
				next = append(next, node.Right)
			}
		}
		current = next
	}
	return maxLeafDepth, minLeafDepth
}
