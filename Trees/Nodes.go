package Trees

// A node in the AVLTree.
// h is the cached height of the subtree rooting at the node. A leaf has
// height 0 and an absent child counts as -1.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int
}

// height of n, -1 if n is nil.
// Time: O(1); Space: O(1)
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.h
}

// update the cached height of n from its children.
func update[T any](n *node[T]) {
	n.h = 1 + max(height(n.l), height(n.r))
}

// balanceOf n is height(n.l)-height(n.r). 0 for nil.
func balanceOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation on n. n is passed by reference in order
// to modify its content. The in-order sequence is unchanged.
//
//	  x                 y
//	 / \               / \
//	a   y     ==>     x   c
//	   / \           / \
//	  b   c         a   b
//
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	x := *n
	y := x.r
	x.r = y.l
	y.l = x
	update(x)
	update(y)
	*n = y
}

// rotateRight performs a right rotation on n, the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	y := *n
	x := y.l
	y.l = x.r
	x.r = y
	update(y)
	update(x)
	*n = x
}

// clone the subtree rooting at n, heights included. Recursive.
// Time: O(n); Space: O(D)
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, clone(n.l), clone(n.r), n.h}
}
