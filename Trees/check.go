package Trees

func isBalanced[T any](n *node[T]) bool {
	if n == nil {
		return true
	}
	b := balanceOf(n)
	return -1 <= b && b <= 1 && isBalanced(n.l) && isBalanced(n.r)
}

// IsBalanced reports whether every node's balance factor, computed from the
// cached heights, is -1, 0 or 1. Recursive.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) IsBalanced() bool {
	return isBalanced(u.root)
}

// corrupt checks the subtree rooting at n: every value must lie strictly
// between lo and hi (nil means unbounded) and every cached height must be
// right. Returns the number of nodes, and ok=false on the first violation.
func (u *AVLTree[T]) corrupt(n, lo, hi *node[T]) (cnt uint, ok bool) {
	if n == nil {
		return 0, true
	}
	if (lo != nil && u.cmp(lo.v, n.v) >= 0) || (hi != nil && u.cmp(n.v, hi.v) >= 0) {
		return 0, false
	}
	if n.h != 1+max(height(n.l), height(n.r)) {
		return 0, false
	}
	lc, ok := u.corrupt(n.l, lo, n)
	if !ok {
		return 0, false
	}
	rc, ok := u.corrupt(n.r, n, hi)
	return lc + rc + 1, ok
}

// Corrupt [Tree.Corrupt]
// The tree is corrupt when the in-order sequence isn't strictly ascending,
// when a cached height is wrong, or when Size doesn't match the number of
// nodes. Recursive.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) Corrupt() bool {
	cnt, ok := u.corrupt(u.root, nil, nil)
	return !ok || cnt != u.size
}
