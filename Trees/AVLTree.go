package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations so that for every node the heights of the two
// subtrees differ by at most 1.
// T is the type of values it will hold. The order of values is given by cmp,
// which must be a total order: cmp(a,b) is negative when a<b, positive when
// a>b, and 0 when a and b are considered equal. Two equal values are never
// both stored.
// The worst case height of the tree is less than f(n)=1.44*log2(n+2)-0.328,
// so the depth D of the tree is O(log n).
// An AVLTree isn't safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
// AVLTree shouldn't be created directly using struct literal, use New or NewFunc.
type AVLTree[T any] struct {
	root *node[T]
	size uint
	cmp  func(a, b T) int
}

// compare is the natural ordering of constraints.Ordered.
func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// New returns an empty AVLTree ordered by < and >.
func New[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{cmp: compare[T]}
}

// NewFunc returns an empty AVLTree ordered by cmp.
func NewFunc[T any](cmp func(a, b T) int) *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp}
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.size
}

// IsEmpty reports whether the tree has no elements.
func (u *AVLTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Height of the tree: 0 for a single node, -1 for an empty tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root)
}

// Clear the tree. The nodes are left to the garbage collector.
// Time: O(1)
func (u *AVLTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Clone returns a deep copy of u sharing no nodes with it.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Clone() *AVLTree[T] {
	return &AVLTree[T]{clone(u.root), u.size, u.cmp}
}

// Assign clears u and makes it a deep copy of other, comparator included.
// Assigning a tree to itself does nothing, and assigning nil only clears u.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Assign(other *AVLTree[T]) {
	if u == other {
		return
	}
	u.Clear()
	if other == nil {
		return
	}
	u.root, u.size, u.cmp = clone(other.root), other.size, other.cmp
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (v T, ok bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (v T, ok bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return
}

// FindMin returns the smallest element, or an *EmptyTreeError if the tree is empty.
func (u *AVLTree[T]) FindMin() (T, error) {
	if v, ok := u.Minimum(); ok {
		return v, nil
	}
	return *new(T), &EmptyTreeError{"FindMin"}
}

// FindMax returns the largest element, or an *EmptyTreeError if the tree is empty.
func (u *AVLTree[T]) FindMax() (T, error) {
	if v, ok := u.Maximum(); ok {
		return v, nil
	}
	return *new(T), &EmptyTreeError{"FindMax"}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}
