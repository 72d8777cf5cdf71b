package Trees

import (
	"math/bits"

	"github.com/g-m-twostay/go-avl/Queues"
)

// stackHint is a capacity for traversal stacks that is never exceeded: the
// height of an AVL tree is below 1.44*log2(n+2).
func (u *AVLTree[T]) stackHint() int {
	return bits.Len(u.size+2)*3/2 + 1
}

// InOrder [Tree.InOrder]
// Uses a stack, so abandoning f half way leaves the tree untouched.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	st := make([]*node[T], 0, u.stackHint())
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// Range calls f on the elements in ascending order until f returns false.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) Range(f func(T) bool) {
	st := make([]*node[T], 0, u.stackHint())
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

func inOrder[T any](n *node[T], out []T) []T {
	if n != nil {
		out = inOrder(n.l, out)
		out = append(out, n.v)
		out = inOrder(n.r, out)
	}
	return out
}

// InOrderTraversal returns the elements in ascending order. Recursive.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) InOrderTraversal() []T {
	return inOrder(u.root, make([]T, 0, u.size))
}

func preOrder[T any](n *node[T], out []T) []T {
	if n != nil {
		out = append(out, n.v)
		out = preOrder(n.l, out)
		out = preOrder(n.r, out)
	}
	return out
}

// PreOrderTraversal returns the elements with every node before its
// children, left subtree before right. Recursive.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) PreOrderTraversal() []T {
	return preOrder(u.root, make([]T, 0, u.size))
}

// LevelOrderTraversal returns the elements breadth first, top level first
// and left to right within a level.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) LevelOrderTraversal() []T {
	out := make([]T, 0, u.size)
	if u.root == nil {
		return out
	}
	q := Queues.MakeArrayQueue[*node[T]](u.size/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		out = append(out, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return out
}

func (u *AVLTree[T]) rangeQuery(n *node[T], low, high T, out []T) []T {
	if n == nil {
		return out
	}
	cl, ch := u.cmp(n.v, low), u.cmp(n.v, high)
	if cl > 0 {
		out = u.rangeQuery(n.l, low, high, out)
	}
	if cl >= 0 && ch <= 0 {
		out = append(out, n.v)
	}
	if ch < 0 {
		out = u.rangeQuery(n.r, low, high, out)
	}
	return out
}

// RangeQuery returns the elements v with low<=v<=high in ascending order.
// Subtrees that can't hold such elements aren't visited. The result is
// empty, not nil, when nothing matches, including when low>high. Recursive.
// Time: O(D+k) for k results.
func (u *AVLTree[T]) RangeQuery(low, high T) []T {
	return u.rangeQuery(u.root, low, high, []T{})
}
