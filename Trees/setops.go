package Trees

import "github.com/g-m-twostay/go-avl/Sets"

// Put is Insert, for Sets.Set.
func (u *AVLTree[T]) Put(v T) bool {
	return u.Insert(v)
}

// Take returns the element at the root, the zero value if u is empty.
// Time: O(1)
func (u *AVLTree[T]) Take() (v T) {
	if u.root != nil {
		v = u.root.v
	}
	return
}

// PutAll [Sets.ExtendedSet.PutAll]
// Time: O(m*D) for m elements in s.
func (u *AVLTree[T]) PutAll(s Sets.Set[T]) (n uint) {
	if s == Sets.Set[T](u) {
		return 0
	}
	s.Range(func(v T) bool {
		if u.Insert(v) {
			n++
		}
		return true
	})
	return
}

// RemoveAll [Sets.ExtendedSet.RemoveAll]
func (u *AVLTree[T]) RemoveAll(s Sets.Set[T]) (n uint) {
	if s == Sets.Set[T](u) {
		n = u.size
		u.Clear()
		return
	}
	s.Range(func(v T) bool {
		if u.Remove(v) {
			n++
		}
		return true
	})
	return
}

// Eq [Sets.ExtendedSet.Eq]
// Time: O(n*D') where D' is the cost of s.Has.
func (u *AVLTree[T]) Eq(s Sets.Set[T]) bool {
	if u.size != s.Size() {
		return false
	}
	eq := true
	u.Range(func(v T) bool {
		eq = s.Has(v)
		return eq
	})
	return eq
}

// Union adds the elements of s to u.
func (u *AVLTree[T]) Union(s Sets.Set[T]) {
	u.PutAll(s)
}

// Intersect removes the elements of u that aren't in s.
func (u *AVLTree[T]) Intersect(s Sets.Set[T]) {
	var gone []T
	u.Range(func(v T) bool {
		if !s.Has(v) {
			gone = append(gone, v)
		}
		return true
	})
	for _, v := range gone {
		u.Remove(v)
	}
}

// Filter returns a new AVLTree, with the same ordering, of the elements for
// which f is true. The kept elements are already sorted so the result is
// built with BuildFunc.
// Time: O(n)
func (u *AVLTree[T]) Filter(f func(T) bool) Sets.ExtendedSet[T] {
	kept := make([]T, 0, u.size)
	u.Range(func(v T) bool {
		if f(v) {
			kept = append(kept, v)
		}
		return true
	})
	return BuildFunc(kept, u.cmp, false)
}
