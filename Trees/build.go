package Trees

import (
	"golang.org/x/exp/constraints"
)

// Build builds an AVLTree from the given slice recursively. This is faster than
// repeatedly calling Insert. The slice must be sorted in strictly ascending
// order. If safe==true, this function will check the order and panic with
// InvalidSliceError if it is broken. Otherwise, it won't perform the check, and
// it is up to the user to ensure the order (otherwise the tree will be corrupt).
// sli isn't retained.
// Time: O(n).
func Build[T constraints.Ordered](sli []T, safe bool) *AVLTree[T] {
	return BuildFunc(sli, compare[T], safe)
}

// BuildFunc is the NewFunc equivalence of Build, sli being ascending by cmp.
func BuildFunc[T any](sli []T, cmp func(a, b T) int, safe bool) *AVLTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if cmp(sli[i-1], sli[i]) >= 0 {
				panic(InvalidSliceError[T]{sli[i-1], sli[i], i})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		update(n)
		return n
	}
	return &AVLTree[T]{build(sli), uint(len(sli)), cmp}
}
