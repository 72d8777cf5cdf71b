package Trees

import "fmt"

// EmptyTreeError is returned by operations that need at least one element,
// such as FindMin and FindMax, when called on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is empty: cannot " + e.Op + "."
}

// InvalidSliceError is the panic value of Build when the given slice isn't
// strictly ascending. Prev and Next are the offending neighbours, Next being
// at Index.
type InvalidSliceError[T any] struct {
	Prev, Next T
	Index      int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v is followed by %v", e.Index, e.Prev, e.Next)
}
