package Trees

import (
	"fmt"
	"io"
)

// Print an ASCII picture of the tree to w, one node per line with its
// height and balance factor:
//
//	└── 20 (h:1, b:0)
//	    ├── 10 (h:0, b:0)
//	    └── 30 (h:0, b:0)
//
// A node with a single child shows the missing side as null. Nothing is
// written for an empty tree. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Print(w io.Writer) error {
	if u.root == nil {
		return nil
	}
	return printNode(w, u.root, "", false)
}

func printNode[T any](w io.Writer, n *node[T], prefix string, isLeft bool) error {
	branch, indent := "└── ", "    "
	if isLeft {
		branch, indent = "├── ", "│   "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v (h:%d, b:%d)\n", prefix, branch, n.v, n.h, balanceOf(n)); err != nil {
		return err
	}
	if n.l == nil && n.r == nil {
		return nil
	}
	prefix += indent
	var err error
	if n.l != nil {
		err = printNode(w, n.l, prefix, true)
	} else {
		_, err = fmt.Fprintf(w, "%s├── null\n", prefix)
	}
	if err != nil {
		return err
	}
	if n.r != nil {
		return printNode(w, n.r, prefix, false)
	}
	_, err = fmt.Fprintf(w, "%s└── null\n", prefix)
	return err
}
