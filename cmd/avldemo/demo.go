package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/lipgloss"

	"github.com/g-m-twostay/go-avl/Trees"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

// runDemo inserts the configured values with stats, prints the tree and its
// statistics, traversals and a range query, then removes the configured
// values and prints the tree again.
func runDemo(w io.Writer, c DemoConfig) (*Trees.AVLTree[int], error) {
	tree := Trees.New[int]()
	fmt.Fprintln(w, titleStyle.Render("=== AVL Tree Demonstration ==="))

	fmt.Fprint(w, "Inserting values: ")
	for _, v := range c.Values {
		fmt.Fprintf(w, "%d ", v)
		if s := tree.InsertWithStats(v); s.Inserted {
			fmt.Fprintf(w, "(rotations: %d) ", s.Rotations)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\n"+sectionStyle.Render("AVL Tree structure:"))
	if err := tree.Print(w); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "\n"+sectionStyle.Render("Tree statistics:"))
	fmt.Fprintf(w, "Size: %d\n", tree.Size())
	fmt.Fprintf(w, "Height: %d\n", tree.Height())
	fmt.Fprintf(w, "Is balanced: %t\n", tree.IsBalanced())
	if mn, err := tree.FindMin(); err != nil {
		fmt.Fprintf(w, "Min: %v\n", err)
	} else {
		fmt.Fprintf(w, "Min: %d\n", mn)
	}
	if mx, err := tree.FindMax(); err != nil {
		fmt.Fprintf(w, "Max: %v\n", err)
	} else {
		fmt.Fprintf(w, "Max: %d\n", mx)
	}

	fmt.Fprintln(w, "\n"+sectionStyle.Render("Traversals:"))
	fmt.Fprintf(w, "Inorder: %v\n", tree.InOrderTraversal())
	fmt.Fprintf(w, "Preorder: %v\n", tree.PreOrderTraversal())
	fmt.Fprintf(w, "Level order: %v\n", tree.LevelOrderTraversal())

	fmt.Fprintf(w, "\nRange query [%d, %d]: %v\n", c.Range.Low, c.Range.High, tree.RangeQuery(c.Range.Low, c.Range.High))

	for _, v := range c.Remove {
		removed := tree.Remove(v)
		fmt.Fprintln(w, "\n"+sectionStyle.Render(fmt.Sprintf("After removing %d (present: %t):", v, removed)))
		if err := tree.Print(w); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Still balanced: %t\n", tree.IsBalanced())
	}
	return tree, nil
}

// runRange builds a tree of values and prints the values in [low, high].
func runRange(w io.Writer, values []int, low, high int) []int {
	tree := Trees.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	res := tree.RangeQuery(low, high)
	fmt.Fprintf(w, "Range query [%d, %d] over %d values: %v\n", low, high, tree.Size(), res)
	return res
}

type stressReport struct {
	Ops       int
	Inserted  int
	Removed   int
	Rotations int
	MaxHeight int
	Size      uint
}

// runStress applies c.Ops random inserts and removes and checks order, size,
// balance and the AVL height bound after every one of them.
func runStress(c StressConfig) (stressReport, error) {
	r := rand.New(rand.NewSource(c.Seed))
	tree := Trees.New[int]()
	var rep stressReport
	for ; rep.Ops < c.Ops; rep.Ops++ {
		v := r.Intn(c.ValueRange)
		if r.Intn(2) == 0 {
			if s := tree.InsertWithStats(v); s.Inserted {
				rep.Inserted++
				rep.Rotations += s.Rotations
			}
		} else if tree.Remove(v) {
			rep.Removed++
		}
		if tree.Corrupt() {
			return rep, fmt.Errorf("tree corrupt after op %d on %d", rep.Ops, v)
		}
		if !tree.IsBalanced() {
			return rep, fmt.Errorf("tree unbalanced after op %d on %d", rep.Ops, v)
		}
		bound := 1.4405*math.Log2(float64(tree.Size())+2) - 0.328
		if h := tree.Height(); float64(h) > bound {
			return rep, fmt.Errorf("height %d exceeds %.2f at size %d", h, bound, tree.Size())
		} else if h > rep.MaxHeight {
			rep.MaxHeight = h
		}
	}
	rep.Size = tree.Size()
	return rep, nil
}
