package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	tree, err := runDemo(&buf, defaultConfig().Demo)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "10 (rotations: 0) 20 (rotations: 0) 30 (rotations: 1) 40 (rotations: 0) 50 (rotations: 1) 25 (rotations: 2)")
	assert.Contains(t, out, "Size: 6\n")
	assert.Contains(t, out, "Height: 2\n")
	assert.Contains(t, out, "Is balanced: true\n")
	assert.Contains(t, out, "Min: 10\n")
	assert.Contains(t, out, "Max: 50\n")
	assert.Contains(t, out, "Inorder: [10 20 25 30 40 50]\n")
	assert.Contains(t, out, "Preorder: [30 20 10 25 40 50]\n")
	assert.Contains(t, out, "Level order: [30 20 40 10 25 50]\n")
	assert.Contains(t, out, "Range query [20, 40]: [20 25 30 40]\n")
	assert.Contains(t, out, "After removing 30 (present: true):")
	assert.Contains(t, out, "└── 40 (h:2, b:1)\n")
	assert.Contains(t, out, "Still balanced: true\n")

	assert.Equal(t, []int{10, 20, 25, 40, 50}, tree.InOrderTraversal())
}

func TestRunDemo_Empty(t *testing.T) {
	var buf bytes.Buffer
	tree, err := runDemo(&buf, DemoConfig{Range: RangeConfig{Low: 0, High: 10}, Remove: []int{1}})
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	out := buf.String()
	assert.Contains(t, out, "Min: Tree is empty: cannot FindMin.\n")
	assert.Contains(t, out, "Max: Tree is empty: cannot FindMax.\n")
	assert.Contains(t, out, "Range query [0, 10]: []\n")
	assert.Contains(t, out, "After removing 1 (present: false):")
}

func TestRunRange(t *testing.T) {
	var buf bytes.Buffer
	res := runRange(&buf, []int{8, 3, 10, 1, 6, 14, 4, 7, 13}, 4, 10)
	assert.Equal(t, []int{4, 6, 7, 8, 10}, res)
	assert.Equal(t, "Range query [4, 10] over 9 values: [4 6 7 8 10]\n", buf.String())

	buf.Reset()
	assert.Empty(t, runRange(&buf, []int{1, 2, 3}, 5, 4))
}

func TestRunStress(t *testing.T) {
	rep, err := runStress(StressConfig{Ops: 5000, Seed: 0, ValueRange: 500})
	require.NoError(t, err)
	assert.Equal(t, 5000, rep.Ops)
	assert.Equal(t, uint(rep.Inserted-rep.Removed), rep.Size)
	assert.LessOrEqual(t, rep.MaxHeight, 13)
	assert.Positive(t, rep.Rotations)

	again, err := runStress(StressConfig{Ops: 5000, Seed: 0, ValueRange: 500})
	require.NoError(t, err)
	assert.Equal(t, rep, again, "same seed gives the same run")
}
