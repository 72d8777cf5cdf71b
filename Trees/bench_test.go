package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	size = 1 << 15
)

func BenchmarkAVLTree_Insert(b *testing.B) {
	var t *AVLTree[int]
	perm := rand.Perm(size)
	for range b.N {
		t = New[int]()
		for _, j := range perm {
			t.Insert(j)
		}
	}
	b.Log(t.averageDepth())
}

func BenchmarkAVLTree_Delete(b *testing.B) {
	sorted := make([]int, size)
	for i := range sorted {
		sorted[i] = i
	}
	perm := rand.Perm(size)
	for range b.N {
		b.StopTimer()
		t := Build(sorted, false)
		b.StartTimer()
		for _, j := range perm {
			t.Remove(j)
		}
	}
}

func BenchmarkAVLTree_All(b *testing.B) {
	var t *AVLTree[int]
	for range b.N {
		t = New[int]()
		for j := range rand.Perm(size / 2) {
			t.Insert(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Remove(j)
			}
		}
		for j := range rand.Perm(size / 2) {
			t.Insert(j + size)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Insert(j)
			}
		}
	}
	b.Log(t.averageDepth())
}

func BenchmarkAVLTree_RangeQuery(b *testing.B) {
	t := New[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := range b.N {
		lo := i % size
		_ = t.RangeQuery(lo, lo+64)
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	perm := rand.Perm(size)
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, j := range perm {
			t.Put(j, nil)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	perm := rand.Perm(size)
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, j := range perm {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	perm := rand.Perm(size)
	for range b.N {
		t := llrb.New()
		for _, j := range perm {
			t.ReplaceOrInsert(llrb.Int(j))
		}
	}
}

func BenchmarkLLRB_Delete(b *testing.B) {
	perm := rand.Perm(size)
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, j := range perm {
			t.ReplaceOrInsert(llrb.Int(j))
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Delete(llrb.Int(j))
		}
	}
}
