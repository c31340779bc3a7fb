package avltree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keyRange(from, to int) []int {
	keys := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func TestJoinEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, other := New(), New()
	if cost := tree.Join(NewNode(5, value(5)), other); cost != 1 {
		t.Errorf("expected joining two empty trees to cost 1, cost %d", cost)
	}
	if tree.Size() != 1 || tree.Root().Key() != 5 {
		t.Errorf("expected a single node 5, have %v", tree.Keys())
	}
	// receiver empty, other of height 1
	tree, other = New(), build(t, 10, 20)
	if cost := tree.Join(NewNode(5, value(5)), other); cost != 3 {
		t.Errorf("expected cost 3, is %d", cost)
	}
	if !other.Empty() {
		t.Errorf("expected other to be emptied by Join")
	}
	if keys := tree.Keys(); !slices.Equal(keys, []int{5, 10, 20}) {
		t.Errorf("expected keys 5, 10, 20, have %v", keys)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	// other empty
	tree = build(t, 1, 2, 3)
	if cost := tree.Join(NewNode(4, value(4)), New()); cost != 3 {
		t.Errorf("expected cost 3, is %d", cost)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if tree.MaxNode().Key() != 4 {
		t.Errorf("expected new max 4, is %v", tree.MaxNode())
	}
}

func TestJoinHeights(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, sizes := range [][2]int{{1, 1}, {7, 7}, {100, 3}, {3, 100}, {1, 500}, {500, 1}, {64, 65}, {31, 200}} {
		low := build(t, keyRange(0, sizes[0])...)
		high := build(t, keyRange(sizes[0]+1, sizes[0]+1+sizes[1])...)
		expected := abs(low.Height()-high.Height()) + 1
		// join in both directions: receiver holding the lower and the upper keys
		for _, lowIsReceiver := range []bool{true, false} {
			a, b := build(t, low.Keys()...), build(t, high.Keys()...)
			if !lowIsReceiver {
				a, b = b, a
			}
			cost := a.Join(NewNode(sizes[0], value(sizes[0])), b)
			if cost != expected {
				t.Errorf("%v: expected join cost %d, is %d", sizes, expected, cost)
			}
			if err := a.Check(); err != nil {
				t.Fatalf("%v: %v", sizes, err)
			}
			if !b.Empty() {
				t.Errorf("%v: expected other tree to be empty", sizes)
			}
			if keys := a.Keys(); !slices.Equal(keys, keyRange(0, sizes[0]+1+sizes[1])) {
				t.Errorf("%v: joined tree holds wrong keys", sizes)
			}
			if v, _ := a.Search(sizes[0]); v != value(sizes[0]) {
				t.Errorf("%v: connector value lost", sizes)
			}
		}
	}
}

func TestSplit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	const n = 100
	for _, k := range []int{0, 1, 37, 50, 63, 98, 99} {
		tree := build(t, keyRange(0, n)...)
		left, right := tree.Split(k)
		if !tree.Empty() {
			t.Errorf("split(%d): expected original tree to be empty", k)
		}
		if err := left.Check(); err != nil {
			t.Fatalf("split(%d), left: %v", k, err)
		}
		if err := right.Check(); err != nil {
			t.Fatalf("split(%d), right: %v", k, err)
		}
		if keys := left.Keys(); !slices.Equal(keys, keyRange(0, k)) {
			t.Errorf("split(%d): left tree has keys %v", k, keys)
		}
		if keys := right.Keys(); !slices.Equal(keys, keyRange(k+1, n)) {
			t.Errorf("split(%d): right tree has keys %v", k, keys)
		}
		for _, key := range right.Keys() {
			if v, _ := right.Search(key); v != value(key) {
				t.Errorf("split(%d): value of %d lost", k, key)
			}
		}
	}
}

func TestSplitJoinInverse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := New()
	keys := make([]int, 0, 200)
	for i := 0; i < 200; i++ {
		k := (i * 37) % 211
		tree.Insert(k, value(k))
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range []int{keys[0], keys[17], keys[100], keys[199]} {
		left, right := tree.Split(k)
		left.Join(NewNode(k, value(k)), right)
		if err := left.Check(); err != nil {
			t.Fatalf("rejoin at %d: %v", k, err)
		}
		if !slices.Equal(left.Keys(), keys) {
			t.Fatalf("rejoin at %d: key set differs", k)
		}
		tree = left
	}
}

func TestSplitMissingKey(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected split at a missing key to panic")
		}
	}()
	tree := build(t, 1, 2, 3)
	tree.Split(4)
}

func TestSplitDetachesPath(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := build(t, keyRange(0, 64)...)
	pivot, err := tree.Select(21)
	if err != nil {
		t.Fatal(err)
	}
	var path []*Node
	for n := pivot; n != nil; n = n.Parent() {
		path = append(path, n)
	}
	left, right := tree.Split(21)
	for _, n := range path {
		if n.Left() != nil || n.Right() != nil || n.Parent() != nil {
			t.Errorf("expected node %d of the split path to be detached, is linked", n.Key())
		}
	}
	if err := left.Check(); err != nil {
		t.Error(err)
	}
	if err := right.Check(); err != nil {
		t.Error(err)
	}
	if left.Size()+right.Size() != 63 {
		t.Errorf("expected 63 keys in the results, have %d", left.Size()+right.Size())
	}
}
