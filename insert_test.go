package avltree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertSteps(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for i, x := range []struct {
		keys  []int
		steps []int
	}{
		{[]int{1, 2, 3}, []int{0, 1, 3}},       // promotion, then single rotation
		{[]int{3, 2, 1}, []int{0, 1, 3}},       // mirrored
		{[]int{3, 1, 2}, []int{0, 1, 6}},       // promotion, then double rotation
		{[]int{1, 3, 2}, []int{0, 1, 6}},       // mirrored
		{[]int{2, 1, 3}, []int{0, 1, 0}},       // second child of a non-leaf
		{[]int{2, 1, 3, 4}, []int{0, 1, 0, 2}}, // two promotions
	} {
		tree := New()
		for j, k := range x.keys {
			steps, err := tree.Insert(k, value(k))
			if err != nil {
				t.Fatalf("%d: insert(%d) failed: %v", i, k, err)
			}
			if steps != x.steps[j] {
				t.Errorf("%d: expected insert(%d) to take %d steps, took %d", i, k, x.steps[j], steps)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("%d: %v", i, err)
			}
		}
	}
}

func TestInsertAscending(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := New()
	for k := 0; k < 1023; k++ {
		tree.Insert(k, value(k))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	// ascending inserts produce a perfect tree for 2^k - 1 keys
	if tree.Height() != 9 || tree.Size() != 1023 {
		t.Errorf("expected height 9 and size 1023, have %d and %d", tree.Height(), tree.Size())
	}
}
