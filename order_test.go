package avltree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSelectRank(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New()
	for k := 100; k > 0; k -= 2 {
		tree.Insert(k, value(k))
	}
	for i := 0; i < tree.Size(); i++ {
		n, err := tree.Select(i)
		if err != nil {
			t.Fatalf("select(%d) failed: %v", i, err)
		}
		if n.Key() != 2*(i+1) {
			t.Errorf("expected select(%d) to be %d, is %d", i, 2*(i+1), n.Key())
		}
		r, err := tree.Rank(n.Key())
		if err != nil || r != i {
			t.Errorf("expected rank(%d) = %d, is %d (%v)", n.Key(), i, r, err)
		}
	}
	for _, i := range []int{-1, 50, 1000} {
		if _, err := tree.Select(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("expected select(%d) to be out of bounds, got %v", i, err)
		}
	}
	if _, err := tree.Rank(3); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected rank of missing key to fail, got %v", err)
	}
	if _, err := New().Select(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected select on empty tree to fail, got %v", err)
	}
}
