package store

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	in := map[string]string{"a": "1", "b": "2"}
	if err := st.Put(ctx, BucketUsers, in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	out := make(map[string]string)
	if err := st.Get(ctx, BucketUsers, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(out) != 2 || out["a"] != "1" || out["b"] != "2" {
		t.Fatalf("unexpected round trip result: %v", out)
	}
}

func TestMemoryStoreUnknownBucketLeavesOutUntouched(t *testing.T) {
	st := NewMemoryStore()

	out := map[string]string{"existing": "value"}
	if err := st.Get(context.Background(), "nope", &out); err != nil {
		t.Fatalf("get on unknown bucket should not error: %v", err)
	}
	if out["existing"] != "value" {
		t.Fatalf("out was modified: %v", out)
	}
}

func TestMemoryStorePutCopiesValue(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	in := map[string]int{"x": 1}
	if err := st.Put(ctx, BucketClubs, in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// Mutating the original after Put must not leak into the store
	in["x"] = 99

	out := make(map[string]int)
	if err := st.Get(ctx, BucketClubs, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out["x"] != 1 {
		t.Fatalf("stored value was aliased, got %d", out["x"])
	}
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Put(ctx, BucketEvents, map[string]string{"first": "1"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := st.Put(ctx, BucketEvents, map[string]string{"second": "2"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	out := make(map[string]string)
	if err := st.Get(ctx, BucketEvents, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, ok := out["first"]; ok {
		t.Fatal("earlier write should have been replaced entirely")
	}
	if out["second"] != "2" {
		t.Fatalf("unexpected contents: %v", out)
	}
}
