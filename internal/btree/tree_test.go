package btree

import "testing"

func TestInsertAndFind(t *testing.T) {
	tree := New[int, string](OrderedCompare[int]())

	if err := tree.Insert(1, "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tree.Find(1)
	if len(got) != 1 || got[0] != "one" {
		t.Errorf("expected [one], got %v", got)
	}

	if tree.Size() != 1 {
		t.Errorf("expected size 1, got %d", tree.Size())
	}
}

func TestInsertDuplicateFails(t *testing.T) {
	tree := New[int, string](OrderedCompare[int]())

	if err := tree.Insert(1, "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := tree.Insert(1, "uno")
	if err == nil {
		t.Fatal("expected ErrDuplicateKey, got nil")
	}
	if got := tree.Find(1); len(got) != 1 || got[0] != "one" {
		t.Errorf("duplicate insert should not modify existing value, got %v", got)
	}
}

func TestFindAbsentKeyReturnsEmpty(t *testing.T) {
	tree := New[int, string](OrderedCompare[int]())
	tree.Insert(1, "one")

	if got := tree.Find(99); len(got) != 0 {
		t.Errorf("expected no result for absent key, got %v", got)
	}
}

func TestRangeSearchAcrossSplit(t *testing.T) {
	tree := NewWithOrder[int, int](4, OrderedCompare[int]())

	for i := 1; i <= 10; i++ {
		if err := tree.Insert(i, i*100); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	if h := tree.Height(); h < 2 {
		t.Errorf("expected tree to have split into multiple levels, height=%d", h)
	}

	got := tree.RangeSearch(3, 7)
	want := []int{300, 400, 500, 600, 700}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRemoveWithMerge(t *testing.T) {
	tree := NewWithOrder[int, int](4, OrderedCompare[int]())

	for i := 1; i <= 5; i++ {
		if err := tree.Insert(i, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	tree.Remove(3)
	tree.Remove(4)

	if tree.Size() != 3 {
		t.Errorf("expected size 3 after removals, got %d", tree.Size())
	}

	for _, k := range []int{1, 2, 5} {
		if got := tree.Find(k); len(got) != 1 {
			t.Errorf("expected key %d to remain, got %v", k, got)
		}
	}
	for _, k := range []int{3, 4} {
		if got := tree.Find(k); len(got) != 0 {
			t.Errorf("expected key %d to be gone, got %v", k, got)
		}
	}

	got := tree.RangeSearch(1, 5)
	want := []int{1, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRemoveAbsentKeyIsNoop(t *testing.T) {
	tree := New[int, int](OrderedCompare[int]())
	tree.Insert(1, 1)
	tree.Remove(99)
	if tree.Size() != 1 {
		t.Errorf("expected size unchanged, got %d", tree.Size())
	}
}

func TestClearEmptiesTree(t *testing.T) {
	tree := New[int, int](OrderedCompare[int]())
	for i := 0; i < 20; i++ {
		tree.Insert(i, i)
	}
	tree.Clear()
	if !tree.Empty() || tree.Size() != 0 {
		t.Errorf("expected empty tree after Clear, size=%d", tree.Size())
	}
	if tree.Height() != 0 {
		t.Errorf("expected height 0 after Clear, got %d", tree.Height())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tree := New[int, int](OrderedCompare[int]())
	for i := 0; i < 50; i++ {
		tree.Insert(i, i)
	}

	clone := tree.Clone()
	clone.Insert(1000, 1000)
	clone.Remove(0)

	if got := tree.Find(1000); len(got) != 0 {
		t.Errorf("mutating clone should not affect original, found %v", got)
	}
	if got := tree.Find(0); len(got) != 1 {
		t.Errorf("removing from clone should not affect original")
	}
	if got := clone.Find(0); len(got) != 0 {
		t.Errorf("expected 0 removed from clone")
	}
	if tree.Size() != 50 {
		t.Errorf("expected original size unchanged at 50, got %d", tree.Size())
	}
	if clone.Size() != 50 {
		t.Errorf("expected clone size 50, got %d", clone.Size())
	}
}

func TestMoveFromTransfersAndResets(t *testing.T) {
	src := New[int, int](OrderedCompare[int]())
	for i := 0; i < 10; i++ {
		src.Insert(i, i*i)
	}
	dst := New[int, int](OrderedCompare[int]())
	dst.Insert(999, 999)

	dst.MoveFrom(src)

	if dst.Size() != 10 {
		t.Errorf("expected dst size 10 after move, got %d", dst.Size())
	}
	if got := dst.Find(5); len(got) != 1 || got[0] != 25 {
		t.Errorf("expected moved data present, got %v", got)
	}
	if !src.Empty() {
		t.Errorf("expected src empty after move, size=%d", src.Size())
	}
}

func TestIteratorWalksAscending(t *testing.T) {
	tree := NewWithOrder[int, int](4, OrderedCompare[int]())
	for _, k := range []int{5, 3, 8, 1, 9, 2} {
		tree.Insert(k, k)
	}

	var seen []int
	for it := tree.Begin(); it.Valid(); it.Next() {
		k, _ := it.KeyValue()
		seen = append(seen, k)
	}

	want := []int{1, 2, 3, 5, 8, 9}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], seen[i])
		}
	}
}

func TestFilterIteratorSkipsNonMatching(t *testing.T) {
	tree := New[int, int](OrderedCompare[int]())
	for i := 1; i <= 10; i++ {
		tree.Insert(i, i)
	}

	fi := tree.Filter(func(k, v int) bool { return k%2 == 0 })
	var seen []int
	for ; fi.Valid(); fi.Next() {
		k, _ := fi.KeyValue()
		seen = append(seen, k)
	}

	want := []int{2, 4, 6, 8, 10}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
}

func TestPrefixSearch(t *testing.T) {
	tree := New[string, int](OrderedCompare[string]())
	tree.Insert("uid=alice", 1)
	tree.Insert("uid=bob", 2)
	tree.Insert("cn=alice", 3)

	got := PrefixSearch[string](tree, "uid=")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for prefix uid=, got %v", got)
	}
}

func TestPrefixSearchEmptyPrefixMatchesEverything(t *testing.T) {
	tree := New[string, int](OrderedCompare[string]())
	tree.Insert("uid=alice", 1)
	tree.Insert("uid=bob", 2)
	tree.Insert("cn=alice", 3)

	got := PrefixSearch[string](tree, "")
	if len(got) != 3 {
		t.Fatalf("expected empty prefix to match all 3 entries, got %v", got)
	}
}

func TestFillFactorZeroWhenEmpty(t *testing.T) {
	tree := New[int, int](OrderedCompare[int]())
	if ff := tree.FillFactor(); ff != 0 {
		t.Errorf("expected fill factor 0 for empty tree, got %f", ff)
	}
}
