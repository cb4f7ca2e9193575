package aabbtree

import (
	"testing"

	"github.com/npillmayer/aabbtree/bbox"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// cube builds the axis-aligned cube spanning [a,b] in every dimension.
func cube(a, b float64) bbox.Box {
	return bbox.Must(bbox.Vec{a, a, a}, bbox.Vec{b, b, b})
}

func TestEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[string]()
	if !tree.Empty() {
		t.Errorf("new tree should be empty")
	}
	if tree.Height() != 0 {
		t.Errorf("empty tree height = %d, should be 0", tree.Height())
	}
	if !tree.Bounds().IsNaN() {
		t.Errorf("empty tree bounds should be the NaN sentinel, is %v", tree.Bounds())
	}
	if tree.Remove(cube(0, 1), "a") {
		t.Errorf("removal from an empty tree should report false")
	}
}

func TestSingleLeaf(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[string]()
	tree.Insert(cube(0, 1), "a")
	if tree.Empty() {
		t.Errorf("tree with one leaf should not be empty")
	}
	if tree.Height() != 1 {
		t.Errorf("height = %d, should be 1", tree.Height())
	}
	if tree.Bounds() != cube(0, 1) {
		t.Errorf("bounds = %v, should equal the inserted box", tree.Bounds())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if !tree.Remove(cube(0, 1), "a") {
		t.Errorf("expected removal of the sole leaf to succeed")
	}
	if !tree.Empty() {
		t.Errorf("tree should be empty after removing the last leaf")
	}
	if !tree.Bounds().IsNaN() {
		t.Errorf("emptied tree bounds should be the NaN sentinel")
	}
}

func TestThreeBoxScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[string]()
	tree.Insert(cube(0, 1), "a")
	tree.Insert(cube(2, 3), "b")
	tree.Insert(cube(10, 11), "c")
	if err := tree.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if h := tree.Height(); h < 2 || h > 3 {
		t.Errorf("height after three inserts = %d, should be 2 or 3", h)
	}
	if tree.Bounds() != cube(0, 11) {
		t.Errorf("root bounds = %v, should be %v", tree.Bounds(), cube(0, 11))
	}
	if !tree.Remove(cube(2, 3), "b") {
		t.Errorf("expected removal of 'b' to succeed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if tree.Bounds() != cube(0, 11) {
		t.Errorf("root bounds after removing 'b' = %v, should still be %v", tree.Bounds(), cube(0, 11))
	}
	if tree.Height() != 2 {
		t.Errorf("height after removing 'b' = %d, should be 2", tree.Height())
	}
	if tree.Count() != 2 {
		t.Errorf("count = %d, should be 2", tree.Count())
	}
}

func TestRemovePrunesUncontainedBox(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[string]()
	tree.Insert(cube(0, 1), "a")
	tree.Insert(cube(2, 3), "b")
	if tree.Remove(cube(10, 11), "z") {
		t.Errorf("removal with a box outside the root bounds should report false")
	}
	if tree.Count() != 2 {
		t.Errorf("pruned removal must leave the tree unchanged")
	}
}

func TestRemoveContainedButAbsent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[string]()
	tree.Insert(cube(0, 1), "a")
	tree.Insert(cube(2, 3), "b")
	tree.Insert(cube(10, 11), "c")
	// The box is contained in the root bounds but matches no leaf.
	if tree.Remove(cube(4, 5), "nobody") {
		t.Errorf("removal of an absent entry should report false")
	}
	if tree.Count() != 3 {
		t.Errorf("failed removal must leave the tree unchanged, count = %d", tree.Count())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err.Error())
	}
}

func TestDuplicateEntries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[string]()
	tree.Insert(cube(0, 1), "x")
	tree.Insert(cube(0, 1), "x")
	if tree.Count() != 2 {
		t.Fatalf("duplicate insert should create two leaves, count = %d", tree.Count())
	}
	if !tree.Remove(cube(0, 1), "x") {
		t.Errorf("first duplicate removal should succeed")
	}
	if tree.Count() != 1 {
		t.Errorf("count after first removal = %d, should be 1", tree.Count())
	}
	if !tree.Remove(cube(0, 1), "x") {
		t.Errorf("second duplicate removal should succeed")
	}
	if !tree.Empty() {
		t.Errorf("tree should be empty after removing both duplicates")
	}
	if tree.Remove(cube(0, 1), "x") {
		t.Errorf("third removal should report false")
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[int]()
	for i := 0; i < 8; i++ {
		tree.Insert(cube(float64(2*i), float64(2*i+1)), i)
	}
	count, bounds := tree.Count(), tree.Bounds()
	tree.Insert(cube(4.5, 5.5), 99)
	if !tree.Remove(cube(4.5, 5.5), 99) {
		t.Fatalf("expected round-trip removal to succeed")
	}
	if tree.Count() != count {
		t.Errorf("count after round trip = %d, should be %d", tree.Count(), count)
	}
	if tree.Bounds() != bounds {
		t.Errorf("bounds after round trip = %v, should be %v", tree.Bounds(), bounds)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err.Error())
	}
}

type payload struct {
	id   int
	name string
}

func TestCustomEquality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := NewFunc[payload](func(a, b payload) bool { return a.id == b.id })
	tree.Insert(cube(0, 1), payload{id: 1, name: "first"})
	tree.Insert(cube(2, 3), payload{id: 2, name: "second"})
	// The predicate ignores the name, so a mismatching name still matches.
	if !tree.Remove(cube(0, 1), payload{id: 1, name: "whatever"}) {
		t.Errorf("expected id-based removal to succeed")
	}
	if tree.Count() != 1 {
		t.Errorf("count = %d, should be 1", tree.Count())
	}
}

func TestRangeLeaf(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[int]()
	want := map[int]bool{}
	for i := 0; i < 10; i++ {
		tree.Insert(cube(float64(3*i), float64(3*i+1)), i)
		want[i] = true
	}
	got := map[int]bool{}
	for box, id := range tree.RangeLeaf() {
		if box != cube(float64(3*id), float64(3*id+1)) {
			t.Fatalf("iterator yielded box %v for payload %d", box, id)
		}
		got[id] = true
	}
	if len(got) != len(want) {
		t.Fatalf("iterator yielded %d leaves, want %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("iterator missed payload %d", id)
		}
	}
	// Early break must stop the walk.
	n := 0
	for range tree.RangeLeaf() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early break visited %d leaves, want 3", n)
	}
}

func TestEachLeafStopsOnError(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New[int]()
	for i := 0; i < 5; i++ {
		tree.Insert(cube(float64(2*i), float64(2*i+1)), i)
	}
	visited := 0
	err := tree.EachLeaf(func(_ bbox.Box, _ int) error {
		visited++
		if visited == 2 {
			return ErrInvariantViolated // any error will do
		}
		return nil
	})
	if err == nil {
		t.Fatalf("expected callback error to propagate")
	}
	if visited != 2 {
		t.Errorf("iteration visited %d leaves after error, want 2", visited)
	}
}
