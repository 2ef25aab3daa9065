package spatial

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/random"
	"github.com/lixenwraith/mars-base-one/vmath"
	"github.com/lixenwraith/mars-base-one/worldgen"
)

func box(minX, minY, maxX, maxY float64) vmath.Rect {
	return vmath.Rect{Min: mgl64.Vec2{minX, minY}, Max: mgl64.Vec2{maxX, maxY}}
}

func ids(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	slices.Sort(out)
	return out
}

func bruteForce(entries []Entry, region vmath.Rect) []int {
	var out []int
	for _, e := range entries {
		if e.Bounds.Overlaps(region) {
			out = append(out, e.ID)
		}
	}
	slices.Sort(out)
	return out
}

// tileTree indexes the solid tiles of a generated cavern
func tileTree(t *testing.T) (*Tree, []Entry) {
	t.Helper()
	g, _, err := worldgen.GenerateCavern(worldgen.CavernConfig{Width: 200, Height: 200, Braiding: 0.25}, random.Seeded(1))
	if err != nil {
		t.Fatalf("GenerateCavern: %v", err)
	}

	tree, err := Build(mgl64.Vec2{10240, 7680}, 6)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	half := worldgen.HalfExtent(g, 24)
	var entries []Entry
	g.EachSolid(func(x, y int) {
		e := Entry{ID: y*g.Width + x, Bounds: worldgen.TileBounds(x, y, 24, half)}
		if !tree.Insert(e) {
			t.Fatalf("Insert rejected tile (%d,%d)", x, y)
		}
		entries = append(entries, e)
	})
	tree.Freeze()
	return tree, entries
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name     string
		extent   mgl64.Vec2
		depth    int
		capacity int
		want     error
	}{
		{"zero width", mgl64.Vec2{0, 100}, 4, 8, ErrInvalidExtent},
		{"negative height", mgl64.Vec2{100, -1}, 4, 8, ErrInvalidExtent},
		{"negative depth", mgl64.Vec2{100, 100}, -1, 8, ErrInvalidDepth},
		{"zero capacity", mgl64.Vec2{100, 100}, 4, 0, ErrInvalidCapacity},
		{"valid", mgl64.Vec2{100, 100}, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := BuildWithCapacity(tt.extent, tt.depth, tt.capacity)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if tt.want == nil && tree == nil {
				t.Fatal("nil tree without error")
			}
		})
	}

	if _, err := Build(mgl64.Vec2{0, 100}, 6); !errors.Is(err, ErrInvalidExtent) {
		t.Errorf("Build((0,100)) err = %v, want ErrInvalidExtent", err)
	}
}

func TestRootCenteredOnOrigin(t *testing.T) {
	tree, _ := Build(mgl64.Vec2{10240, 7680}, 6)
	want := box(-5120, -3840, 5120, 3840)
	if tree.Bounds() != want {
		t.Errorf("Bounds = %v, want %v", tree.Bounds(), want)
	}
}

func TestQueryMatchesBruteForce(t *testing.T) {
	tree, entries := tileTree(t)
	if tree.Len() != len(entries) {
		t.Fatalf("Len = %d, want %d", tree.Len(), len(entries))
	}
	if tree.Depth() == 0 || tree.Depth() > 6 {
		t.Errorf("Depth = %d, want 1..6", tree.Depth())
	}

	regions := []vmath.Rect{
		box(-100, -100, 100, 100),
		box(-2400, -2400, 2400, 2400),
		box(-12, -12, 12, 12),
		box(1000, -2000, 1300, -1500),
		box(-5000, 2300, -2300, 2500),
		box(0, 0, 0.5, 0.5),
		tree.Bounds(),
	}

	rng := random.Seeded(9)
	for i := 0; i < 50; i++ {
		x, y := rng.RangeFloat(-2600, 2600), rng.RangeFloat(-2600, 2600)
		w, h := rng.RangeFloat(1, 600), rng.RangeFloat(1, 600)
		regions = append(regions, box(x, y, x+w, y+h))
	}

	for i, r := range regions {
		got := tree.Query(r)
		want := bruteForce(entries, r)
		if !slices.Equal(ids(got), want) {
			t.Errorf("region %d %v: got %d entries, want %d", i, r, len(got), len(want))
		}
	}
}

func TestQueryReportsStraddlersOnce(t *testing.T) {
	tree, _ := BuildWithCapacity(mgl64.Vec2{100, 100}, 4, 1)
	// Centered box overlaps all four root quadrants
	tree.Insert(Entry{ID: 1, Bounds: box(-5, -5, 5, 5)})
	tree.Insert(Entry{ID: 2, Bounds: box(20, 20, 30, 30)})
	tree.Insert(Entry{ID: 3, Bounds: box(-30, -30, -20, -20)})
	tree.Freeze()

	if tree.Depth() == 0 {
		t.Fatal("tree did not split")
	}
	if s := tree.Stats(); s.Stored <= tree.Len() {
		t.Errorf("Stored = %d, want duplicates beyond %d", s.Stored, tree.Len())
	}

	got := ids(tree.Query(box(-50, -50, 50, 50)))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Query = %v, want [1 2 3]", got)
	}
}

func TestQueryOutsideIsEmpty(t *testing.T) {
	tree, _ := tileTree(t)
	outside := []vmath.Rect{
		box(6000, 0, 7000, 100),
		box(-9000, -9000, -8000, -8000),
		box(5120, -100, 5200, 100), // touches root edge only
		box(3000, 3000, 3500, 3500), // inside root, beyond the tiles
		box(-5100, -100, -2500, 100),
	}
	for _, r := range outside {
		if got := tree.Query(r); got != nil {
			t.Errorf("Query(%v) = %d entries, want nil", r, len(got))
		}
	}
}

func TestRandomBoxesMatchBruteForce(t *testing.T) {
	rng := random.Seeded(21)
	for trial := 0; trial < 200; trial++ {
		tree, _ := BuildWithCapacity(mgl64.Vec2{100, 100}, 3, 2)
		var stored []Entry
		for i := 0; i < 30; i++ {
			x, y := rng.RangeFloat(-70, 70), rng.RangeFloat(-70, 70)
			e := Entry{ID: i, Bounds: box(x, y, x+rng.RangeFloat(0.5, 30), y+rng.RangeFloat(0.5, 30))}
			inside := tree.Bounds().ContainsRect(e.Bounds)
			if got := tree.Insert(e); got != inside {
				t.Fatalf("trial %d: Insert(%v) = %v, want %v", trial, e.Bounds, got, inside)
			}
			if inside {
				stored = append(stored, e)
			}
		}
		tree.Freeze()

		for q := 0; q < 20; q++ {
			x, y := rng.RangeFloat(-80, 80), rng.RangeFloat(-80, 80)
			r := box(x, y, x+rng.RangeFloat(0.5, 40), y+rng.RangeFloat(0.5, 40))
			if got, want := ids(tree.Query(r)), bruteForce(stored, r); !slices.Equal(got, want) {
				t.Fatalf("trial %d region %v: got %v, want %v", trial, r, got, want)
			}
		}
	}
}

func TestInsertRejections(t *testing.T) {
	tree, _ := Build(mgl64.Vec2{100, 100}, 3)

	if tree.Insert(Entry{ID: 1, Bounds: box(60, 60, 70, 70)}) {
		t.Error("Insert accepted box outside root")
	}
	if tree.Insert(Entry{ID: 2, Bounds: box(0, 0, 0, 10)}) {
		t.Error("Insert accepted degenerate box")
	}
	if tree.Insert(Entry{ID: 3, Bounds: box(45, 45, 60, 60)}) {
		t.Error("Insert accepted box crossing the root edge")
	}
	if !tree.Insert(Entry{ID: 5, Bounds: box(40, 40, 50, 50)}) {
		t.Error("Insert rejected box touching the root edge from inside")
	}

	tree.Freeze()
	if !tree.Frozen() {
		t.Error("Frozen = false after Freeze")
	}
	if tree.Insert(Entry{ID: 4, Bounds: box(0, 0, 1, 1)}) {
		t.Error("Insert accepted after Freeze")
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1", tree.Len())
	}
}

func TestMaxDepthHoldsOverflow(t *testing.T) {
	tree, _ := BuildWithCapacity(mgl64.Vec2{64, 64}, 2, 2)
	// Identical boxes cannot be separated by splitting
	for i := 0; i < 10; i++ {
		tree.Insert(Entry{ID: i, Bounds: box(1, 1, 2, 2)})
	}
	tree.Freeze()

	if tree.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", tree.Depth())
	}
	if s := tree.Stats(); s.MaxLeafSize != 10 {
		t.Errorf("MaxLeafSize = %d, want 10", s.MaxLeafSize)
	}
	if got := tree.Query(box(0, 0, 4, 4)); len(got) != 10 {
		t.Errorf("Query = %d entries, want 10", len(got))
	}
}

func TestConcurrentQueries(t *testing.T) {
	tree, entries := tileTree(t)
	region := box(-600, -600, 600, 600)
	want := bruteForce(entries, region)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := ids(tree.Query(region)); !slices.Equal(got, want) {
					t.Errorf("concurrent query mismatch: %d vs %d", len(got), len(want))
					return
				}
			}
		}()
	}
	wg.Wait()
}
