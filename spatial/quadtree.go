// Package spatial provides a static quad-tree for broad-phase region queries
package spatial

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/vmath"
)

var (
	ErrInvalidExtent   = errors.New("spatial: extent must be positive on both axes")
	ErrInvalidDepth    = errors.New("spatial: max depth must be non-negative")
	ErrInvalidCapacity = errors.New("spatial: leaf capacity must be at least 1")
)

// Entry is one indexed box
type Entry struct {
	ID     int
	Bounds vmath.Rect
}

// node is a leaf holding entry indices, or an internal node with four equal children
type node struct {
	bounds   vmath.Rect
	depth    int
	items    []int
	children *[4]node
}

func (n *node) leaf() bool { return n.children == nil }

// Tree is a region quad-tree over axis-aligned boxes
// Built once, then frozen; a frozen tree is safe for concurrent Query calls
type Tree struct {
	root     node
	entries  []Entry
	maxDepth int
	capacity int
	depth    int
	frozen   bool
}

// Stats describes the tree shape
type Stats struct {
	Nodes       int
	Leaves      int
	Stored      int // entry references across leaves, straddlers counted per leaf
	MaxLeafSize int
}

// Build creates an empty tree whose root region is centered on the origin
func Build(extent mgl64.Vec2, maxDepth int) (*Tree, error) {
	return BuildWithCapacity(extent, maxDepth, parameter.QuadLeafCapacity)
}

// BuildWithCapacity creates an empty tree with an explicit per-leaf capacity
func BuildWithCapacity(extent mgl64.Vec2, maxDepth, capacity int) (*Tree, error) {
	if !(extent[0] > 0) || !(extent[1] > 0) {
		return nil, fmt.Errorf("extent %v: %w", extent, ErrInvalidExtent)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("depth %d: %w", maxDepth, ErrInvalidDepth)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	return &Tree{
		root:     node{bounds: vmath.RectFromCenter(mgl64.Vec2{}, extent)},
		maxDepth: maxDepth,
		capacity: capacity,
	}, nil
}

// Insert adds an entry during construction
// Returns false if the tree is frozen, the box is degenerate, or it is not fully inside the root region
func (t *Tree) Insert(e Entry) bool {
	if t.frozen || e.Bounds.Empty() || !t.root.bounds.ContainsRect(e.Bounds) {
		return false
	}
	idx := len(t.entries)
	t.entries = append(t.entries, e)
	t.insert(&t.root, idx)
	return true
}

func (t *Tree) insert(n *node, idx int) {
	if !n.leaf() {
		box := t.entries[idx].Bounds
		for i := range n.children {
			if n.children[i].bounds.Overlaps(box) {
				t.insert(&n.children[i], idx)
			}
		}
		return
	}

	n.items = append(n.items, idx)
	if len(n.items) > t.capacity && n.depth < t.maxDepth {
		t.split(n)
	}
}

// split turns a leaf into an internal node and redistributes its entries
func (t *Tree) split(n *node) {
	quads := n.bounds.Quadrants()
	n.children = new([4]node)
	for i := range quads {
		n.children[i] = node{bounds: quads[i], depth: n.depth + 1}
	}
	if n.depth+1 > t.depth {
		t.depth = n.depth + 1
	}

	items := n.items
	n.items = nil
	for _, idx := range items {
		t.insert(n, idx)
	}
}

// Freeze ends construction; later inserts are rejected
func (t *Tree) Freeze() {
	t.frozen = true
}

// Frozen reports whether construction has ended
func (t *Tree) Frozen() bool {
	return t.frozen
}

// Query returns every entry whose box overlaps region, each once, in insertion order
// Region entirely outside the root returns nil
func (t *Tree) Query(region vmath.Rect) []Entry {
	if region.Empty() || !t.root.bounds.Overlaps(region) {
		return nil
	}

	seen := make(map[int]struct{})
	var hits []int
	t.query(&t.root, region, seen, &hits)
	if len(hits) == 0 {
		return nil
	}

	slices.Sort(hits)
	out := make([]Entry, len(hits))
	for i, idx := range hits {
		out[i] = t.entries[idx]
	}
	return out
}

func (t *Tree) query(n *node, region vmath.Rect, seen map[int]struct{}, hits *[]int) {
	if n.leaf() {
		for _, idx := range n.items {
			if _, dup := seen[idx]; dup {
				continue
			}
			if t.entries[idx].Bounds.Overlaps(region) {
				seen[idx] = struct{}{}
				*hits = append(*hits, idx)
			}
		}
		return
	}
	for i := range n.children {
		if n.children[i].bounds.Overlaps(region) {
			t.query(&n.children[i], region, seen, hits)
		}
	}
}

// Len returns the number of distinct entries inserted
func (t *Tree) Len() int {
	return len(t.entries)
}

// Depth returns the deepest level reached; a single leaf root is depth 0
func (t *Tree) Depth() int {
	return t.depth
}

// MaxDepth returns the configured split limit
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Bounds returns the root region
func (t *Tree) Bounds() vmath.Rect {
	return t.root.bounds
}

// Stats walks the tree and reports its shape
func (t *Tree) Stats() Stats {
	var s Stats
	var walk func(n *node)
	walk = func(n *node) {
		s.Nodes++
		if n.leaf() {
			s.Leaves++
			s.Stored += len(n.items)
			s.MaxLeafSize = max(s.MaxLeafSize, len(n.items))
			return
		}
		for i := range n.children {
			walk(&n.children[i])
		}
	}
	walk(&t.root)
	return s
}
