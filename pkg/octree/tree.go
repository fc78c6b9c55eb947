// Package octree partitions space into cube regions whose size grows with
// the distance from a reference point.
package octree

import (
	"math"

	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/transvoxel"
)

// Tree is an immutable octree stored as an arena of nodes. The children of
// a node are contiguous and follow corner order.
type Tree struct {
	nodes    []node
	maxDepth int
}

type node struct {
	bounds Bounds
	depth  int

	// Index of the first of eight children, or -1 for a leaf.
	children int
}

func (n node) leaf() bool {
	return n.children < 0
}

// Build subdivides root around ref until policy stops or maxDepth is
// reached. The smallest possible leaf is root.Size / 2^maxDepth.
func Build(root Bounds, ref math3d.Vec3, maxDepth int, policy Policy) *Tree {
	t := &Tree{
		nodes:    []node{{bounds: root, children: -1}},
		maxDepth: maxDepth,
	}
	t.split(0, ref, policy)
	return t
}

func (t *Tree) split(i int, ref math3d.Vec3, policy Policy) {
	n := t.nodes[i]
	if !policy.Subdivide(n.bounds, n.depth, t.maxDepth, ref) {
		return
	}

	first := len(t.nodes)
	t.nodes[i].children = first
	for c := range 8 {
		t.nodes = append(t.nodes, node{
			bounds:   n.bounds.Child(c),
			depth:    n.depth + 1,
			children: -1,
		})
	}
	if br, ok := policy.(brancher); ok {
		t.split(first+br.Branch(n.bounds, ref), ref, policy)
		return
	}
	for c := range 8 {
		t.split(first+c, ref, policy)
	}
}

// brancher is implemented by policies that descend into a single child of
// every split node.
type brancher interface {
	Branch(parent Bounds, ref math3d.Vec3) int
}

// Root returns the bounds of the whole tree.
func (t *Tree) Root() Bounds {
	return t.nodes[0].bounds
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the bounds of every leaf, depth first in corner order.
func (t *Tree) Leaves() []Bounds {
	var leaves []Bounds
	t.walk(0, func(n node) {
		leaves = append(leaves, n.bounds)
	})
	return leaves
}

func (t *Tree) walk(i int, fn func(node)) {
	n := t.nodes[i]
	if n.leaf() {
		fn(n)
		return
	}
	for c := range 8 {
		t.walk(n.children+c, fn)
	}
}

// NeighborBoundsAt returns the leaf containing p. Points on a shared face
// resolve to the first child in corner order. It returns false when p lies
// outside the root.
func (t *Tree) NeighborBoundsAt(p math3d.Vec3) (Bounds, bool) {
	n := t.nodes[0]
	if !n.bounds.Contains(p) {
		return Bounds{}, false
	}

	for !n.leaf() {
		n = t.nodes[n.children+n.bounds.ChildIndex(p)]
	}
	return n.bounds, true
}

// FaceMask returns the faces of b that border a larger leaf. The neighbor on
// each side is looked up at b's center moved one size along the axis.
func (t *Tree) FaceMask(b Bounds) transvoxel.FaceMask {
	var mask transvoxel.FaceMask
	for _, d := range transvoxel.Directions {
		step := b.Size
		if !d.Positive() {
			step = -step
		}
		axis := d.Axis()
		probe := b.Center.WithAxis(axis, b.Center.Axis(axis)+step)

		neighbor, ok := t.NeighborBoundsAt(probe)
		if ok && neighbor.Size > b.Size {
			mask = mask.With(d)
		}
	}
	return mask
}

// Level returns how many times the root was halved to reach b.
func (t *Tree) Level(b Bounds) int {
	return int(math.Round(math.Log2(t.Root().Size / b.Size)))
}
