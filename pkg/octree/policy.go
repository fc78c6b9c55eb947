package octree

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Policy decides whether a node is split while a tree is built. depth is the
// depth of the node, the root being 0.
type Policy interface {
	Subdivide(b Bounds, depth, maxDepth int, ref math3d.Vec3) bool
}

// DistancePolicy splits nodes closer to the reference point than their own
// size. It produces rings of increasing size around the viewer.
type DistancePolicy struct{}

// Subdivide implements Policy.
func (DistancePolicy) Subdivide(b Bounds, depth, maxDepth int, ref math3d.Vec3) bool {
	return depth < maxDepth && b.Center.Distance(ref) < b.Size
}

// BranchPolicy splits only the nodes on the path to the reference point, so a
// single branch reaches full depth and every sibling along it stays a leaf.
// A point on a face or corner shared by several children follows the first
// of them in corner order.
type BranchPolicy struct{}

// Subdivide implements Policy.
func (BranchPolicy) Subdivide(b Bounds, depth, maxDepth int, ref math3d.Vec3) bool {
	return depth < maxDepth && b.Contains(ref)
}

// Branch returns the only child of parent that may be split further.
func (BranchPolicy) Branch(parent Bounds, ref math3d.Vec3) int {
	return parent.ChildIndex(ref)
}

// Policy names accepted by ParsePolicy.
const (
	PolicyDistance = "distance"
	PolicyBranch   = "branch"
)

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyDistance, "":
		return DistancePolicy{}, nil
	case PolicyBranch:
		return BranchPolicy{}, nil
	default:
		return nil, errors.New("unknown subdivision policy").
			WithTag("policy", name)
	}
}
