package transvoxel

import (
	"github.com/taigrr/terrace/pkg/math3d"
)

// transitionFlip marks the faces whose axis permutation mirrors the
// transition cell, so stored triangle winding must be reversed there. Face
// coordinates (u, v) map to (z, y) on X faces and (x, z) on Y faces, both odd
// permutations; positive faces also mirror the depth axis. The result is
// checked against a convex fixture in the tests.
var transitionFlip = [6]bool{
	NegX: true,
	PosX: false,
	NegY: true,
	PosY: false,
	NegZ: false,
	PosZ: true,
}

// facePoint maps face-local coordinates on face d to a region lattice
// position.
func facePoint(d Direction, u, v, size int) math3d.Int3 {
	depth := 0
	if d.Positive() {
		depth = size
	}
	switch d.Axis() {
	case 0:
		return math3d.I3(depth, v, u)
	case 1:
		return math3d.I3(u, depth, v)
	default:
		return math3d.I3(u, v, depth)
	}
}

// extractTransition emits transition cells over face d, one per 2x2 group
// of full-resolution cells.
func (e *extractor) extractTransition(d Direction) {
	for v := 0; v < e.size; v += 2 {
		for u := 0; u < e.size; u += 2 {
			e.transitionCell(d, u, v)
		}
	}
}

// transitionCell emits the triangles of the transition cell at face-local
// (u, v) on face d.
func (e *extractor) transitionCell(d Direction, u, v int) {
	var samples [13]sample
	var caseCode uint16
	for i := range 9 {
		off := transitionSamples[i]
		p := facePoint(d, u+off[0], v+off[1], e.size)
		samples[i] = sample{pos: p, density: e.density(p)}
		if samples[i].density < 0 {
			caseCode |= transitionCaseBits[i]
		}
	}
	if caseCode == 0 || caseCode == 511 {
		return
	}

	for i := range 9 {
		samples[i].normal = e.gradient(samples[i].pos)
	}
	for i := 9; i < 13; i++ {
		samples[i] = samples[transitionAlias[i]]
	}

	class := transitionCellClass[caseCode]
	cell := transitionCellData[class&0x7F]
	edges := transitionVertexData[caseCode]
	reverse := (class&0x80 != 0) != transitionFlip[d]

	var indices [12]int
	for i, code := range edges {
		ia, ib := int(code>>4)&0x0F, int(code)&0x0F
		a, b := samples[ia], samples[ib]

		pos, normal, t := interpolate(a, b)
		if fullResolution(ia, ib, t) && e.pushed(a.pos, b.pos) {
			pos = pushBack(pos, normal, e.size)
		}
		indices[i] = e.cache.Add(pos, normal)
	}

	for t := range cell.triangleCount() {
		tri := cell.vertexIndex[t*3:]
		i0, i1, i2 := indices[tri[0]], indices[tri[1]], indices[tri[2]]
		if reverse {
			i0, i2 = i2, i0
		}
		e.mesh.AddFace(i0, i1, i2)
	}
}

// fullResolution reports whether a transition vertex belongs to the
// full-resolution side of the cell. A vertex inside an edge belongs to the
// side of the edge; a vertex on a sample point belongs to that sample.
func fullResolution(a, b int, t float64) bool {
	if t > 0 && t < 1 {
		return a < 9 && b < 9
	}
	if t == 0 {
		return b < 9
	}
	return a < 9
}
