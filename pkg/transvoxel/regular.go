package transvoxel

import (
	"github.com/taigrr/terrace/pkg/math3d"
)

// extractRegular emits the triangles of every cell in [0, size) per axis.
func (e *extractor) extractRegular() {
	for z := range e.size {
		for y := range e.size {
			for x := range e.size {
				e.regularCell(math3d.I3(x, y, z))
			}
		}
	}
}

// regularCell emits the triangles of the cell whose minimum corner is base.
func (e *extractor) regularCell(base math3d.Int3) {
	var corners [8]sample
	var caseCode uint8
	for i, off := range cornerOffsets {
		p := base.Add(math3d.I3(off[0], off[1], off[2]))
		corners[i] = sample{pos: p, density: e.density(p)}
		if corners[i].density < 0 {
			caseCode |= 1 << uint(i)
		}
	}
	if caseCode == 0 || caseCode == 255 {
		return
	}

	for i := range corners {
		corners[i].normal = e.gradient(corners[i].pos)
	}

	cell := regularCellData[regularCellClass[caseCode]]
	edges := regularVertexData[caseCode]

	var indices [12]int
	for i, code := range edges {
		a := corners[(code>>4)&0x0F]
		b := corners[code&0x0F]

		pos, normal, _ := interpolate(a, b)
		if e.pushed(a.pos, b.pos) {
			pos = pushBack(pos, normal, e.size)
		}
		indices[i] = e.cache.Add(pos, normal)
	}

	for t := range cell.triangleCount() {
		v := cell.vertexIndex[t*3:]
		e.mesh.AddFace(indices[v[0]], indices[v[1]], indices[v[2]])
	}
}
