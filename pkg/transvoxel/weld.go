package transvoxel

import (
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
)

// VertexCache deduplicates vertices by exact position while one mesh is
// built. The first normal recorded for a position wins.
type VertexCache struct {
	mesh    *models.Mesh
	indices map[math3d.Vec3]int
}

// NewVertexCache creates a cache that appends new vertices to mesh.
func NewVertexCache(mesh *models.Mesh) *VertexCache {
	return &VertexCache{
		mesh:    mesh,
		indices: make(map[math3d.Vec3]int),
	}
}

// Add returns the index of the vertex at pos, appending it when the position
// has not been seen yet.
func (c *VertexCache) Add(pos, normal math3d.Vec3) int {
	if i, ok := c.indices[pos]; ok {
		return i
	}
	i := c.mesh.AddVertex(pos, normal)
	c.indices[pos] = i
	return i
}

// Len returns the number of distinct positions seen.
func (c *VertexCache) Len() int {
	return len(c.indices)
}
