package models

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Part is one placed region mesh of an exported scene.
type Part struct {
	Mesh      *Mesh
	Placement Placement
}

// BuildDocument converts placed meshes into a glTF document with one node per
// part. Vertices stay region-local; the placement becomes the node transform.
// Parts without triangles are skipped.
func BuildDocument(parts []Part) *gltf.Document {
	doc := gltf.NewDocument()
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "terrain"})
		doc.Scene = gltf.Index(0)
	}
	scene := doc.Scenes[0]

	for i, p := range parts {
		if p.Mesh == nil || p.Mesh.Empty() {
			continue
		}

		positions := make([][3]float32, len(p.Mesh.Vertices))
		normals := make([][3]float32, len(p.Mesh.Vertices))
		for j, v := range p.Mesh.Vertices {
			positions[j] = toFloat32(v.Position)
			normals[j] = toFloat32(v.Normal)
		}
		indices := make([]uint32, 0, len(p.Mesh.Faces)*3)
		for _, f := range p.Mesh.Faces {
			indices = append(indices, uint32(f.V[0]), uint32(f.V[1]), uint32(f.V[2]))
		}

		name := p.Mesh.Name
		if name == "" {
			name = fmt.Sprintf("region-%d", i)
		}

		posIdx := modeler.WritePosition(doc, positions)
		normIdx := modeler.WriteNormal(doc, normals)
		idx := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idx),
				Attributes: map[string]int{
					gltf.POSITION: posIdx,
					gltf.NORMAL:   normIdx,
				},
				Mode: gltf.PrimitiveTriangles,
			}},
		})

		pos := p.Placement.Position
		s := p.Placement.Scale
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Translation: [3]float64{pos.X, pos.Y, pos.Z},
			Rotation:    [4]float64{0, 0, 0, 1},
			Scale:       [3]float64{s, s, s},
		})
		scene.Nodes = append(scene.Nodes, len(doc.Nodes)-1)
	}

	return doc
}

// Bake returns copies of parts with their placement applied to the vertices,
// for consumers that ignore node transforms. The source meshes are not
// modified.
func Bake(parts []Part) []Part {
	baked := make([]Part, len(parts))
	for i, p := range parts {
		baked[i] = Part{Placement: Placement{Scale: 1}}
		if p.Mesh == nil {
			continue
		}
		m := p.Mesh.Clone()
		m.Transform(p.Placement.Matrix())
		baked[i].Mesh = m
	}
	return baked
}

// SaveGLB writes placed meshes as a binary glTF file.
func SaveGLB(path string, parts []Part) error {
	if err := gltf.SaveBinary(BuildDocument(parts), path); err != nil {
		return errors.New("saving glb failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

// LoadGLB reads a file written by SaveGLB back into placed meshes, one per
// scene node that references a mesh.
func LoadGLB(path string) ([]Part, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.New("opening glb failed").
			WithTag("path", path).
			Wrap(err)
	}

	var parts []Part
	for _, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		m := doc.Meshes[*node.Mesh]

		mesh, err := readMesh(doc, m)
		if err != nil {
			return nil, errors.New("reading glb mesh failed").
				WithTag("path", path).
				WithTag("mesh", m.Name).
				Wrap(err)
		}

		parts = append(parts, Part{
			Mesh: mesh,
			Placement: Placement{
				Position: math3d.V3(node.Translation[0], node.Translation[1], node.Translation[2]),
				Scale:    node.Scale[0],
			},
		})
	}
	return parts, nil
}

func readMesh(doc *gltf.Document, m *gltf.Mesh) (*Mesh, error) {
	mesh := NewMesh(m.Name)

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return nil, errors.New("primitive has no positions")
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, errors.New("reading positions failed").Wrap(err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			if normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil); err != nil {
				return nil, errors.New("reading normals failed").Wrap(err)
			}
		}

		base := len(mesh.Vertices)
		for i, p := range positions {
			var n math3d.Vec3
			if i < len(normals) {
				n = fromFloat32(normals[i])
			}
			mesh.AddVertex(fromFloat32(p), n)
		}

		if prim.Indices == nil {
			return nil, errors.New("primitive is not indexed")
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.New("reading indices failed").Wrap(err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.AddFace(base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2]))
		}
	}

	mesh.CalculateBounds()
	return mesh, mesh.Validate()
}

func toFloat32(v math3d.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func fromFloat32(v [3]float32) math3d.Vec3 {
	return math3d.V3(float64(v[0]), float64(v[1]), float64(v[2]))
}
