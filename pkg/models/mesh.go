// Package models loads triangle meshes (OBJ, glTF/GLB) and converts them
// into path-tracer primitives.
package models

import (
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/material"
	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Mesh represents a 3D mesh with vertices, faces, and the materials its
// faces reference.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin vec3.Vec3
	BoundsMax vec3.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position vec3.Vec3
	Normal   vec3.Vec3
	UV       UV
}

// UV is a 2D texture coordinate.
type UV struct {
	X, Y float64
}

// Face represents a triangle face with vertex indices and the index of the
// material it uses (-1 meaning "no material assigned").
type Face struct {
	V        [3]int
	Material int
}

// Material is a glTF-style PBR metallic-roughness material description.
// Only BaseColor is used when building path-tracer primitives (see
// ToHittables); Metallic/Roughness/HasTexture are retained for fidelity with
// the source format but don't yet drive a Metal/textured Lambertian choice.
type Material struct {
	Name       string
	BaseColor  [4]float64
	Metallic   float64
	Roughness  float64
	HasTexture bool
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]MeshVertex, 0),
		Faces:     make([]Face, 0),
		BoundsMin: vec3.Zero3(),
		BoundsMax: vec3.Zero3(),
	}
}

// MaterialCount returns the number of materials defined on the mesh.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// GetFaceMaterial returns the material index used by face i, or -1 if it
// uses none.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns the material at index i, or nil if i is out of range
// (including the "no material" sentinel -1).
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() vec3.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() vec3.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateNormals computes face normals and assigns them to vertices. This
// is a simple flat-shading approach; for smooth shading, use
// CalculateSmoothNormals.
func (m *Mesh) CalculateNormals() {
	for i := range m.Faces {
		f := &m.Faces[i]
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2).Normalize()

		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// CalculateSmoothNormals computes averaged normals for smooth shading.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = vec3.Zero3()
	}

	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2)

		m.Vertices[f.V[0]].Normal = m.Vertices[f.V[0]].Normal.Add(normal)
		m.Vertices[f.V[1]].Normal = m.Vertices[f.V[1]].Normal.Add(normal)
		m.Vertices[f.V[2]].Normal = m.Vertices[f.V[2]].Normal.Add(normal)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a 4x4 transform to every vertex position and, via the
// rotation/scale part, every normal, then recomputes the bounding box. Used
// by scene constructors to center and scale a loaded mesh into a fixed
// camera frame.
func (m *Mesh) Transform(mat vec3.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
		m.Vertices[i].Normal = mat.MulVec3Dir(m.Vertices[i].Normal).Normalize()
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetVertex returns the position, normal, and UV for vertex i.
func (m *Mesh) GetVertex(i int) (pos, normal vec3.Vec3, uv UV) {
	v := m.Vertices[i]
	return v.Position, v.Normal, v.UV
}

// GetFace returns the vertex indices for face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max vec3.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// ToHittables converts every face into a hittable.Triangle, using the
// per-vertex UV and the face's material (mapped to a Lambertian of its
// BaseColor) when one is assigned, falling back to defaultMaterial
// otherwise.
func (m *Mesh) ToHittables(defaultMaterial hittable.Material) []hittable.Hittable {
	out := make([]hittable.Hittable, 0, len(m.Faces))
	for i, f := range m.Faces {
		mat := defaultMaterial
		if gm := m.GetMaterial(m.GetFaceMaterial(i)); gm != nil {
			mat = material.NewLambertian(rtcolor.New(gm.BaseColor[0], gm.BaseColor[1], gm.BaseColor[2]))
		}

		a, b, c := m.Vertices[f.V[0]], m.Vertices[f.V[1]], m.Vertices[f.V[2]]
		tri := hittable.NewTriangle(a.Position, b.Position, c.Position, mat).
			WithUV(hittable.UV{U: a.UV.X, V: a.UV.Y}, hittable.UV{U: b.UV.X, V: b.UV.Y}, hittable.UV{U: c.UV.X, V: c.UV.Y})
		out = append(out, tri)
	}
	return out
}
