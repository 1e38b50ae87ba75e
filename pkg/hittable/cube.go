package hittable

import "github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"

// Cube is a rectangular box built from 12 triangles (two per face). Its
// orientation is derived from a look-at direction (center -> to) and the
// world-up vector, matching the camera's own basis construction.
type Cube struct {
	Triangles [12]Triangle
	bbox      AABB
}

// cubeFace names a face in the order the vertex/triangle tables below use.
type cubeFace int

const (
	faceFront cubeFace = iota // +forward
	faceBack                  // -forward
	faceBottom                // -up
	faceTop                   // +up
	faceRight                 // +right
	faceLeft                  // -right
)

// cubeBasis returns the (forward, right, up) orthonormal basis used to
// orient a cube from its center toward the look-at point to, the same
// construction the camera uses for its own basis.
func cubeBasis(center, to vec3.Vec3) (forward, right, up vec3.Vec3) {
	forward = center.Sub(to).Normalize()
	right = vec3.Up().Cross(forward).Normalize()
	up = forward.Cross(right)
	return forward, right, up
}

// cubeVertices returns the 8 corners of a box of the given (width, height,
// depth) centered at center and oriented by (forward, right, up).
func cubeVertices(center, forward, right, up vec3.Vec3, width, height, depth float64) [8]vec3.Vec3 {
	pt := func(df, rf, uf float64) vec3.Vec3 {
		return center.
			Add(forward.Scale(df * depth / 2)).
			Add(right.Scale(rf * width / 2)).
			Add(up.Scale(uf * height / 2))
	}
	return [8]vec3.Vec3{
		pt(1, 1, 1),
		pt(1, 1, -1),
		pt(1, -1, 1),
		pt(1, -1, -1),
		pt(-1, 1, 1),
		pt(-1, 1, -1),
		pt(-1, -1, 1),
		pt(-1, -1, -1),
	}
}

// cubeFaceTriangleIndices gives the two-triangle vertex index pairs for
// each face, 0-based into the cubeVertices array. The two triangles of a
// face share their second and third vertices, which form the face diagonal.
var cubeFaceTriangleIndices = [6][2][3]int{
	faceFront:  {{0, 1, 2}, {3, 1, 2}},
	faceBack:   {{4, 5, 6}, {7, 5, 6}},
	faceBottom: {{5, 1, 7}, {3, 1, 7}},
	faceTop:    {{0, 4, 2}, {6, 4, 2}},
	faceRight:  {{0, 4, 1}, {5, 4, 1}},
	faceLeft:   {{2, 6, 3}, {7, 6, 3}},
}

// NewCube builds a box with a single material on all faces.
func NewCube(center, to vec3.Vec3, width, height, depth float64, material Material) Cube {
	return newCubeFaces(center, to, width, height, depth, func(cubeFace) Material { return material }, nil)
}

// NewDieCube builds a box whose six faces sample six distinct subrectangles
// of a single shared image texture, arranged in a 4x3 cross layout (the
// conventional unfolded-die net): column,row cells (1,0)=top, (1,2)=bottom,
// (0,1)=left, (1,1)=front, (2,1)=right, (3,1)=back.
func NewDieCube(center, to vec3.Vec3, size float64, dieMaterial Material) Cube {
	return newCubeFaces(center, to, size, size, size, func(cubeFace) Material { return dieMaterial }, dieFaceUV)
}

func dieFaceUV(face cubeFace) (UV, UV, UV, UV) {
	cell := map[cubeFace][2]int{
		faceTop:    {1, 0},
		faceLeft:   {0, 1},
		faceFront:  {1, 1},
		faceRight:  {2, 1},
		faceBack:   {3, 1},
		faceBottom: {1, 2},
	}[face]
	const cols, rows = 4.0, 3.0
	u0, v0 := float64(cell[0])/cols, float64(cell[1])/rows
	u1, v1 := u0+1/cols, v0+1/rows
	// The four corners go around the cell in order; newCubeFaces assigns
	// them to the face's corners in the same cyclic order, so the shared
	// diagonal carries the same UVs in both triangles.
	return UV{u0, v1}, UV{u0, v0}, UV{u1, v0}, UV{u1, v1}
}

func newCubeFaces(center, to vec3.Vec3, width, height, depth float64, materialForFace func(cubeFace) Material, uvForFace func(cubeFace) (UV, UV, UV, UV)) Cube {
	forward, right, up := cubeBasis(center, to)
	verts := cubeVertices(center, forward, right, up, width, height, depth)

	var triangles [12]Triangle
	for f := cubeFace(0); f < 6; f++ {
		idx := cubeFaceTriangleIndices[f]
		material := materialForFace(f)
		t1 := NewTriangle(verts[idx[0][0]], verts[idx[0][1]], verts[idx[0][2]], material)
		t2 := NewTriangle(verts[idx[1][0]], verts[idx[1][1]], verts[idx[1][2]], material)
		if uvForFace != nil {
			uvA, uvB, uvC, uvD := uvForFace(f)
			t1 = t1.WithUV(uvA, uvB, uvD)
			t2 = t2.WithUV(uvC, uvB, uvD)
		}
		triangles[2*f] = t1
		triangles[2*f+1] = t2
	}

	bbox := AABB{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		bbox.Min = bbox.Min.Min(v)
		bbox.Max = bbox.Max.Max(v)
	}

	return Cube{Triangles: triangles, bbox: bbox}
}

// Hit returns the nearest of the cube's 12 triangle hits, if any.
func (c Cube) Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	var best HitRecord
	found := false
	for _, tri := range c.Triangles {
		if rec, ok := tri.Hit(r, tMin, tMax); ok {
			if !found || rec.T < best.T {
				best = rec
				found = true
			}
		}
	}
	return best, found
}

// BoundingBox returns the tight box over the cube's 8 vertices.
func (c Cube) BoundingBox() (AABB, bool) {
	return c.bbox, true
}
