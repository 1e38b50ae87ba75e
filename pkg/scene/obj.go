package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/material"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/models"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// defaultMeshColor is the flat grey applied to every triangle loaded from an
// OBJ file with no accompanying material description.
var defaultMeshColor = rtcolor.New(0.6, 0.6, 0.6)

// LoadOBJ reads a Wavefront OBJ subset: "v x y z" vertex lines and
// "f a b c" triangle face lines (1-based indices, the "idx/uv/normal" long
// form accepted but only the vertex index used). Every other line is
// ignored — no normals, UVs, groups, or materials are read from the file.
// The returned triangles all share a single default Lambertian material.
func LoadOBJ(path string) ([]hittable.Hittable, error) {
	mesh, err := LoadOBJMesh(path)
	if err != nil {
		return nil, err
	}
	return mesh.ToHittables(material.NewLambertian(defaultMeshColor)), nil
}

// LoadOBJMesh parses the same OBJ subset as LoadOBJ into a models.Mesh,
// giving callers access to its bounding box so the mesh can be centered and
// scaled (via Mesh.Transform) before conversion to hittables.
func LoadOBJMesh(path string) (*models.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scene: open obj %q", path)
	}
	defer f.Close()
	return parseOBJ(f)
}

func parseOBJ(r io.Reader) (*models.Mesh, error) {
	mesh := models.NewMesh("obj")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseOBJVertex(line)
			if err != nil {
				return nil, err
			}
			mesh.Vertices = append(mesh.Vertices, models.MeshVertex{Position: v})
		case strings.HasPrefix(line, "f "):
			face, err := parseOBJFace(line, len(mesh.Vertices))
			if err != nil {
				return nil, err
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scene: read obj")
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseOBJVertex(line string) (vec3.Vec3, error) {
	var x, y, z float64
	if _, err := fmt.Sscanf(line, "v %f %f %f", &x, &y, &z); err != nil {
		return vec3.Vec3{}, errors.Wrapf(err, "scene: bad vertex line %q", line)
	}
	return vec3.V3(x, y, z), nil
}

func parseOBJFace(line string, vertCount int) (models.Face, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) != 3 {
		return models.Face{}, errors.Errorf("scene: face line needs exactly 3 indices, got %d: %q", len(fields), line)
	}

	var idx [3]int
	for i, f := range fields {
		v, err := parseOBJFaceIndex(f)
		if err != nil {
			return models.Face{}, errors.Wrapf(err, "scene: bad face line %q", line)
		}
		idx[i] = v
	}

	for _, i := range idx {
		if i < 1 || i > vertCount {
			return models.Face{}, errors.Errorf("scene: face index %d out of range (%d vertices): %q", i, vertCount, line)
		}
	}

	return models.Face{V: [3]int{idx[0] - 1, idx[1] - 1, idx[2] - 1}, Material: -1}, nil
}

// parseOBJFaceIndex accepts the bare "v" form and the "v/t", "v/t/n", and
// "v//n" long forms, returning only the vertex index.
func parseOBJFaceIndex(field string) (int, error) {
	vStr := field
	if slash := strings.IndexByte(field, '/'); slash != -1 {
		vStr = field[:slash]
	}
	return strconv.Atoi(vStr)
}
