package wavefront

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per output vertex:
// px, py, pz, u, v, nx, ny, nz.
const VertexStride = 8

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// Mesh is the render-ready geometry of one material group. Vertices holds
// VertexCount records of VertexStride floats with no index sharing.
type Mesh struct {
	Material    string
	Texture     string // texture root + map_Kd name, empty when the material has none
	Vertices    []float32
	VertexCount int
	Bounds      Bounds // zero for a mesh without vertices
}

// TexturePath joins a texture name onto root by plain concatenation.
// An empty name stays empty.
func TexturePath(root, name string) string {
	if name == "" {
		return ""
	}
	return root + name
}

// Assemble expands every group into a Mesh, in group order. Each face
// contributes three unshared vertices. All face indices are bounds-checked
// against attrs.
func Assemble(attrs *Attributes, groups []Group, materials *MaterialTable, texturesRoot string) ([]Mesh, error) {
	meshes := make([]Mesh, 0, len(groups))
	for gi := range groups {
		g := &groups[gi]
		mat, ok := materials.Lookup(g.Material)
		if !ok {
			return nil, fmt.Errorf("%w: %q (usemtl at line %d)", ErrMaterialNotFound, g.Material, g.Line)
		}

		mesh := Mesh{
			Material:    g.Material,
			Texture:     TexturePath(texturesRoot, mat.Texture),
			VertexCount: 3 * len(g.Faces),
		}
		mesh.Vertices = make([]float32, 0, mesh.VertexCount*VertexStride)

		for fi, face := range g.Faces {
			for corner, idx := range face {
				pos, err := lookup(attrs.Positions, idx.Position, 3)
				if err != nil {
					return nil, faceError(g, fi, corner, "position", err)
				}
				uv, err := lookup(attrs.TexCoords, idx.TexCoord, 2)
				if err != nil {
					return nil, faceError(g, fi, corner, "uv", err)
				}
				nrm, err := lookup(attrs.Normals, idx.Normal, 3)
				if err != nil {
					return nil, faceError(g, fi, corner, "normal", err)
				}

				p := mgl32.Vec3{pos[0], pos[1], pos[2]}
				if len(mesh.Vertices) == 0 {
					mesh.Bounds = Bounds{Min: p, Max: p}
				} else {
					mesh.Bounds.extend(p)
				}

				mesh.Vertices = append(mesh.Vertices, pos...)
				mesh.Vertices = append(mesh.Vertices, uv...)
				mesh.Vertices = append(mesh.Vertices, nrm...)
			}
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// lookup returns the width-float record addressed by the 1-based index.
func lookup(data []float32, index, width int) ([]float32, error) {
	count := len(data) / width
	if index < 1 || index > count {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, index, count)
	}
	start := (index - 1) * width
	return data[start : start+width], nil
}

func faceError(g *Group, face, corner int, attr string, err error) error {
	return fmt.Errorf("material %q face %d corner %d %s: %w", g.Material, face+1, corner+1, attr, err)
}
