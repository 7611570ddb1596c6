package wavefront

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// Strategy selects how the parser sizes its containers.
type Strategy int

const (
	// StrategyCounted runs Count first and allocates every array once at its
	// exact final size.
	StrategyCounted Strategy = iota
	// StrategyGrowable parses in a single pass with growing slices.
	StrategyGrowable
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyCounted:
		return "counted"
	case StrategyGrowable:
		return "growable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy. The empty string
// selects StrategyCounted.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "counted":
		return StrategyCounted, nil
	case "growable":
		return StrategyGrowable, nil
	default:
		return 0, fmt.Errorf("unknown parse strategy %q", name)
	}
}

// Attributes holds the flat vertex attribute arrays of an OBJ file. The N-th
// v/vt/vn record (0-based) starts at Positions[3N], TexCoords[2N], Normals[3N].
type Attributes struct {
	Positions []float32 // x, y, z
	TexCoords []float32 // u, v
	Normals   []float32 // x, y, z
}

// PositionCount returns the number of v records.
func (a *Attributes) PositionCount() int { return len(a.Positions) / 3 }

// TexCoordCount returns the number of vt records.
func (a *Attributes) TexCoordCount() int { return len(a.TexCoords) / 2 }

// NormalCount returns the number of vn records.
func (a *Attributes) NormalCount() int { return len(a.Normals) / 3 }

// FaceIndex is one face corner, 1-based as written in the file.
type FaceIndex struct {
	Position int
	TexCoord int
	Normal   int
}

// Face is a triangle.
type Face [3]FaceIndex

// Group is the run of faces following one usemtl directive.
type Group struct {
	Material string
	Line     int // line of the usemtl directive
	Faces    []Face
}

// Object is a parsed OBJ file prior to mesh assembly.
type Object struct {
	Name       string
	Attributes Attributes
	Groups     []Group
	Materials  *MaterialTable
}

// FaceCount returns the total number of faces over all groups.
func (o *Object) FaceCount() int {
	n := 0
	for i := range o.Groups {
		n += len(o.Groups[i].Faces)
	}
	return n
}

// MaterialLoader resolves a mtllib file name to a parsed material table.
type MaterialLoader func(name string) (*MaterialTable, error)

// Parser turns OBJ text into an Object.
type Parser struct {
	Strategy Strategy

	// LoadMaterials is called for every file named by a mtllib directive.
	// When nil, mtllib directives are ignored.
	LoadMaterials MaterialLoader
}

// ParseOBJ parses OBJ text with the default counted strategy and no material
// library resolution.
func ParseOBJ(data []byte, name string) (*Object, error) {
	var p Parser
	return p.Parse(RawText{Name: name, Data: data})
}

// Parse consumes text line by line. Any error aborts the parse.
func (p *Parser) Parse(text RawText) (*Object, error) {
	obj := &Object{
		Name:      text.Name,
		Materials: NewMaterialTable(),
	}

	var groupFaces []int
	if p.Strategy == StrategyCounted {
		c := Count(text.Data)
		obj.Attributes = Attributes{
			Positions: make([]float32, 0, 3*c.Positions),
			TexCoords: make([]float32, 0, 2*c.TexCoords),
			Normals:   make([]float32, 0, 3*c.Normals),
		}
		obj.Groups = make([]Group, 0, c.UseMtl)
		groupFaces = c.GroupFaces
	}

	attrs := &obj.Attributes
	for n, line := range Lines(text.Data) {
		f := fields(line)
		if f == nil {
			continue
		}

		var err error
		switch string(f[0]) {
		case dirTexCoord:
			attrs.TexCoords, err = appendFloats(attrs.TexCoords, f[1:], 2)
		case dirNormal:
			attrs.Normals, err = appendFloats(attrs.Normals, f[1:], 3)
		case dirPosition:
			attrs.Positions, err = appendFloats(attrs.Positions, f[1:], 3)
		case dirFace:
			if len(obj.Groups) == 0 {
				return nil, lineError(text.Name, n, ErrFaceBeforeMaterial, "face has no material")
			}
			var face Face
			if face, err = parseFace(f[1:]); err == nil {
				g := &obj.Groups[len(obj.Groups)-1]
				g.Faces = append(g.Faces, face)
			}
		case dirMtlLib:
			if len(f) < 2 {
				return nil, lineError(text.Name, n, ErrMalformedDirective, "mtllib without a file name")
			}
			if p.LoadMaterials == nil {
				continue
			}
			table := NewMaterialTable()
			for _, lib := range f[1:] {
				t, lerr := p.LoadMaterials(string(lib))
				if lerr != nil {
					return nil, &ParseError{File: text.Name, Line: n, Err: lerr}
				}
				table.Merge(t)
			}
			obj.Materials = table
		case dirUseMtl:
			if len(f) < 2 {
				return nil, lineError(text.Name, n, ErrMalformedDirective, "usemtl without a name")
			}
			g := Group{Material: string(f[1]), Line: n}
			if i := len(obj.Groups); i < len(groupFaces) {
				g.Faces = make([]Face, 0, groupFaces[i])
			}
			obj.Groups = append(obj.Groups, g)
		}
		if err != nil {
			return nil, &ParseError{File: text.Name, Line: n, Err: err}
		}
	}
	return obj, nil
}

// appendFloats parses the first n tokens as finite float32 values. Extra
// tokens (such as w or vertex colours) are ignored.
func appendFloats(dst []float32, tokens [][]byte, n int) ([]float32, error) {
	if len(tokens) < n {
		return dst, fmt.Errorf("%w: want %d values, got %d", ErrMalformedNumber, n, len(tokens))
	}
	for _, tok := range tokens[:n] {
		v, err := strconv.ParseFloat(string(tok), 32)
		if err != nil {
			return dst, fmt.Errorf("%w: %q", ErrMalformedNumber, tok)
		}
		f := float32(v)
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return dst, fmt.Errorf("%w: %q is not finite", ErrMalformedNumber, tok)
		}
		dst = append(dst, f)
	}
	return dst, nil
}

func parseFace(corners [][]byte) (Face, error) {
	var face Face
	if len(corners) != 3 {
		return face, fmt.Errorf("%w: %d vertices, only triangles are supported", ErrUnsupportedFaceFormat, len(corners))
	}
	for i, c := range corners {
		parts := bytes.Split(c, []byte{'/'})
		if len(parts) != 3 || len(parts[0]) == 0 || len(parts[1]) == 0 || len(parts[2]) == 0 {
			return face, fmt.Errorf("%w: corner %q needs position/uv/normal indices", ErrUnsupportedFaceFormat, c)
		}
		var idx [3]int
		for j, part := range parts {
			v, err := strconv.Atoi(string(part))
			if err != nil {
				return face, fmt.Errorf("%w: face index %q", ErrMalformedNumber, part)
			}
			idx[j] = v
		}
		face[i] = FaceIndex{Position: idx[0], TexCoord: idx[1], Normal: idx[2]}
	}
	return face, nil
}
