package wavefront

import "fmt"

// Directive keywords.
const (
	dirPosition = "v"
	dirTexCoord = "vt"
	dirNormal   = "vn"
	dirFace     = "f"
	dirMtlLib   = "mtllib"
	dirUseMtl   = "usemtl"
	dirNewMtl   = "newmtl"
	dirMapKd    = "map_Kd"
)

// Counts holds the number of records of each sizing-relevant directive.
type Counts struct {
	Positions int // v
	TexCoords int // vt
	Normals   int // vn
	Faces     int // f
	UseMtl    int // usemtl

	// GroupFaces[i] is the number of faces following the i-th usemtl and
	// preceding the next one (or EOF). Faces before the first usemtl are not
	// part of any group.
	GroupFaces []int
}

// String returns a compact summary.
func (c Counts) String() string {
	return fmt.Sprintf("v=%d vt=%d vn=%d f=%d usemtl=%d",
		c.Positions, c.TexCoords, c.Normals, c.Faces, c.UseMtl)
}

// Count tallies directives by the first field of each line. Comment and blank
// lines are skipped, so tokens that appear mid-line or after '#' never count.
func Count(text []byte) Counts {
	var c Counts
	for _, line := range Lines(text) {
		f := fields(line)
		if f == nil {
			continue
		}
		switch string(f[0]) {
		case dirPosition:
			c.Positions++
		case dirTexCoord:
			c.TexCoords++
		case dirNormal:
			c.Normals++
		case dirFace:
			c.Faces++
			if n := len(c.GroupFaces); n > 0 {
				c.GroupFaces[n-1]++
			}
		case dirUseMtl:
			c.UseMtl++
			c.GroupFaces = append(c.GroupFaces, 0)
		}
	}
	return c
}
