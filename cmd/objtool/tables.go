package main

import (
	"bytes"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olekukonko/tablewriter"

	"github.com/Faultbox/objmesh/internal/assets"
	"github.com/Faultbox/objmesh/pkg/wavefront"
)

// meshTable renders one row per mesh of a model.
func meshTable(model *assets.Model) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Material", "Texture", "Vertices", "Floats", "Bounds min", "Bounds max"})
	for i, mesh := range model.Meshes {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			mesh.Material,
			orDash(mesh.Texture),
			fmt.Sprintf("%d", mesh.VertexCount),
			fmt.Sprintf("%d", len(mesh.Vertices)),
			fmtVec(mesh.Bounds.Min),
			fmtVec(mesh.Bounds.Max),
		})
	}
	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", model.VertexCount()), "", "", ""})
	table.Render()
	return buf.String()
}

// countTable renders directive counts followed by per-group face counts.
func countTable(c wavefront.Counts) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Directive", "Count"})
	table.Append([]string{"v", fmt.Sprintf("%d", c.Positions)})
	table.Append([]string{"vt", fmt.Sprintf("%d", c.TexCoords)})
	table.Append([]string{"vn", fmt.Sprintf("%d", c.Normals)})
	table.Append([]string{"f", fmt.Sprintf("%d", c.Faces)})
	table.Append([]string{"usemtl", fmt.Sprintf("%d", c.UseMtl)})
	for i, n := range c.GroupFaces {
		table.Append([]string{fmt.Sprintf("group %d faces", i), fmt.Sprintf("%d", n)})
	}
	table.Render()
	return buf.String()
}

// materialTable renders the materials of an MTL file in file order.
func materialTable(t *wavefront.MaterialTable) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Material", "map_Kd"})
	for _, m := range t.Materials {
		table.Append([]string{m.Name, orDash(m.Texture)})
	}
	table.Render()
	return buf.String()
}

func fmtVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", v.X(), v.Y(), v.Z())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
