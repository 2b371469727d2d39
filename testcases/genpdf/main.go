// seehuhn.de/go/msquares - convert 2D fields into triangle meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf draws the 2D triangulations of the test fields into
// PDF files, one file per test case.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/msquares"
	"seehuhn.de/go/msquares/testcases"
)

const pdfDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		panic(err)
	}

	for _, tc := range testcases.Gray {
		ml := msquares.Grayscale(tc.Data, tc.Width, tc.Height, tc.CellSize,
			tc.Threshold, msquares.Simplify)
		fname := filepath.Join(pdfDir, "gray_"+tc.Name+".pdf")
		if err := writePDF(fname, ml, tc.Width, tc.Height, true); err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
	}

	for _, tc := range testcases.Color {
		ml := msquares.ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize,
			tc.Bpp, 0)
		fname := filepath.Join(pdfDir, "color_"+tc.Name+".pdf")
		if err := writePDF(fname, ml, tc.Width, tc.Height, false); err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
	}
}

// writePDF draws all meshes of a list onto a single page, filled with
// gray shades by list position and with stroked triangle edges.  flipY
// selects raster-order Y coordinates (the binary marcher); the color
// marcher already emits Y growing upwards.
func writePDF(fname string, ml *msquares.MeshList, width, height int, flipY bool) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Mesh coordinates are normalized to the unit square on the longer
	// axis; scale back to pixel units.
	scale := float64(max(width, height))
	if flipY {
		page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	}
	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, 0})

	page.SetLineWidth(0.25 / scale)
	page.SetStrokeColor(color.DeviceGray(0))

	n := ml.Len()
	for i := 0; i < n; i++ {
		mesh := ml.At(i)
		shade := 0.9
		if n > 1 {
			shade = 0.25 + 0.65*float64(i)/float64(n-1)
		}
		page.SetFillColor(color.DeviceGray(shade))
		outlineTriangles(page, mesh)
		page.Fill()
		outlineTriangles(page, mesh)
		page.Stroke()
	}

	return page.Close()
}

type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func outlineTriangles(page pather, mesh *msquares.Mesh) {
	for t := 0; t < mesh.NumTriangles(); t++ {
		ax, ay := vertex(mesh, mesh.Triangles[t*3])
		bx, by := vertex(mesh, mesh.Triangles[t*3+1])
		cx, cy := vertex(mesh, mesh.Triangles[t*3+2])
		page.MoveTo(ax, ay)
		page.LineTo(bx, by)
		page.LineTo(cx, cy)
		page.ClosePath()
	}
}

func vertex(mesh *msquares.Mesh, idx uint16) (float64, float64) {
	p := mesh.Points[int(idx)*mesh.Dim:]
	return float64(p[0]), float64(p[1])
}
