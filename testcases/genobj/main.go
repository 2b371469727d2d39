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

// Command genobj triangulates the test fields and writes the results as
// Wavefront OBJ files, for inspection in external mesh viewers.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/msquares"
	"seehuhn.de/go/msquares/testcases"
)

const objDir = "testdata/obj"

func main() {
	if err := os.MkdirAll(objDir, 0755); err != nil {
		panic(err)
	}

	for _, tc := range testcases.Gray {
		flags := msquares.Heights | msquares.Dual | msquares.Snap | msquares.Connect
		ml := msquares.Grayscale(tc.Data, tc.Width, tc.Height, tc.CellSize,
			tc.Threshold, flags)
		fname := filepath.Join(objDir, "gray_"+tc.Name+".obj")
		if err := writeOBJ(fname, ml); err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
	}

	for _, tc := range testcases.Color {
		var flags msquares.Flag
		if tc.Bpp == 4 {
			flags = msquares.Heights | msquares.Connect
		}
		ml := msquares.ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize,
			tc.Bpp, flags)
		fname := filepath.Join(objDir, "color_"+tc.Name+".obj")
		if err := writeOBJ(fname, ml); err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
	}
}

// writeOBJ writes all meshes of a list into a single OBJ file, one
// object per mesh.  OBJ vertex indices are 1-based and global across
// objects.
func writeOBJ(fname string, ml *msquares.MeshList) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	base := 1
	for i := 0; i < ml.Len(); i++ {
		mesh := ml.At(i)
		fmt.Fprintf(w, "o mesh%d\n", i)
		for j := 0; j < mesh.NumPoints(); j++ {
			p := mesh.Points[j*mesh.Dim:]
			var z float32
			if mesh.Dim == 3 {
				z = p[2]
			}
			fmt.Fprintf(w, "v %g %g %g\n", p[0], p[1], z)
		}
		for t := 0; t < mesh.NumTriangles(); t++ {
			fmt.Fprintf(w, "f %d %d %d\n",
				int(mesh.Triangles[t*3])+base,
				int(mesh.Triangles[t*3+1])+base,
				int(mesh.Triangles[t*3+2])+base)
		}
		base += mesh.NumPoints()
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
