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

package msquares

import "math"

// Mesh is a single indexed triangle mesh.
type Mesh struct {
	// Points holds Dim floats per vertex.  X and Y are normalized to
	// [0, 1] on the longer field axis.
	Points []float32

	// Dim is 2, or 3 when the mesh was built with the Heights flag.
	Dim int

	// Triangles holds three vertex indices per triangle.  Connector
	// triangles, if any, form a contiguous suffix.
	Triangles []uint16

	// Color is the packed ARGB value of the region this mesh covers.
	// Only set by ColorMulti.
	Color uint32

	nconn int
}

// NumPoints returns the number of vertices in the mesh.
func (m *Mesh) NumPoints() int {
	return len(m.Points) / m.Dim
}

// NumTriangles returns the number of triangles in the mesh, including
// connector triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// NumConnTriangles returns the number of connector (extrusion wall)
// triangles at the end of the triangle list.
func (m *Mesh) NumConnTriangles() int {
	return m.nconn
}

// MeshList is an ordered collection of meshes produced by a march.
type MeshList struct {
	meshes []*Mesh
}

// Len returns the number of meshes in the list.
func (l *MeshList) Len() int {
	return len(l.meshes)
}

// At returns the i-th mesh.
func (l *MeshList) At(i int) *Mesh {
	return l.meshes[i]
}

// merge concatenates the given lists into one.  If level has Snap or
// Connect set, the Z coordinates of each mesh are flattened to evenly
// spaced levels within the original Z range, lowest mesh first; with
// Connect, the base vertices of each mesh's extrusion walls are then
// displaced down to the previous mesh's level.  A single mesh is left
// at its original heights.  All input meshes must have Dim == 3 when
// leveling is requested.
func merge(lists []*MeshList, level Flag) *MeshList {
	merged := &MeshList{}
	for _, l := range lists {
		merged.meshes = append(merged.meshes, l.meshes...)
	}
	if level == 0 {
		return merged
	}

	zmin := float32(math.MaxFloat32)
	zmax := -zmin
	for _, m := range merged.meshes {
		for j := 2; j < len(m.Points); j += 3 {
			zmin = min(zmin, m.Points[j])
			zmax = max(zmax, m.Points[j])
		}
	}
	zextent := zmax - zmin
	n := len(merged.meshes)
	if n > 1 {
		for i, m := range merged.meshes {
			z := zmin + zextent*float32(i)/float32(n-1)
			for j := 2; j < len(m.Points); j += 3 {
				m.Points[j] = z
			}
		}
	}
	if level&Connect == 0 {
		return merged
	}

	for i := 1; i < n; i++ {
		m := merged.meshes[i]

		// Each extruded edge contributes two connector triangles; the
		// first two vertices of the second triangle are the wall base.
		markers := make([]bool, m.NumPoints())
		for tri := m.NumTriangles() - m.nconn; tri < m.NumTriangles(); tri += 2 {
			markers[m.Triangles[tri*3+3]] = true
			markers[m.Triangles[tri*3+4]] = true
		}

		z := zmin + zextent*float32(i-1)/float32(n-1)
		for j, marked := range markers {
			if marked {
				m.Points[j*3+2] = z
			}
		}
	}
	return merged
}
