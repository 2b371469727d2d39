package msquares

import (
	"math"
	"testing"
)

func TestMergeConcat(t *testing.T) {
	a := &MeshList{meshes: []*Mesh{{Dim: 2}, {Dim: 2}}}
	b := &MeshList{meshes: []*Mesh{{Dim: 2}}}
	m := merge([]*MeshList{a, b}, 0)
	if m.Len() != 3 {
		t.Fatalf("got %d meshes, want 3", m.Len())
	}
	if m.At(0) != a.meshes[0] || m.At(1) != a.meshes[1] || m.At(2) != b.meshes[0] {
		t.Error("mesh order not preserved")
	}
}

func TestMergeSnapLevels(t *testing.T) {
	m0 := &Mesh{Dim: 3, Points: []float32{0, 0, 0.2, 1, 0, 0.4}}
	m1 := &Mesh{Dim: 3, Points: []float32{0, 0, 0.9, 1, 0, 0.7}}
	m2 := &Mesh{Dim: 3, Points: []float32{0, 1, 0.5}}
	merge([]*MeshList{
		{meshes: []*Mesh{m0, m1}},
		{meshes: []*Mesh{m2}},
	}, Snap)

	// zmin = 0.2, zmax = 0.9; three meshes get evenly spaced levels.
	want := [][]float32{
		{0.2, 0.2},
		{0.55, 0.55},
		{0.9},
	}
	for i, mesh := range []*Mesh{m0, m1, m2} {
		for j := range want[i] {
			got := mesh.Points[j*3+2]
			if math.Abs(float64(got-want[i][j])) > 1e-6 {
				t.Errorf("mesh %d point %d: z = %g, want %g", i, j, got, want[i][j])
			}
		}
	}
}

func TestMergeSnapSingleMesh(t *testing.T) {
	m := &Mesh{Dim: 3, Points: []float32{0, 0, 0.3, 1, 0, 0.8}}
	merge([]*MeshList{{meshes: []*Mesh{m}}}, Snap)

	// With only one mesh there are no levels to interpolate between, so
	// the heights stay as they are.
	want := []float32{0.3, 0.8}
	for j, z := range want {
		if got := m.Points[j*3+2]; got != z {
			t.Errorf("point %d: z = %g, want %g", j, got, z)
		}
	}
}

func TestMergeConnectDisplace(t *testing.T) {
	m0 := &Mesh{Dim: 3, Points: []float32{0, 0, 0}}

	// Four vertices and one extruded wall: the first two vertices of
	// the second connector triangle are the wall base.
	m1 := &Mesh{
		Dim: 3,
		Points: []float32{
			0, 0, 1,
			1, 0, 1,
			0, 1, 1,
			1, 1, 1,
		},
		Triangles: []uint16{0, 1, 2, 2, 3, 0},
		nconn:     2,
	}
	merge([]*MeshList{
		{meshes: []*Mesh{m0}},
		{meshes: []*Mesh{m1}},
	}, Connect)

	want := []float32{1, 1, 0, 0}
	for j, z := range want {
		if got := m1.Points[j*3+2]; got != z {
			t.Errorf("point %d: z = %g, want %g", j, got, z)
		}
	}
	if got := m0.Points[2]; got != 0 {
		t.Errorf("lowest mesh: z = %g, want 0", got)
	}
}

func TestMeshAccessors(t *testing.T) {
	m := &Mesh{
		Dim:       3,
		Points:    make([]float32, 12),
		Triangles: make([]uint16, 18),
		nconn:     2,
	}
	if m.NumPoints() != 4 {
		t.Errorf("NumPoints = %d", m.NumPoints())
	}
	if m.NumTriangles() != 6 {
		t.Errorf("NumTriangles = %d", m.NumTriangles())
	}
	if m.NumConnTriangles() != 2 {
		t.Errorf("NumConnTriangles = %d", m.NumConnTriangles())
	}
}
