package msquares

import (
	"math"
	"testing"

	"seehuhn.de/go/msquares/testcases"
)

func colorCase(t testing.TB, name string) testcases.ColorCase {
	t.Helper()
	for _, tc := range testcases.Color {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("unknown test case %q", name)
	return testcases.ColorCase{}
}

func TestColorMultiBicolor(t *testing.T) {
	tc := colorCase(t, "bicolor")
	ml := ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, 0)
	if ml.Len() != 2 {
		t.Fatalf("got %d meshes, want 2", ml.Len())
	}
	if ml.At(0).Color >= ml.At(1).Color {
		t.Errorf("colors not ascending: %08x, %08x", ml.At(0).Color, ml.At(1).Color)
	}

	// The two regions partition the unit square, split at the pixel
	// transition x = 6/16.
	want := []float64{6.0 / 16, 10.0 / 16}
	for i := 0; i < 2; i++ {
		if got := meshArea(ml.At(i)); math.Abs(got-want[i]) > 1e-3 {
			t.Errorf("mesh %d has area %g, want %g", i, got, want[i])
		}
	}

	// Both meshes trace the same dividing line.
	for i := 0; i < 2; i++ {
		mesh := ml.At(i)
		onSplit := 0
		for j := 0; j < mesh.NumPoints(); j++ {
			if mesh.Points[j*mesh.Dim] == 0.375 {
				onSplit++
			}
		}
		if onSplit < 2 {
			t.Errorf("mesh %d has %d vertices on the dividing line", i, onSplit)
		}
	}
}

func TestColorMultiQuadrants(t *testing.T) {
	tc := colorCase(t, "quadrants")
	ml := ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, 0)
	if ml.Len() != 4 {
		t.Fatalf("got %d meshes, want 4", ml.Len())
	}

	var total float64
	var prev uint32
	for i := 0; i < ml.Len(); i++ {
		mesh := ml.At(i)
		if i > 0 && mesh.Color <= prev {
			t.Errorf("mesh %d: color %08x not ascending", i, mesh.Color)
		}
		prev = mesh.Color
		if mesh.Dim != 2 {
			t.Errorf("mesh %d: dim %d", i, mesh.Dim)
		}
		for _, idx := range mesh.Triangles {
			if int(idx) >= mesh.NumPoints() {
				t.Fatalf("mesh %d: index %d out of range", i, idx)
			}
		}
		total += meshArea(mesh)
	}
	if math.Abs(total-1) > 1e-3 {
		t.Errorf("got total area %g, want 1", total)
	}
}

func TestColorMultiStripes(t *testing.T) {
	tc := colorCase(t, "stripes")
	ml := ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, 0)
	if ml.Len() != 3 {
		t.Fatalf("got %d meshes, want 3", ml.Len())
	}
	// Meshes are ordered by packed color value, so blue (the right
	// stripe) comes first.
	want := []float64{14.0 / 48, 16.0 / 48, 18.0 / 48}
	var total float64
	for i := 0; i < ml.Len(); i++ {
		got := meshArea(ml.At(i))
		if math.Abs(got-want[i]) > 1e-3 {
			t.Errorf("stripe %d has area %g, want %g", i, got, want[i])
		}
		total += got
	}
	if math.Abs(total-1) > 1e-3 {
		t.Errorf("got total area %g, want 1", total)
	}
}

func TestColorMultiConnect(t *testing.T) {
	tc := colorCase(t, "quadrants")
	ml := ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp,
		Heights|Connect)
	if ml.Len() != 4 {
		t.Fatalf("got %d meshes, want 4", ml.Len())
	}

	// The lowest palette entry never receives walls; all others border
	// another quadrant and must have them.
	if got := ml.At(0).NumConnTriangles(); got != 0 {
		t.Errorf("mesh 0 has %d connector triangles", got)
	}
	for i := 1; i < ml.Len(); i++ {
		mesh := ml.At(i)
		if mesh.NumConnTriangles() == 0 {
			t.Errorf("mesh %d has no connector triangles", i)
			continue
		}
		for _, idx := range mesh.Triangles {
			if int(idx) >= mesh.NumPoints() {
				t.Fatalf("mesh %d: index %d out of range", i, idx)
			}
		}

		// Plateau vertices sit at the region's alpha height; wall
		// vertices sit at the minimum alpha of preceding regions.
		plateau := float32(mesh.Color>>24) / 255
		zs := zValues(mesh)
		if !zs[plateau] {
			t.Errorf("mesh %d: no vertex at plateau height %g", i, plateau)
		}
		for z := range zs {
			if z > plateau {
				t.Errorf("mesh %d: vertex above plateau: %g > %g", i, z, plateau)
			}
		}
	}
}

func TestColorMultiSimplify(t *testing.T) {
	// A uniform image: 4x4 cells collapse into two 2-triangle strips.
	const w, h = 32, 32
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		data[i*4], data[i*4+1], data[i*4+2], data[i*4+3] = 0x80, 0x80, 0x80, 0xff
	}
	ml := ColorMulti(data, w, h, 8, 4, Simplify)
	if ml.Len() != 1 {
		t.Fatalf("got %d meshes, want 1", ml.Len())
	}
	mesh := ml.At(0)
	if got := mesh.NumTriangles(); got != 4 {
		t.Errorf("got %d triangles, want 4", got)
	}
	if got := meshArea(mesh); math.Abs(got-1) > 1e-6 {
		t.Errorf("got area %g, want 1", got)
	}
}

func TestColorExact(t *testing.T) {
	tc := colorCase(t, "bicolor")

	// The packed ARGB value of the right half.
	const right = 0xfff0f0f0
	ml := Color(tc.Data, tc.Width, tc.Height, tc.CellSize, right, tc.Bpp, 0)
	if ml.Len() != 1 {
		t.Fatalf("got %d meshes", ml.Len())
	}

	// The zigzag search puts the crossing on the last outside pixel, at
	// x = 5/16.
	if got := meshArea(ml.At(0)); math.Abs(got-11.0/16) > 1e-3 {
		t.Errorf("got area %g, want 11/16", got)
	}
}

func TestColorMultiPanics(t *testing.T) {
	tc := colorCase(t, "bicolor")
	mustPanic(t, "bad bpp", func() {
		ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, 5, 0)
	})
	mustPanic(t, "heights without alpha", func() {
		ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, 2, Heights)
	})
	mustPanic(t, "invert", func() {
		ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, Invert)
	})
	mustPanic(t, "dual", func() {
		ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, Dual)
	})
	mustPanic(t, "snap", func() {
		ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, Snap)
	})
	mustPanic(t, "too many colors", func() {
		const w, h = 32, 32
		data := make([]byte, w*h*4)
		for i := 0; i < w*h; i++ {
			data[i*4] = byte(i)
			data[i*4+1] = byte(i >> 8)
			data[i*4+3] = 0xff
		}
		ColorMulti(data, w, h, 32, 4, 0)
	})
}
