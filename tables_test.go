package msquares

import "testing"

func TestBinaryTable(t *testing.T) {
	initTables()

	for code, c := range binaryCases {
		if len(c.triangles)%3 != 0 {
			t.Errorf("code %x: triangle list length %d", code, len(c.triangles))
		}
		seen := make(map[int]bool)
		for _, p := range c.triangles {
			if p < 0 || p > 7 {
				t.Errorf("code %x: reference point %d out of range", code, p)
			}
			seen[p] = true
		}
		if len(seen) != len(c.points) {
			t.Errorf("code %x: %d distinct points, point list has %d",
				code, len(seen), len(c.points))
		}
		for i, p := range c.points {
			if !seen[p] {
				t.Errorf("code %x: point %d (at %d) not used by any triangle",
					code, p, i)
			}
		}
	}

	// The empty cell has no triangles, the full cell is two triangles
	// covering the four corners.
	if len(binaryCases[0x0].triangles) != 0 {
		t.Errorf("code 0 has %d triangles", len(binaryCases[0x0].triangles)/3)
	}
	if len(binaryCases[0xf].triangles) != 6 {
		t.Errorf("code f has %d triangles", len(binaryCases[0xf].triangles)/3)
	}
	for _, p := range binaryCases[0xf].triangles {
		if p%2 != 0 {
			t.Errorf("code f uses edge midpoint %d", p)
		}
	}
}

func TestQuaternaryTable(t *testing.T) {
	initTables()

	for code, c := range quaternaryCases {
		total := 0
		for slot := 0; slot < 4; slot++ {
			tris := c.triangles[slot]
			if len(tris)%3 != 0 {
				t.Errorf("code %d slot %d: triangle list length %d",
					code, slot, len(tris))
			}
			if len(tris) > 4*3 {
				t.Errorf("code %d slot %d: %d triangles", code, slot, len(tris)/3)
			}
			total += len(tris) / 3
			for _, p := range tris {
				if p < 0 || p > 8 {
					t.Errorf("code %d slot %d: reference point %d", code, slot, p)
				}
			}
			edges := c.edges[slot]
			if len(edges) > 4 {
				t.Errorf("code %d slot %d: %d boundary points", code, slot, len(edges))
			}
			for _, p := range edges {
				if p < 0 || p > 8 {
					t.Errorf("code %d slot %d: boundary point %d", code, slot, p)
				}
			}
		}
		if total > 8 {
			t.Errorf("code %d: %d triangles total", code, total)
		}
	}

	// A single-color cell fills slot 0 with two triangles and leaves the
	// other slots empty.
	c := quaternaryCases[0]
	if len(c.triangles[0]) != 6 {
		t.Errorf("code 0 slot 0 has %d triangles", len(c.triangles[0])/3)
	}
	for slot := 1; slot < 4; slot++ {
		if len(c.triangles[slot]) != 0 || len(c.edges[slot]) != 0 {
			t.Errorf("code 0 slot %d not empty", slot)
		}
	}
}

func TestTableDigits(t *testing.T) {
	for _, s := range []string{binaryTable, quaternaryTable, quaternaryEdges} {
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				t.Fatalf("byte %q at offset %d", s[i], i)
			}
		}
	}
}
