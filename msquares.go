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

// Package msquares triangulates 2D scalar and label fields using the
// marching squares algorithm.
//
// The input is a width×height grid of samples, partitioned into square
// cells of a caller-chosen size.  Each cell is classified by the state of
// its four corners and tessellated from a precomputed lookup table;
// vertices on shared cell edges are welded so that adjacent cells produce
// index-identical vertices.  The output is a list of indexed triangle
// meshes with coordinates normalized to the unit square on the longer
// image axis.
//
// Grayscale images are segmented by a threshold (or a list of thresholds),
// color images either by an exact color match or by their full palette of
// up to 256 distinct colors.  Arbitrary fields can be marched through
// [March] by supplying the inside test directly.
package msquares

// Flag is a bitset of options controlling a march.
type Flag int

const (
	// Invert reverses the "insideness" test.
	Invert Flag = 1 << iota

	// Dual produces a meshlist with two meshes: one for the inside
	// region, one for the outside region.
	Dual

	// Heights emits 3-tuple vertex coordinates instead of 2-tuples.
	// With Color, the Z coordinate is the alpha value of the color;
	// with Grayscale, it is the value of the nearest sample.
	Heights

	// Snap applies a step function to the Z coordinates, turning each
	// mesh into a flat floor at its own level.  Requires Heights and
	// Dual.
	Snap

	// Connect adds extrusion triangles to each mesh other than the
	// lowest mesh.  Requires Heights.
	Connect

	// Simplify collapses runs of fully-interior cells into larger
	// triangles.  The outer silhouette is unaffected.
	Simplify
)

// InsideFunc reports whether the sample at the given row-major index is
// inside the region being triangulated.  The marcher performs all stride
// arithmetic; the index is always a valid sample position.
type InsideFunc func(index int) bool

// HeightFunc returns the height of the field at a normalized (x, y)
// position.  It is only consulted when the Heights flag is set.
type HeightFunc func(x, y float32) float32

// maxMeshVertices bounds the number of vertices per mesh.  Triangle
// indices are 16-bit, so a mesh can address at most 65536 vertices.
const maxMeshVertices = 1 << 16

// checkGrid panics unless the field dimensions are positive and evenly
// divisible by the cell size.
func checkGrid(width, height, cellSize int) {
	if width <= 0 || height <= 0 {
		panic("msquares: field dimensions must be positive")
	}
	if cellSize <= 0 || width%cellSize != 0 || height%cellSize != 0 {
		panic("msquares: cell size must evenly divide both field dimensions")
	}
}

// checkFlags panics on flag combinations that are not meaningful for a
// single or dual march.
func checkFlags(flags Flag) {
	if flags&Connect != 0 && flags&Heights == 0 {
		panic("msquares: Connect requires Heights")
	}
	if flags&Snap != 0 && flags&(Heights|Dual) != Heights|Dual {
		panic("msquares: Snap requires Heights and Dual")
	}
}
