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

// Package testcases provides sample fields for marching squares tests,
// benchmarks and the gen tools.
package testcases

// GrayCase is a named scalar field together with the march parameters
// that make a good test out of it.
type GrayCase struct {
	Name      string // lowercase a-z and _ only
	Width     int
	Height    int
	CellSize  int
	Threshold float32
	Data      []float32 // Width*Height samples in raster order
}

// ColorCase is a named color image.
type ColorCase struct {
	Name     string // lowercase a-z and _ only
	Width    int
	Height   int
	CellSize int
	Bpp      int
	Data     []byte // Width*Height*Bpp bytes in raster order
}

// Gray contains all scalar field test cases.
var Gray = []GrayCase{
	discCase(),
	ringCase(),
	starCase(),
	rampCase(),
	fullCase(),
}

// Color contains all color image test cases.
var Color = []ColorCase{
	quadrantsCase(),
	stripesCase(),
	bicolorCase(),
}
