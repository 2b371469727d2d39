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

import (
	"maps"
	"slices"
)

// multiCode classifies the four corner colors of a cell into one of 64
// canonical configurations, based only on which corners match which.
// The southwest corner is always class 0, so the caller can drop the two
// lowest bits.
func multiCode(sw, se, ne, nw int) int {
	var code [4]int
	n := 1
	if se == sw {
		code[1] = code[0]
	} else {
		code[1] = n
		n++
	}
	switch {
	case ne == se:
		code[2] = code[1]
	case ne == sw:
		code[2] = code[0]
	default:
		code[2] = n
		n++
	}
	switch {
	case nw == ne:
		code[3] = code[2]
	case nw == se:
		code[3] = code[1]
	case nw == sw:
		code[3] = code[0]
	default:
		code[3] = n
	}
	return code[0] | code[1]<<2 | code[2]<<4 | code[3]<<6
}

// packARGB packs one pixel into a single ARGB value.  Pixels with fewer
// than four channels are packed big-endian as-is.
func packARGB(p []byte, bpp int) uint32 {
	if bpp == 4 {
		return uint32(p[2]) | uint32(p[1])<<8 | uint32(p[0])<<16 | uint32(p[3])<<24
	}
	var c uint32
	for i := 0; i < bpp; i++ {
		c = c<<8 | uint32(p[i])
	}
	return c
}

// ColorMulti triangulates every color region of an image, producing one
// mesh per distinct color.  Meshes are ordered by ascending packed ARGB
// value, and each mesh's Color field identifies its region.
//
// The image has width×height pixels in raster order with bpp bytes per
// pixel (1 to 4; 4 means RGBA).  It must contain at most 256 distinct
// colors.  Heights requires bpp == 4 and uses the alpha channel as
// elevation; Connect extrudes walls from each region down to the
// smallest alpha value of the preceding palette entries.  The Snap,
// Invert and Dual flags are not supported here.
func ColorMulti(data []byte, width, height, cellSize, bpp int, flags Flag) *MeshList {
	checkGrid(width, height, cellSize)
	if bpp <= 0 || bpp > 4 {
		panic("msquares: bytes per pixel must be 1, 2, 3, or 4")
	}
	if len(data) < width*height*bpp {
		panic("msquares: pixel data too short")
	}
	if flags&Heights != 0 && bpp != 4 {
		panic("msquares: Heights requires 4 bytes per pixel")
	}
	if flags&(Snap|Invert|Dual) != 0 {
		panic("msquares: Snap, Invert and Dual are not supported by ColorMulti")
	}
	if flags&Connect != 0 && flags&Heights == 0 {
		panic("msquares: Connect requires Heights")
	}
	initTables()

	ncols := width / cellSize
	nrows := height / cellSize
	maxrow := (height - 1) * width
	ncells := ncols * nrows
	dim := 2
	if flags&Heights != 0 {
		dim = 3
	}

	// For reference points on the west and north cell edges, the
	// corresponding point in the neighboring cell.
	westToEast := [9]int{2, -1, -1, -1, -1, -1, 4, 3, -1}
	northToSouth := [9]int{-1, -1, -1, -1, 2, 1, 0, -1, -1}

	// Build the sorted color palette and remap the image to palette
	// indices.
	seen := make(map[uint32]struct{})
	for i := 0; i < width*height; i++ {
		seen[packARGB(data[i*bpp:], bpp)] = struct{}{}
	}
	palette := slices.Sorted(maps.Keys(seen))
	if len(palette) > 256 {
		panic("msquares: more than 256 distinct colors")
	}
	ncolors := len(palette)
	lookup := make(map[uint32]uint8, ncolors)
	for i, c := range palette {
		lookup[c] = uint8(i)
	}
	pixels := make([]uint8, width*height)
	for i := range pixels {
		pixels[i] = lookup[packARGB(data[i*bpp:], bpp)]
	}

	maxPtsPerCell := 9
	if flags&Connect != 0 {
		maxPtsPerCell += 6
	}
	meshes := make([]*Mesh, ncolors)
	conns := make([][]uint16, ncolors)
	for i := range meshes {
		meshes[i] = &Mesh{
			Color:     palette[i],
			Dim:       dim,
			Points:    make([]float32, 0, ncells*maxPtsPerCell*dim),
			Triangles: make([]uint16, 0, ncells*6*3),
		}
		if flags&Connect != 0 {
			conns[i] = make([]uint16, 0, ncells*8*3)
		}
	}

	var vertsx, vertsy [9]float32
	norm := 1 / float32(max(width, height))
	ncs := float32(cellSize) * norm

	// Welding scratch, double-buffered per cell and per row.
	currCell := make([]uint8, 256)
	prevCell := make([]uint8, 256)
	currInds := make([]uint16, 256*9)
	prevInds := make([]uint16, 256*9)
	currRowInds := make([]uint16, ncols*3*256)
	prevRowInds := make([]uint16, ncols*3*256)
	currRowCells := make([]uint8, ncols*256)
	prevRowCells := make([]uint8, ncols*256)

	var simpWords []uint32
	if flags&Simplify != 0 {
		simpWords = make([]uint32, 2*ncells)
	}

	for row := 0; row < nrows; row++ {
		vertsx[0], vertsx[6], vertsx[7] = 0, 0, 0
		vertsx[1], vertsx[5], vertsx[8] = 0.5*ncs, 0.5*ncs, 0.5*ncs
		vertsx[2], vertsx[3], vertsx[4] = ncs, ncs, ncs
		ysouth := ncs * float32(row+1)
		ynorth := ncs * float32(row)
		ymid := ncs * (float32(row) + 0.5)
		vertsy[0], vertsy[1], vertsy[2] = ysouth, ysouth, ysouth
		vertsy[4], vertsy[5], vertsy[6] = ynorth, ynorth, ynorth
		vertsy[3], vertsy[7], vertsy[8] = ymid, ymid, ymid

		northi := row * cellSize * width
		southi := min(northi+cellSize*width, maxrow)
		nwval := int(pixels[northi])
		swval := int(pixels[southi])
		clear(currRowCells)

		for col := 0; col < ncols; col++ {
			northi += cellSize
			southi += cellSize
			if col == ncols-1 {
				northi--
				southi--
			}

			neval := int(pixels[northi])
			seval := int(pixels[southi])
			code := multiCode(swval, seval, neval, nwval) >> 2
			tcase := &quaternaryCases[code]

			vals := [4]int{swval, seval, neval, nwval}
			for m := 0; m < ncolors; m++ {
				currCell[m] = 0
			}
			var colorsWord, countsWord uint32
			for c := 0; c < 4; c++ {
				color := vals[c]
				spec := tcase.triangles[c]
				colorsWord |= uint32(color) << (8 * c)
				countsWord |= uint32(len(spec)/3) << (8 * c)
				mesh := meshes[color]
				ci := currInds[9*color : 9*color+9]
				pi := prevInds[9*color : 9*color+9]
				rowi := prevRowInds[ncols*3*color+col*3:]
				prevRowCell := prevRowCells[color*ncols+col]

				var usedpts [9]bool
				for _, index := range spec {
					if usedpts[index] {
						continue
					}
					usedpts[index] = true
					if index < 8 {
						currCell[color] |= 1 << index
					}

					// Weld with the cell to the north, then with the
					// cell to the west.
					if p := northToSouth[index]; p >= 0 && row > 0 && prevRowCell&(1<<p) != 0 {
						ci[index] = rowi[p]
						continue
					}
					if p := westToEast[index]; p >= 0 && col > 0 && prevCell[color]&(1<<p) != 0 {
						ci[index] = pi[p]
						continue
					}

					x := vertsx[index]
					y := 1 - vertsy[index]

					// Nudge edge midpoints to the first palette
					// transition along the cell edge.
					switch index {
					case 1, 5:
						begin := southi - cellSize
						if index == 5 {
							begin = northi - cellSize
						}
						for i := 1; i < cellSize; i++ {
							if pixels[begin+i] != pixels[begin] {
								x = vertsx[0] + ncs*float32(i)/float32(cellSize)
								break
							}
						}
					case 7:
						begin := northi - cellSize
						for i := 1; i < cellSize; i++ {
							if pixels[begin+i*width] != pixels[begin] {
								y = (1 - vertsy[6]) - ncs*float32(i)/float32(cellSize)
								break
							}
						}
					case 3:
						begin := northi
						for i := 1; i < cellSize; i++ {
							if pixels[begin+i*width] != pixels[begin] {
								y = (1 - vertsy[4]) - ncs*float32(i)/float32(cellSize)
								break
							}
						}
					}

					np := len(mesh.Points) / dim
					if np >= maxMeshVertices {
						panic("msquares: mesh exceeds 65536 vertices")
					}
					mesh.Points = append(mesh.Points, x, y)
					if dim == 3 {
						mesh.Points = append(mesh.Points, float32(mesh.Color>>24)/255)
					}
					ci[index] = uint16(np)
				}

				// Stamp out the cell's triangles for this color.
				for _, index := range spec {
					mesh.Triangles = append(mesh.Triangles, ci[index])
				}

				// Extrusion points and wall triangles along the
				// region's boundary polyline.
				if flags&Connect != 0 && color != 0 {
					minalpha := mesh.Color >> 24
					for idx := 0; idx < color-1; idx++ {
						minalpha = min(minalpha, meshes[idx].Color>>24)
					}
					edges := tcase.edges[c]
					for e, index := range edges {
						np := len(mesh.Points) / dim
						if np >= maxMeshVertices {
							panic("msquares: mesh exceeds 65536 vertices")
						}
						mesh.Points = append(mesh.Points, vertsx[index], 1-vertsy[index])
						if dim == 3 {
							mesh.Points = append(mesh.Points, float32(minalpha)/255)
						}
						if e > 0 {
							i0 := uint16(np)
							i1 := uint16(np - 1)
							i2 := ci[edges[e-1]]
							i3 := ci[index]
							conns[color] = append(conns[color], i2, i1, i0, i0, i3, i2)
						}
					}
				}
			}

			// Stash the south edge of every region for vertical welding
			// in the next row.
			for color := 0; color < ncolors; color++ {
				currRowCells[color*ncols+col] = currCell[color]
				base := color*ncols*3 + col*3
				currRowInds[base+0] = currInds[color*9+0]
				currRowInds[base+1] = currInds[color*9+1]
				currRowInds[base+2] = currInds[color*9+2]
			}

			if flags&Simplify != 0 {
				cell := row*ncols + col
				simpWords[cell*2] = colorsWord
				simpWords[cell*2+1] = countsWord
			}

			nwval, swval = neval, seval
			for i := range vertsx {
				vertsx[i] += ncs
			}
			prevCell, currCell = currCell, prevCell
			prevInds, currInds = currInds, prevInds
		}
		prevRowCells, currRowCells = currRowCells, prevRowCells
		prevRowInds, currRowInds = currRowInds, prevRowInds
	}

	if flags&Simplify != 0 {
		blocks := make([]bool, ncells)
		triStart := make([]int, ncells)
		triCount := make([]int, ncells)
		for color := 0; color < ncolors; color++ {
			mesh := meshes[color]

			ntris := 0
			for cell := 0; cell < ncells; cell++ {
				colorsWord := simpWords[cell*2]
				countsWord := simpWords[cell*2+1]
				ncelltris := 0
				ncorners := 0
				for c := 0; c < 4; c++ {
					if int(colorsWord>>(8*c))&0xff == color {
						ncelltris += int(countsWord>>(8*c)) & 0xff
						ncorners++
					}
				}
				triCount[cell] = ncelltris
				triStart[cell] = ntris
				blocks[cell] = ncorners == 4
				ntris += ncelltris
			}

			mesh.Triangles = collapseBlocks(mesh.Triangles, blocks, triStart, triCount, ncols, nrows)
		}
	}

	// Connector triangles go last so that they form a contiguous suffix.
	for i, mesh := range meshes {
		if len(conns[i]) > 0 {
			mesh.nconn = len(conns[i]) / 3
			mesh.Triangles = append(mesh.Triangles, conns[i]...)
		}
	}
	return &MeshList{meshes: meshes}
}

// collapseBlocks is the per-region analogue of collapseRuns: cells whose
// four corners all have the region's color are collapsed in horizontal
// runs over pairs of rows.  If no run exists, the triangle list is
// returned unchanged.
func collapseBlocks(tris []uint16, blocks []bool, start, count []int, ncols, nrows int) []uint16 {
	anyRun := false
	for row := 0; row < nrows-1 && !anyRun; row += 2 {
		for col := 0; col < ncols; col++ {
			cell := ncols*row + col
			if blocks[cell] && blocks[cell+ncols] {
				anyRun = true
				break
			}
		}
	}
	if !anyRun {
		return tris
	}

	newtris := make([]uint16, 0, len(tris))

	// For a single-color cell the six indices are SW SE NE / SW NE NW,
	// which locates the four corner vertices.
	quad := func(row, startRun, endCol int) {
		nwCell := ncols*row + startRun
		neCell := ncols*row + endCol
		swCell := nwCell + ncols
		seCell := neCell + ncols
		nw := tris[start[nwCell]*3+5]
		ne := tris[start[neCell]*3+2]
		sw := tris[start[swCell]*3+0]
		se := tris[start[seCell]*3+1]
		newtris = append(newtris, nw, sw, se, se, ne, nw)
	}
	copyCell := func(cell int) {
		lo := start[cell] * 3
		newtris = append(newtris, tris[lo:lo+count[cell]*3]...)
	}

	inRun := false
	startRun := 0
	for row := 0; row < nrows-1; row += 2 {
		for col := 0; col < ncols; col++ {
			cell := ncols*row + col
			south := cell + ncols
			if blocks[cell] && blocks[south] {
				if !inRun {
					inRun = true
					startRun = col
				}
				continue
			}
			if inRun {
				inRun = false
				quad(row, startRun, col-1)
			}
			copyCell(cell)
			copyCell(south)
		}
		if inRun {
			inRun = false
			quad(row, startRun, ncols-1)
		}
	}

	// A trailing row without a partner below it is kept as-is.
	if nrows%2 == 1 {
		row := nrows - 1
		for col := 0; col < ncols; col++ {
			copyCell(ncols*row + col)
		}
	}
	return newtris
}
