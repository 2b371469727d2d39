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

// March triangulates the boundary between the inside and outside regions
// of a sampled field.
//
// The field has width×height samples in raster order (top-left first) and
// is partitioned into square cells of cellSize×cellSize samples.  Width
// and height must be positive and evenly divisible by cellSize.  The
// height function may be nil unless the Heights flag is set.
//
// Without Dual, the result contains a single mesh covering the inside
// region; with Dual, a second mesh covers the outside region.  Flag
// combinations that violate the documented constraints cause a panic.
func March(width, height, cellSize int, flags Flag, inside InsideFunc, heightAt HeightFunc) *MeshList {
	checkGrid(width, height, cellSize)
	checkFlags(flags)

	if flags&Dual != 0 {
		connect := flags & Connect
		snap := flags & Snap
		sub := flags &^ (Dual | Connect | Snap)

		// The outside mesh comes first so that leveling assigns it the
		// lower Z value.
		sub ^= Invert
		m0 := March(width, height, cellSize, sub, inside, heightAt)
		sub ^= Invert
		m1 := March(width, height, cellSize, sub|connect, inside, heightAt)
		return merge([]*MeshList{m0, m1}, snap|connect)
	}

	initTables()
	mesh := marchBinary(width, height, cellSize, flags, inside, heightAt)
	return &MeshList{meshes: []*Mesh{mesh}}
}

// zigzag maps 0, 1, 2, 3, 4, ... to 0, 0, 1, -1, 2, ..., visiting sample
// offsets outwards from a midpoint.
func zigzag(i int) int {
	if i%2 == 1 {
		return -(i / 2)
	}
	return i / 2
}

// marchBinary runs a single binary march and returns the resulting mesh.
// The lookup tables must already be initialized.
func marchBinary(width, height, cellSize int, flags Flag, inside InsideFunc, heightAt HeightFunc) *Mesh {
	invert := flags&Invert != 0
	dim := 2
	if flags&Heights != 0 {
		dim = 3
	}
	ncols := width / cellSize
	nrows := height / cellSize
	ncells := ncols * nrows

	// Worst case is four triangles and six vertices per cell; extrusion
	// adds two triangles and two vertices per boundary edge.
	maxtris := ncells * 4
	maxpts := ncells * 6
	maxedges := ncells * 2

	var conn []uint16
	var edgemap []uint16
	nconn := 0
	if flags&Connect != 0 {
		conn = make([]uint16, 0, maxedges*6)
		maxtris += maxedges * 2
		maxpts += maxedges * 2
		edgemap = make([]uint16, maxpts)
		for i := range edgemap {
			edgemap[i] = 0xffff
		}
	}
	tris := make([]uint16, 0, maxtris*3)
	pts := make([]float32, 0, maxpts*dim)
	npts := 0

	// Cell geometry uses the 8 reference points in normalized
	// coordinates.  The image data is in raster order, so Y grows
	// towards the south edge of the cell.
	var vertsx, vertsy [8]float32
	norm := 1 / float32(max(width, height))
	ncs := float32(cellSize) * norm
	maxrow := (height - 1) * width

	prevRowMasks := make([]uint8, ncols)
	prevRowInds := make([]uint16, ncols*3)

	var simpCodes []uint8
	var simpStart, simpCount []int
	if flags&Simplify != 0 {
		simpCodes = make([]uint8, ncells)
		simpStart = make([]int, ncells)
		simpCount = make([]int, ncells)
	}

	for row := 0; row < nrows; row++ {
		vertsx[0], vertsx[6], vertsx[7] = 0, 0, 0
		vertsx[1], vertsx[5] = 0.5*ncs, 0.5*ncs
		vertsx[2], vertsx[3], vertsx[4] = ncs, ncs, ncs
		ysouth := ncs * float32(row+1)
		ynorth := ncs * float32(row)
		ymid := ncs * (float32(row) + 0.5)
		vertsy[0], vertsy[1], vertsy[2] = ysouth, ysouth, ysouth
		vertsy[4], vertsy[5], vertsy[6] = ynorth, ynorth, ynorth
		vertsy[3], vertsy[7] = ymid, ymid

		northi := row * cellSize * width
		southi := min(northi+cellSize*width, maxrow)
		northwest := invert != inside(northi)
		southwest := invert != inside(southi)
		var previnds [8]uint16
		var prevmask uint8

		for col := 0; col < ncols; col++ {
			northi += cellSize
			southi += cellSize
			if col == ncols-1 {
				northi--
				southi--
			}

			northeast := invert != inside(northi)
			southeast := invert != inside(southi)
			code := 0
			if southwest {
				code |= 1
			}
			if southeast {
				code |= 2
			}
			if northwest {
				code |= 4
			}
			if northeast {
				code |= 8
			}

			var currinds [8]uint16
			var mask uint8
			prevRowMask := prevRowMasks[col]
			for _, midp := range binaryCases[code].points {
				bit := uint8(1) << midp
				mask |= bit

				// Weld with the cell to the west (first three cases)
				// and with the cell to the north (last three cases).
				if bit == 1 && prevmask&4 != 0 {
					currinds[midp] = previnds[2]
					continue
				}
				if bit == 128 && prevmask&8 != 0 {
					currinds[midp] = previnds[3]
					continue
				}
				if bit == 64 && prevmask&16 != 0 {
					currinds[midp] = previnds[4]
					continue
				}
				if bit == 16 && prevRowMask&4 != 0 {
					currinds[midp] = prevRowInds[col*3+2]
					continue
				}
				if bit == 32 && prevRowMask&2 != 0 {
					currinds[midp] = prevRowInds[col*3+1]
					continue
				}
				if bit == 64 && prevRowMask&1 != 0 {
					currinds[midp] = prevRowInds[col*3+0]
					continue
				}

				x := vertsx[midp]
				y := vertsy[midp]

				// Slide edge midpoints to the actual crossing point,
				// searching outwards from the middle of the cell edge.
				switch midp {
				case 1:
					begin := southi - cellSize/2
					prev := false
					for i := 0; i < cellSize; i++ {
						offset := begin + zigzag(i)
						in := inside(offset)
						if i > 0 && in != prev {
							x = norm * float32(col*cellSize+offset-southi+cellSize)
							break
						}
						prev = in
					}
				case 5:
					begin := northi - cellSize/2
					prev := false
					for i := 0; i < cellSize; i++ {
						offset := begin + zigzag(i)
						in := inside(offset)
						if i > 0 && in != prev {
							x = norm * float32(col*cellSize+offset-northi+cellSize)
							break
						}
						prev = in
					}
				case 3:
					begin := northi + width*cellSize/2
					prev := false
					for i := 0; i < cellSize; i++ {
						offset := begin + width*zigzag(i)
						in := inside(offset)
						if i > 0 && in != prev {
							y = norm * (float32(row*cellSize) + float32(offset-northi)/float32(width))
							break
						}
						prev = in
					}
				case 7:
					begin := northi + width*cellSize/2 - cellSize
					prev := false
					for i := 0; i < cellSize; i++ {
						offset := begin + width*zigzag(i)
						in := inside(offset)
						if i > 0 && in != prev {
							y = norm * (float32(row*cellSize) + float32(offset-northi-cellSize)/float32(width))
							break
						}
						prev = in
					}
				}

				if npts >= maxMeshVertices {
					panic("msquares: mesh exceeds 65536 vertices")
				}
				pts = append(pts, x, y)
				if dim == 3 {
					pts = append(pts, heightAt(x, y))
				}
				currinds[midp] = uint16(npts)
				npts++
			}

			spec := binaryCases[code].triangles
			if flags&Simplify != 0 {
				cell := ncols*row + col
				simpCodes[cell] = uint8(code)
				simpStart[cell] = len(tris) / 3
				simpCount[cell] = len(spec) / 3
			}

			// Triangles are emitted in reverse so that they wind
			// counter-clockwise in a Y-up coordinate system.
			for t := 0; t < len(spec); t += 3 {
				a, b, c := spec[t], spec[t+1], spec[t+2]
				tris = append(tris, currinds[c], currinds[b], currinds[a])
			}

			// Two extrusion triangles for each boundary edge.  An edge
			// of the region boundary is a triangle side with both ends
			// on cell edge midpoints.
			if flags&Connect != 0 {
				for t := 0; t < len(spec); t += 3 {
					a, b, c := spec[t], spec[t+1], spec[t+2]
					i := currinds[a]
					j := currinds[b]
					k := currinds[c]
					var u, v, w bool
					switch {
					case a%2 == 1 && b%2 == 1:
						u, v = true, true
					case a%2 == 1 && c%2 == 1:
						u, w = true, true
					case b%2 == 1 && c%2 == 1:
						v, w = true, true
					default:
						continue
					}
					for _, d := range []struct {
						used bool
						src  uint16
					}{{u, i}, {v, j}, {w, k}} {
						if d.used && edgemap[d.src] == 0xffff {
							if npts >= maxMeshVertices {
								panic("msquares: mesh exceeds 65536 vertices")
							}
							pts = append(pts, pts[int(d.src)*dim:(int(d.src)+1)*dim]...)
							edgemap[d.src] = uint16(npts)
							npts++
						}
					}
					switch {
					case u && v:
						conn = append(conn, i, j, edgemap[j], edgemap[j], edgemap[i], i)
					case u && w:
						conn = append(conn, edgemap[k], k, i, edgemap[i], edgemap[k], i)
					case v && w:
						conn = append(conn, j, k, edgemap[k], edgemap[k], edgemap[j], j)
					}
					nconn += 2
				}
			}

			prevRowMasks[col] = mask
			prevRowInds[col*3+0] = currinds[0]
			prevRowInds[col*3+1] = currinds[1]
			prevRowInds[col*3+2] = currinds[2]
			prevmask = mask
			previnds = currinds
			northwest = northeast
			southwest = southeast
			for i := range vertsx {
				vertsx[i] += ncs
			}
		}
	}

	if flags&Simplify != 0 {
		tris = collapseRuns(tris, simpCodes, simpStart, simpCount, ncols, nrows)
		pts, npts = compactVertices(pts, dim, npts, tris, conn)
	}

	// Connector triangles go last so that they form a contiguous suffix.
	tris = append(tris, conn...)

	return &Mesh{
		Points:    pts,
		Dim:       dim,
		Triangles: tris,
		nconn:     nconn,
	}
}

// collapseRuns rebuilds the triangle list, replacing each horizontal run
// of cells that are fully interior in two adjacent rows by a pair of
// large triangles.  codes, start and count give the cell code, first
// triangle and triangle count of every cell.
func collapseRuns(tris []uint16, codes []uint8, start, count []int, ncols, nrows int) []uint16 {
	newtris := make([]uint16, 0, len(tris))

	// For a fully interior cell the first six indices are
	// NE SE SW / SW NW NE, which locates the four corner vertices.
	quad := func(row, startRun, endCol int) {
		nwCell := ncols*row + startRun
		neCell := ncols*row + endCol
		swCell := nwCell + ncols
		seCell := neCell + ncols
		nw := tris[start[nwCell]*3+4]
		ne := tris[start[neCell]*3+0]
		sw := tris[start[swCell]*3+2]
		se := tris[start[seCell]*3+1]
		newtris = append(newtris, se, sw, nw, nw, ne, se)
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
			if codes[cell] == 0xf && codes[south] == 0xf {
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

// compactVertices drops vertices that are no longer referenced by any
// triangle and renumbers tris and conn in place.  It returns the new
// point array and point count.
func compactVertices(pts []float32, dim, npts int, tris, conn []uint16) ([]float32, int) {
	markers := make([]bool, npts)
	nnew := 0
	for _, idx := range tris {
		if !markers[idx] {
			markers[idx] = true
			nnew++
		}
	}
	for _, idx := range conn {
		if !markers[idx] {
			markers[idx] = true
			nnew++
		}
	}

	newpts := make([]float32, 0, nnew*dim)
	mapping := make([]uint16, npts)
	j := 0
	for i := 0; i < npts; i++ {
		if markers[i] {
			newpts = append(newpts, pts[i*dim:(i+1)*dim]...)
			mapping[i] = uint16(j)
			j++
		}
	}
	for t := range tris {
		tris[t] = mapping[tris[t]]
	}
	for t := range conn {
		conn[t] = mapping[conn[t]]
	}
	return newpts, nnew
}
