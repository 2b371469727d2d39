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

import "sync"

// Tessellations are stored as packed digit strings and decoded once, on
// first use.  Each cell references up to nine points:
//
//	6 --- 5 --- 4
//	|           |
//	7     8     3
//	|           |
//	0 --- 1 --- 2
//
// Corners are even, edge midpoints odd, 8 is the cell center (used by
// the quaternary tables only).

// binaryCase describes the tessellation of one of the 16 binary cell
// configurations.  points lists the reference points in the order the
// cell first uses them; triangles holds three reference points per
// triangle.
type binaryCase struct {
	points    []int
	triangles []int
}

// quaternaryCase describes one of the 64 canonical four-color cell
// configurations.  Both arrays are indexed by the cell-local color slot.
// triangles holds three reference points per triangle; edges holds the
// boundary polyline separating the slot's region from later slots.
type quaternaryCase struct {
	triangles [4][]int
	edges     [4][]int
}

var (
	tableOnce       sync.Once
	binaryCases     [16]binaryCase
	quaternaryCases [64]quaternaryCase
)

// For each configuration: triangle count followed by three reference
// points per triangle.
const binaryTable = "0" +
	"1017" +
	"1123" +
	"2023370" +
	"1756" +
	"2015560" +
	"2123756" +
	"3023035056" +
	"1345" +
	"4013034045057" +
	"2124451" +
	"3024045057" +
	"2734467" +
	"3013034046" +
	"3124146167" +
	"2024460"

// For each of the 64 configurations, four slots: triangle count followed
// by three reference points per triangle.
const quaternaryTable = "2024046000" +
	"3346360301112300" +
	"3346360301112300" +
	"3346360301112300" +
	"3560502523013450" +
	"2015056212414500" +
	"4018087785756212313828348450" +
	"4018087785756212313828348450" +
	"3560502523013450" +
	"4018087785756212313828348450" +
	"2015056212414500" +
	"4018087785756212313828348450" +
	"3560502523013450" +
	"4018087785756212313828348450" +
	"4018087785756212313828348450" +
	"2015056212414500" +
	"3702724745001756" +
	"2018087212313828348452785756" +
	"4013034045057112301756" +
	"4013034045057112301756" +
	"2023037027347460" +
	"1701312414616700" +
	"2018087212313847857568348450" +
	"2018087212313847857568348450" +
	"4018087123138028348452785756" +
	"1701467161262363513450" +
	"2018087412313883484502785756" +
	"2018087212313828348452785756" +
	"4018087123138028348452785756" +
	"1701467161262363513450" +
	"2018087212313828348452785756" +
	"2018087412313883484502785756" +
	"3702724745001756" +
	"4013034045057112301756" +
	"2018087212313828348452785756" +
	"4013034045057112301756" +
	"4018087123138028348452785756" +
	"2018087412313883484502785756" +
	"1701467161262363513450" +
	"2018087212313828348452785756" +
	"2023037027347460" +
	"2018087212313847857568348450" +
	"1701312414616700" +
	"2018087212313847857568348450" +
	"4018087123138028348452785756" +
	"2018087212313828348452785756" +
	"1701467161262363513450" +
	"2018087412313883484502785756" +
	"3702724745001756" +
	"4013034045057112301756" +
	"4013034045057112301756" +
	"2018087212313828348452785756" +
	"4018087123138028348452785756" +
	"2018087412313883484502785756" +
	"2018087212313828348452785756" +
	"1701467161262363513450" +
	"4018087123138028348452785756" +
	"2018087212313828348452785756" +
	"2018087412313883484502785756" +
	"1701467161262363513450" +
	"2023037027347460" +
	"2018087212313847857568348450" +
	"2018087212313847857568348450" +
	"1701312414616700"

// For each of the 64 configurations, four slots: edge count followed by
// one reference point per edge vertex.
const quaternaryEdges = "0000" +
	"21323100213231002132310023502530" +
	"215251003185338135830318533813583023502530" +
	"318533813583021525100318533813583023502530" +
	"318533813583031853381358302152510025700275" +
	"318733813583378541357231027541357231027523702730" +
	"21727100318733813783031873381378303387035833785" +
	"217471352530318735810378531873381358337853387035833785" +
	"2174713525303187338135833785318735810378525700275" +
	"41357231027531873381358337854135723102753387035833785" +
	"3187358103785217471352530318733813583378523702730" +
	"31873381378302172710031873381378303387035833785" +
	"3187338135833785217471352530318735810378525700275" +
	"41357231027541357231027531873381358337853387035833785" +
	"318735810378531873381358337852174713525303387035833785" +
	"3187338135833785318735810378521747135253023702730" +
	"3187338137830318733813783021727100"

// tableReader walks a packed digit string.
type tableReader struct {
	s   string
	pos int
}

func (r *tableReader) next() int {
	if r.pos >= len(r.s) {
		panic("msquares: tessellation table truncated")
	}
	c := r.s[r.pos]
	if c < '0' || c > '9' {
		panic("msquares: invalid digit in tessellation table")
	}
	r.pos++
	return int(c - '0')
}

func (r *tableReader) finish() {
	if r.pos != len(r.s) {
		panic("msquares: leftover digits in tessellation table")
	}
}

// initTables decodes the packed tables.  Safe for concurrent use; the
// decoded tables are never written again.
func initTables() {
	tableOnce.Do(func() {
		r := &tableReader{s: binaryTable}
		for i := range binaryCases {
			ntris := r.next()
			tris := make([]int, ntris*3)
			var pts []int
			var mask int
			for j := range tris {
				p := r.next()
				if p > 7 {
					panic("msquares: binary reference point out of range")
				}
				if mask&(1<<p) == 0 {
					mask |= 1 << p
					pts = append(pts, p)
				}
				tris[j] = p
			}
			binaryCases[i] = binaryCase{points: pts, triangles: tris}
		}
		r.finish()

		r = &tableReader{s: quaternaryTable}
		for i := range quaternaryCases {
			for slot := 0; slot < 4; slot++ {
				ntris := r.next()
				tris := make([]int, ntris*3)
				for j := range tris {
					p := r.next()
					if p > 8 {
						panic("msquares: quaternary reference point out of range")
					}
					tris[j] = p
				}
				quaternaryCases[i].triangles[slot] = tris
			}
		}
		r.finish()

		r = &tableReader{s: quaternaryEdges}
		for i := range quaternaryCases {
			for slot := 0; slot < 4; slot++ {
				nedges := r.next()
				edges := make([]int, nedges)
				for j := range edges {
					p := r.next()
					if p > 8 {
						panic("msquares: quaternary reference point out of range")
					}
					edges[j] = p
				}
				quaternaryCases[i].edges[slot] = edges
			}
		}
		r.finish()
	})
}
