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

// grayHeight returns a height function that samples the scalar field at
// the grid point nearest to a normalized position.
func grayHeight(data []float32, width, height int) HeightFunc {
	return func(x, y float32) float32 {
		i := int(min(max(float32(width)*x, 0), float32(width-1)))
		j := int(min(max(float32(height)*y, 0), float32(height-1)))
		return data[i+j*width]
	}
}

// Grayscale triangulates the region of a scalar field where the value
// exceeds the given threshold.  The field has width×height samples in
// raster order.  With Heights, the Z coordinate of each vertex is the
// value of the nearest sample.
func Grayscale(data []float32, width, height, cellSize int, threshold float32, flags Flag) *MeshList {
	inside := func(i int) bool {
		return data[i] > threshold
	}
	return March(width, height, cellSize, flags, inside, grayHeight(data, width, height))
}

// GrayscaleMulti triangulates a scalar field into len(thresholds)+1
// bands, one mesh per band, ordered from lowest to highest.  The
// thresholds must be in ascending order.
//
// The Invert, Dual and Snap flags are ignored; Snap and Connect take
// effect only together with Heights, where Connect extrudes walls
// between adjacent bands and Snap flattens each band to its own level.
func GrayscaleMulti(data []float32, width, height, cellSize int, thresholds []float32, flags Flag) *MeshList {
	connect := flags & Connect
	snap := flags & Snap
	if flags&Heights == 0 {
		snap, connect = 0, 0
	}
	flags &^= Invert | Dual | Connect | Snap

	heightAt := grayHeight(data, width, height)
	acc := &MeshList{}
	lower := float32(-math.MaxFloat32)
	for i := 0; i <= len(thresholds); i++ {
		mergeConf := Flag(0)
		if i > 0 {
			mergeConf = connect
		}
		upper := float32(math.MaxFloat32)
		if i < len(thresholds) {
			upper = thresholds[i]
		} else {
			mergeConf |= snap
		}
		lo, up := lower, upper
		inside := func(j int) bool {
			v := data[j]
			return v >= lo && v < up
		}
		band := March(width, height, cellSize, flags, inside, heightAt)
		acc = merge([]*MeshList{acc, band}, mergeConf)
		lower = upper
		flags |= connect
	}
	return acc
}

// Color triangulates the region of an image covered by the given packed
// ARGB color.  The image has width×height pixels in raster order with
// bpp bytes per pixel (RGBA order for bpp == 4); pixels are compared on
// their first bpp channels.  Heights requires bpp == 4 and uses the
// alpha channel as elevation.
func Color(data []byte, width, height, cellSize int, color uint32, bpp int, flags Flag) *MeshList {
	if flags&Heights != 0 && bpp != 4 {
		panic("msquares: Heights requires 4 bytes per pixel")
	}
	want := [4]byte{
		byte(color >> 16),
		byte(color >> 8),
		byte(color),
		byte(color >> 24),
	}
	inside := func(i int) bool {
		p := data[i*bpp:]
		for j := 0; j < bpp; j++ {
			if p[j] != want[j] {
				return false
			}
		}
		return true
	}
	heightAt := func(x, y float32) float32 {
		i := int(min(max(float32(width)*x, 0), float32(width-1)))
		j := int(min(max(float32(height)*y, 0), float32(height-1)))
		return float32(data[(i+j*width)*4+3]) / 255
	}
	return March(width, height, cellSize, flags, inside, heightAt)
}
