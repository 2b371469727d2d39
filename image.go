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
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage converts an image into the pixel layout consumed by [Color]
// and [ColorMulti]: four bytes per pixel in RGBA order, raster order,
// alpha not premultiplied.  The returned width and height are the size
// of the image's bounds.
func FromImage(img image.Image) (data []byte, width, height int) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst.Pix, b.Dx(), b.Dy()
}
