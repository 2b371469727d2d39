package testcases

// quadrantsCase divides the image into four solid quadrants with
// distinct colors and distinct alpha values.
func quadrantsCase() ColorCase {
	const w, h = 64, 64
	colors := [4][4]byte{
		{0x20, 0x60, 0xa0, 0x40}, // top-left
		{0xff, 0x00, 0x00, 0x80}, // top-right
		{0x00, 0xff, 0x00, 0xc0}, // bottom-left
		{0x00, 0x00, 0xff, 0xff}, // bottom-right
	}
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			q := 0
			if x >= w/2 {
				q = 1
			}
			if y >= h/2 {
				q += 2
			}
			copy(data[(y*w+x)*4:], colors[q][:])
		}
	}
	return ColorCase{
		Name:     "quadrants",
		Width:    w,
		Height:   h,
		CellSize: 8,
		Bpp:      4,
		Data:     data,
	}
}

// stripesCase is three vertical RGB stripes with 3 bytes per pixel.
// The stripe boundaries at x = 18 and x = 34 fall inside cells.
func stripesCase() ColorCase {
	const w, h = 48, 48
	colors := [3][3]byte{
		{0xff, 0x00, 0x00},
		{0x00, 0xff, 0x00},
		{0x00, 0x00, 0xff},
	}
	data := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := 0
			if x >= 18 {
				s = 1
			}
			if x >= 34 {
				s = 2
			}
			copy(data[(y*w+x)*3:], colors[s][:])
		}
	}
	return ColorCase{
		Name:     "stripes",
		Width:    w,
		Height:   h,
		CellSize: 8,
		Bpp:      3,
		Data:     data,
	}
}

// bicolorCase splits the image into two vertical regions with different
// alpha values, the smallest possible two-region case.  The split at
// x = 6 deliberately falls inside a cell, so sub-cell refinement has
// something to find.
func bicolorCase() ColorCase {
	const w, h = 16, 16
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := data[(y*w+x)*4:]
			if x < 6 {
				px[0], px[1], px[2], px[3] = 0x10, 0x10, 0x10, 0x40
			} else {
				px[0], px[1], px[2], px[3] = 0xf0, 0xf0, 0xf0, 0xff
			}
		}
	}
	return ColorCase{
		Name:     "bicolor",
		Width:    w,
		Height:   h,
		CellSize: 4,
		Bpp:      4,
		Data:     data,
	}
}
