package testcases

import (
	"image"
	stdcolor "image/color"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// rasterize renders a path into a coverage field with values in [0, 1].
func rasterize(p path.Path, width, height int) []float32 {
	r := vector.NewRasterizer(width, height)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.NewUniform(stdcolor.Alpha{A: 255}), image.Point{})

	data := make([]float32, width*height)
	for i, a := range dst.Pix {
		data[i] = float32(a) / 255
	}
	return data
}

// discCase is a procedural radial field: 1 at the center, falling off
// towards the edges.  The 0.5 iso-line is a circle.
func discCase() GrayCase {
	const w, h = 64, 64
	data := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - w/2) / (w / 2)
			dy := (float64(y) + 0.5 - h/2) / (h / 2)
			r := math.Sqrt(dx*dx + dy*dy)
			data[y*w+x] = float32(math.Max(0, 1-r))
		}
	}
	return GrayCase{
		Name:      "disc",
		Width:     w,
		Height:    h,
		CellSize:  4,
		Threshold: 0.5,
		Data:      data,
	}
}

// ringCase is the coverage of an annulus, drawn as an outer circle and a
// reversed inner circle.
func ringCase() GrayCase {
	const w, h = 64, 64
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		circle(yield, w/2, h/2, 26, false)
		circle(yield, w/2, h/2, 12, true)
	}
	return GrayCase{
		Name:      "ring",
		Width:     w,
		Height:    h,
		CellSize:  4,
		Threshold: 0.5,
		Data:      rasterize(p, w, h),
	}
}

// starCase is the coverage of a five-pointed star.
func starCase() GrayCase {
	const w, h = 96, 96
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		var pts [5]vec.Vec2
		for i := range pts {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: w/2 + 40*math.Cos(angle),
				Y: h/2 + 40*math.Sin(angle),
			}
		}
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
	return GrayCase{
		Name:      "star",
		Width:     w,
		Height:    h,
		CellSize:  4,
		Threshold: 0.5,
		Data:      rasterize(p, w, h),
	}
}

// rampCase increases linearly from 0 at the left edge to 1 at the right
// edge.  Useful for multi-threshold marches.
func rampCase() GrayCase {
	const w, h = 64, 64
	data := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = float32(x) / (w - 1)
		}
	}
	return GrayCase{
		Name:      "ramp",
		Width:     w,
		Height:    h,
		CellSize:  8,
		Threshold: 0.5,
		Data:      data,
	}
}

// fullCase is constant 1, so the whole field is inside.
func fullCase() GrayCase {
	const w, h = 64, 64
	data := make([]float32, w*h)
	for i := range data {
		data[i] = 1
	}
	return GrayCase{
		Name:      "full",
		Width:     w,
		Height:    h,
		CellSize:  8,
		Threshold: 0.5,
		Data:      data,
	}
}

// circle emits a circle made of cubic Bézier segments.
func circle(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return
	}
	if clockwise {
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
	} else {
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
	}
	yield(path.CmdClose, nil)
}
