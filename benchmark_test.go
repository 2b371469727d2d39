package msquares

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

func BenchmarkGrayscale(b *testing.B) {
	for _, name := range []string{"disc", "star"} {
		tc := grayCase(b, name)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Grayscale(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Threshold, 0)
			}
		})
	}
}

func BenchmarkGrayscaleSimplify(b *testing.B) {
	tc := grayCase(b, "disc")
	b.ReportAllocs()
	for b.Loop() {
		Grayscale(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Threshold, Simplify)
	}
}

func BenchmarkGrayscaleTerrain(b *testing.B) {
	tc := grayCase(b, "disc")
	flags := Dual | Heights | Snap | Connect
	b.ReportAllocs()
	for b.Loop() {
		Grayscale(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Threshold, flags)
	}
}

func BenchmarkGrayscaleMulti(b *testing.B) {
	tc := grayCase(b, "ramp")
	thresholds := []float32{0.25, 0.5, 0.75}
	b.ReportAllocs()
	for b.Loop() {
		GrayscaleMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, thresholds, 0)
	}
}

func BenchmarkColorMulti(b *testing.B) {
	tc := colorCase(b, "quadrants")
	b.Run("flat", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp, 0)
		}
	})
	b.Run("connect", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			ColorMulti(tc.Data, tc.Width, tc.Height, tc.CellSize, tc.Bpp,
				Heights|Connect)
		}
	})
}

// BenchmarkVectorBaseline measures rasterizing a comparable circle with
// x/image/vector, the cost of producing a coverage field in the first
// place.
func BenchmarkVectorBaseline(b *testing.B) {
	const size = 64
	const k = float32(0.5522847498)
	cx, cy, radius := float32(size)/2, float32(size)/2, float32(size)*0.4
	kr := k * radius

	r := vector.NewRasterizer(size, size)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{A: 255})

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(size, size)
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
		r.ClosePath()
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}
