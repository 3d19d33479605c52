// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package buffer

import "github.com/chewxy/math32"

// Buffer is a flat, row-major pixel buffer with a fixed number of
// float32 channels per element (its "channel count" or F, in the
// vocabulary of the rasterizer this package serves).
type Buffer struct {
	data     []float32
	width    int
	height   int
	channels int
}

// New allocates a zeroed Buffer of the given dimensions and channel count.
// width, height and channels must all be positive.
func New(width, height, channels int) *Buffer {
	if width <= 0 || height <= 0 || channels <= 0 {
		panic("buffer: width, height and channels must be positive")
	}
	return &Buffer{
		data:     make([]float32, width*height*channels),
		width:    width,
		height:   height,
		channels: channels,
	}
}

// Width returns the buffer's width in elements.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer's height in elements.
func (b *Buffer) Height() int { return b.height }

// Channels returns the number of float32 channels per element.
func (b *Buffer) Channels() int { return b.channels }

func (b *Buffer) checkBounds(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic("buffer: index out of range")
	}
}

func (b *Buffer) index(x, y int) int {
	return (x + y*b.width) * b.channels
}

// Get writes the element at (x, y) into dst, which must have at least
// b.Channels() entries.
func (b *Buffer) Get(x, y int, dst []float32) {
	b.checkBounds(x, y)
	copy(dst, b.data[b.index(x, y):b.index(x, y)+b.channels])
}

// Set overwrites the element at (x, y) with elm, which must have at least
// b.Channels() entries.
func (b *Buffer) Set(x, y int, elm []float32) {
	b.checkBounds(x, y)
	copy(b.data[b.index(x, y):b.index(x, y)+b.channels], elm)
}

// Clear sets every element in the buffer to value, which must have at
// least b.Channels() entries.
func (b *Buffer) Clear(value []float32) {
	for i := 0; i < b.width*b.height; i++ {
		copy(b.data[i*b.channels:(i+1)*b.channels], value)
	}
}

// Resize reallocates the buffer's storage to the given dimensions. The
// channel count is unchanged and the new contents are undefined (the
// storage is freshly allocated, not copied from the old contents).
func (b *Buffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("buffer: width and height must be positive")
	}
	b.data = make([]float32, width*height*b.channels)
	b.width = width
	b.height = height
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpf(a, b, t float32) float32 { return a + t*(b-a) }

// SampleNearest samples the buffer at normalized coordinates (u, v),
// clamped to [0,1], and writes the nearest element into dst. u and v must
// be within [-0.5, 1.5] (the caller must already be "near" the buffer).
func (b *Buffer) SampleNearest(u, v float32, dst []float32) {
	if u < -0.5 || u > 1.5 || v < -0.5 || v > 1.5 {
		panic("buffer: sample coordinate out of range")
	}
	u = clampf(u, 0, 1)
	v = clampf(v, 0, 1)

	x := clampi(int(u*float32(b.width)), 0, b.width-1)
	y := clampi(int(v*float32(b.height)), 0, b.height-1)
	b.Get(x, y, dst)
}

// SampleBilinear samples the 2x2 neighborhood around (u*W, v*H) and writes
// the equally-weighted (fixed 0.5/0.5) average of the four neighbors into
// dst. u and v are clamped to [0,1] after a [-0.5, 1.5] range check. This
// is a simplified box-filter bilinear, not one weighted by the fractional
// sample position.
func (b *Buffer) SampleBilinear(u, v float32, dst []float32) {
	if u < -0.5 || u > 1.5 || v < -0.5 || v > 1.5 {
		panic("buffer: sample coordinate out of range")
	}
	u = clampf(u, 0, 1)
	v = clampf(v, 0, 1)

	x := clampi(int(u*float32(b.width)), 1, b.width-1)
	y := clampi(int(v*float32(b.height)), 1, b.height-1)

	tl := make([]float32, b.channels)
	tr := make([]float32, b.channels)
	bl := make([]float32, b.channels)
	br := make([]float32, b.channels)

	b.Get(x-1, y, tl)
	b.Get(x, y, tr)
	b.Get(x-1, y-1, bl)
	b.Get(x, y-1, br)

	for i := 0; i < b.channels; i++ {
		top := lerpf(tl[i], tr[i], 0.5)
		bottom := lerpf(bl[i], br[i], 0.5)
		dst[i] = lerpf(top, bottom, 0.5)
	}
}

// Blit copies src into dst's rectangle
// [xOffset, xOffset+dst.Width()*widthFraction) x
// [yOffset, yOffset+dst.Height()*heightFraction), clipped to dst's bounds.
// Each destination pixel, centered at (x+0.5, y+0.5), is mapped back
// through inverse scaling to a source uv and read with bilinear sampling.
// dst.Channels() must be <= src.Channels(); extra source channels are
// dropped.
func Blit(dst, src *Buffer, xOffset, yOffset, widthFraction, heightFraction float32) {
	if widthFraction <= 0 || heightFraction <= 0 {
		panic("buffer: blit fraction must be positive")
	}
	if dst.channels > src.channels {
		panic("buffer: blit destination channel count exceeds source")
	}

	right := xOffset + float32(dst.width)*widthFraction
	top := yOffset + float32(dst.height)*heightFraction

	x0 := clampi(int(maxf(xOffset, 0)), 0, dst.width)
	y0 := clampi(int(maxf(yOffset, 0)), 0, dst.height)
	x1 := clampi(int(minf(right, float32(dst.width))), 0, dst.width)
	y1 := clampi(int(minf(top, float32(dst.height))), 0, dst.height)

	xScale := float32(src.width) / float32(dst.width) / widthFraction
	yScale := float32(src.height) / float32(dst.height) / heightFraction

	sample := make([]float32, src.channels)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			su := (float32(x) + 0.5 - xOffset) * xScale / float32(src.width)
			sv := (float32(y) + 0.5 - yOffset) * yScale / float32(src.height)
			src.SampleBilinear(su, sv, sample)
			dst.Set(x, y, sample[:dst.channels])
		}
	}
}

// MapSamplePoint remaps a 2D point in src's coordinate space to the
// corresponding point in dst's coordinate space by linear axis scaling.
func MapSamplePoint(point [2]float32, src, dst *Buffer) [2]float32 {
	xScale := float32(dst.width) / float32(src.width)
	yScale := float32(dst.height) / float32(src.height)
	return [2]float32{point[0] * xScale, point[1] * yScale}
}

func maxf(a, b float32) float32 { return math32.Max(a, b) }
func minf(a, b float32) float32 { return math32.Min(a, b) }
