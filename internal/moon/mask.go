package moon

import "math"

// Bitmap is a binary silhouette used for pixel-level overlap tests.
// Coordinates are local to the bitmap with (0,0) at the top-left and y
// growing downward, matching world pixel space.
type Bitmap struct {
	w, h int
	bits []bool
}

// NewBitmap creates an empty bitmap of the given size.
func NewBitmap(w, h int) *Bitmap {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Bitmap{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.w }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.h }

// Set marks the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (b *Bitmap) Set(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.bits[y*b.w+x] = true
}

// At reports whether the pixel at (x, y) is set.
// Out-of-bounds coordinates read as unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.bits[y*b.w+x]
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Rotate returns a new bitmap rotated by the given angle in degrees about the
// center. The result is sized to the rotated bounding box, like a sprite
// rotation: positive angles turn the craft's nose toward negative x.
func (b *Bitmap) Rotate(deg float64) *Bitmap {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	absSin, absCos := math.Abs(sin), math.Abs(cos)

	outW := int(math.Ceil(float64(b.w)*absCos + float64(b.h)*absSin))
	outH := int(math.Ceil(float64(b.w)*absSin + float64(b.h)*absCos))
	out := NewBitmap(outW, outH)

	cx := float64(b.w) / 2
	cy := float64(b.h) / 2
	ocx := float64(outW) / 2
	ocy := float64(outH) / 2

	// Inverse mapping: sample the source pixel for every destination pixel
	// so the rotated silhouette has no holes.
	for oy := 0; oy < outH; oy++ {
		for ox := 0; ox < outW; ox++ {
			vx := float64(ox) + 0.5 - ocx
			vy := float64(oy) + 0.5 - ocy
			sx := cos*vx - sin*vy + cx
			sy := sin*vx + cos*vy + cy
			if b.At(int(math.Floor(sx)), int(math.Floor(sy))) {
				out.Set(ox, oy)
			}
		}
	}
	return out
}

// Overlap returns the first pixel (in this bitmap's coordinate space, scanned
// row-major) where this bitmap and other both have a set pixel, with other
// placed at offset (dx, dy) relative to this bitmap's origin.
func (b *Bitmap) Overlap(other *Bitmap, dx, dy int) (int, int, bool) {
	x0 := Maxi(0, dx)
	y0 := Maxi(0, dy)
	x1 := Mini(b.w, dx+other.w)
	y1 := Mini(b.h, dy+other.h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if b.bits[y*b.w+x] && other.At(x-dx, y-dy) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Circle returns a filled circular bitmap of the given radius in pixels.
func Circle(radius float64) *Bitmap {
	if radius < 1 {
		radius = 1
	}
	size := int(math.Ceil(radius*2)) + 2
	b := NewBitmap(size, size)
	c := float64(size) / 2
	r2 := radius * radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy <= r2 {
				b.Set(x, y)
			}
		}
	}
	return b
}

// LanderShape builds the upright craft silhouette: ascent cabin on top of a
// wider descent stage with two splayed legs reaching the base line.
func LanderShape(w, h int) *Bitmap {
	b := NewBitmap(w, h)

	cabinTop := h / 8
	cabinBottom := h * 2 / 5
	cabinLeft := w * 3 / 10
	cabinRight := w * 7 / 10
	for y := cabinTop; y < cabinBottom; y++ {
		for x := cabinLeft; x < cabinRight; x++ {
			b.Set(x, y)
		}
	}

	stageBottom := h * 3 / 4
	stageLeft := w / 5
	stageRight := w * 4 / 5
	for y := cabinBottom; y < stageBottom; y++ {
		for x := stageLeft; x < stageRight; x++ {
			b.Set(x, y)
		}
	}

	// Legs: thick diagonals from the stage corners to the footpads.
	legSpan := h - 1 - stageBottom
	for i := 0; i <= legSpan; i++ {
		t := float64(i) / float64(Maxi(legSpan, 1))
		ly := stageBottom + i
		lx := int(float64(stageLeft) - t*float64(stageLeft-1))
		rx := int(float64(stageRight-1) + t*float64(w-stageRight))
		for d := 0; d < 2; d++ {
			b.Set(lx+d, ly)
			b.Set(rx-d, ly)
		}
	}
	// Footpads
	for d := 0; d < 4; d++ {
		b.Set(d, h-1)
		b.Set(w-1-d, h-1)
	}
	return b
}

// Mini returns the smaller of two integers.
func Mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Maxi returns the larger of two integers.
func Maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
