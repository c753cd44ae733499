package moon

import "testing"

func TestBitmapSetAt(t *testing.T) {
	b := NewBitmap(5, 3)

	b.Set(2, 1)
	if !b.At(2, 1) {
		t.Error("At(2,1) = false after Set")
	}
	if b.At(0, 0) {
		t.Error("unset pixel reads as set")
	}

	// Out-of-bounds access is safe and reads unset
	b.Set(-1, 0)
	b.Set(5, 0)
	if b.At(-1, 0) || b.At(5, 0) || b.At(0, 3) {
		t.Error("out-of-bounds At should be false")
	}
	if b.Count() != 1 {
		t.Errorf("Count = %d, want 1", b.Count())
	}
}

func TestRotateIdentity(t *testing.T) {
	b := LanderShape(44, 56)
	r := b.Rotate(0)

	if r.Width() != b.Width() || r.Height() != b.Height() {
		t.Fatalf("Rotate(0) changed size: %dx%d -> %dx%d",
			b.Width(), b.Height(), r.Width(), r.Height())
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != r.At(x, y) {
				t.Fatalf("Rotate(0) changed pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	b := LanderShape(44, 56)
	r := b.Rotate(90)

	if r.Width() != b.Height() || r.Height() != b.Width() {
		t.Errorf("Rotate(90) size %dx%d, want %dx%d",
			r.Width(), r.Height(), b.Height(), b.Width())
	}

	// A quarter turn preserves the silhouette area up to raster error.
	want := b.Count()
	got := r.Count()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > want/10 {
		t.Errorf("Rotate(90) count %d, want about %d", got, want)
	}
}

func TestRotateBoundingBoxGrows(t *testing.T) {
	b := LanderShape(44, 56)
	r := b.Rotate(45)

	if r.Width() <= b.Width() || r.Height() <= b.Height() {
		t.Errorf("Rotate(45) box %dx%d should exceed %dx%d",
			r.Width(), r.Height(), b.Width(), b.Height())
	}
}

func TestOverlapFirstPixel(t *testing.T) {
	a := NewBitmap(6, 6)
	a.Set(1, 1)
	a.Set(4, 4)

	other := NewBitmap(6, 6)
	other.Set(1, 1)
	other.Set(4, 4)

	// Aligned: the row-major first common pixel wins
	x, y, ok := a.Overlap(other, 0, 0)
	if !ok || x != 1 || y != 1 {
		t.Errorf("Overlap = (%d,%d,%v), want (1,1,true)", x, y, ok)
	}

	// Shift the other bitmap so only (4,4) coincides with its (1,1)
	x, y, ok = a.Overlap(other, 3, 3)
	if !ok || x != 4 || y != 4 {
		t.Errorf("shifted Overlap = (%d,%d,%v), want (4,4,true)", x, y, ok)
	}

	// Disjoint placement
	if _, _, ok := a.Overlap(other, 10, 10); ok {
		t.Error("disjoint bitmaps should not overlap")
	}
}

func TestCircle(t *testing.T) {
	c := Circle(5)

	mid := c.Width() / 2
	if !c.At(mid, mid) {
		t.Error("circle center should be set")
	}
	if c.At(0, 0) {
		t.Error("circle corner should be empty")
	}
	if c.Count() == 0 {
		t.Error("circle has no pixels")
	}
}

func TestLanderShape(t *testing.T) {
	b := LanderShape(44, 56)

	if b.Count() == 0 {
		t.Fatal("empty silhouette")
	}
	// Footpads anchor the base line
	if !b.At(0, 55) || !b.At(43, 55) {
		t.Error("footpads missing at the base corners")
	}
	// The top row is empty (cabin starts below)
	for x := 0; x < 44; x++ {
		if b.At(x, 0) {
			t.Errorf("top row pixel (%d,0) should be empty", x)
		}
	}
	// The descent stage body is filled
	if !b.At(22, 30) {
		t.Error("stage center should be set")
	}
}
