package layout

import (
	"image"
	"testing"
)

func TestFitCentered(t *testing.T) {
	cases := []struct {
		name   string
		rect   image.Rectangle
		w, h   int
		expect image.Rectangle
	}{
		{"wide device", image.Rect(0, 0, 800, 400), 400, 400, image.Rect(200, 0, 600, 400)},
		{"tall device", image.Rect(0, 0, 300, 900), 400, 400, image.Rect(0, 300, 300, 600)},
		{"same aspect", image.Rect(10, 10, 210, 110), 400, 200, image.Rect(10, 10, 210, 110)},
		{"degenerate source", image.Rect(0, 0, 100, 100), 0, 50, image.Rect(0, 0, 0, 0)},
	}
	for _, c := range cases {
		if got := FitCentered(c.rect, c.w, c.h); got != c.expect {
			t.Fatalf("%s: FitCentered = %v, want %v", c.name, got, c.expect)
		}
	}
}

func TestAnchorBottomRightClamps(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	if got := AnchorBottomRight(rect, 20, 10); got != image.Rect(80, 40, 100, 50) {
		t.Fatalf("AnchorBottomRight = %v", got)
	}
	if got := AnchorBottomRight(rect, 500, 500); got != rect {
		t.Fatalf("oversized anchor = %v", got)
	}
}

func TestInsetNormalizes(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 100, 100), 10); got != image.Rect(10, 10, 90, 90) {
		t.Fatalf("Inset = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 10, 10), 8); got != image.Rect(2, 2, 8, 8) {
		t.Fatalf("over-inset = %v", got)
	}
}
