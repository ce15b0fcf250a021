package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/rook-computer/colorwheel/internal/wheel"
	"golang.org/x/image/font/basicfont"
)

func TestComposeFrameLetterboxesWheel(t *testing.T) {
	scene := defaultScene(t, 400, 400)
	bounds := image.Rect(0, 0, 800, 400)
	frame := composeFrame(scene, bounds, basicfont.Face7x13, nil)

	if frame.Bounds() != bounds {
		t.Fatalf("frame bounds = %v", frame.Bounds())
	}
	expectRGB(t, frame, 10, 200, Letterbox)
	expectRGB(t, frame, 790, 10, Letterbox)
	// Wheel canvas occupies the centered square at x=200..600.
	expectRGB(t, frame, 230, 30, color.RGBA{R: 0xe4, G: 0xe3, B: 0xd8, A: 0xff})
}

func TestComposeFrameDrawsQRCode(t *testing.T) {
	scene := defaultScene(t, 400, 400)
	bounds := image.Rect(0, 0, 1000, 400)
	qr, err := GenerateQRCodeImage("http://127.0.0.1:8080/", QRCodeSizePx)
	if err != nil || qr == nil {
		t.Fatalf("GenerateQRCodeImage: %v", err)
	}
	frame := composeFrame(scene, bounds, nil, qr)

	// Top-left of the QR overlay is its white quiet zone.
	x := bounds.Max.X - QRMarginPx - QRCodeSizePx
	y := bounds.Max.Y - QRMarginPx - QRCodeSizePx
	expectRGB(t, frame, x+1, y+1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	// Outside the overlay the letterbox is untouched.
	expectRGB(t, frame, x-2, y-2, Letterbox)
}

func TestGenerateQRCodeImageEmptyPayload(t *testing.T) {
	img, err := GenerateQRCodeImage("", 100)
	if img != nil || err != nil {
		t.Fatalf("empty payload should yield (nil, nil), got (%v, %v)", img, err)
	}
	data, err := EncodeQRCodePNG("colorwheel", 0)
	if err != nil || len(data) == 0 {
		t.Fatalf("EncodeQRCodePNG: %d bytes, %v", len(data), err)
	}
}

func TestFBRendererShowRequiresStart(t *testing.T) {
	r := NewFBRenderer("/dev/null-fb")
	if err := r.Show(wheel.Scene{}); err == nil {
		t.Fatalf("Show before Start should fail")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
