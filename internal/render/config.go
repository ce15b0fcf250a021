package render

import "image/color"

// Global render configuration for the framebuffer surface.
var (
	// Fill around the wheel when the device aspect ratio differs.
	Letterbox = color.RGBA{R: 0x1c, G: 0x1b, B: 0x17, A: 0xFF} // #1c1b17

	// QR overlay size and its margin from the bottom-right corner, in device pixels.
	QRCodeSizePx = 192
	QRMarginPx   = 24

	// Flattening tolerance for arc outlines, in canvas pixels.
	FlattenTolerance = 0.1
)
