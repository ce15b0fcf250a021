package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/colorwheel/internal/render/layout"
	"github.com/rook-computer/colorwheel/internal/wheel"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const defaultFBDevice = "/dev/fb0"

// FBRenderer shows scenes on a Linux framebuffer. The wheel is rasterized at
// its logical size and scaled nearest-neighbor into the device, letterboxed
// to keep its aspect ratio.
type FBRenderer struct {
	Device string
	// QRPayload, when set, is drawn as a QR code in the bottom-right corner.
	QRPayload string
	Logger    Logger

	mu       sync.Mutex
	fbDev    *fb.Device
	fontFace font.Face
	running  atomic.Bool
}

func NewFBRenderer(device string) *FBRenderer { return &FBRenderer{Device: device} }

func (r *FBRenderer) Start(ctx context.Context) error {
	device := r.Device
	if device == "" {
		device = defaultFBDevice
	}
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.fbDev = dev
	r.mu.Unlock()
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", device, bounds.Dx(), bounds.Dy())
	}

	face, ferr := LabelFace(wheel.DefaultConfig().FontSize)
	if ferr != nil && r.Logger != nil {
		r.Logger.Errorf("fb", "label font failed, using basicfont: %v", ferr)
	}
	r.fontFace = face

	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// Show draws scene on the device.
func (r *FBRenderer) Show(scene wheel.Scene) error {
	if !r.running.Load() {
		return errors.New("framebuffer renderer not started")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fbDev == nil {
		return errors.New("framebuffer closed")
	}

	var qr image.Image
	if r.QRPayload != "" {
		img, err := GenerateQRCodeImage(r.QRPayload, QRCodeSizePx)
		if err != nil {
			if r.Logger != nil {
				r.Logger.Errorf("fb", "qr code failed: %v", err)
			}
		} else {
			qr = img
		}
	}

	frame := composeFrame(scene, r.fbDev.Bounds(), r.fontFace, qr)
	blitToFB(r.fbDev, frame)
	if r.Logger != nil {
		r.Logger.Infof("fb", "frame shown, %d arcs", scene.ArcCount())
	}
	return nil
}

// composeFrame builds a device-sized frame: letterbox fill, the scaled wheel,
// and the optional QR overlay.
func composeFrame(scene wheel.Scene, bounds image.Rectangle, face font.Face, qr image.Image) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: Letterbox}, image.Point{}, draw.Src)

	canvas := Rasterize(scene, face)
	target := layout.FitCentered(bounds, canvas.Bounds().Dx(), canvas.Bounds().Dy())
	if !target.Empty() {
		nnScale(frame, target, canvas)
	}

	if qr != nil {
		rect := layout.AnchorBottomRight(layout.Inset(bounds, QRMarginPx), QRCodeSizePx, QRCodeSizePx)
		if !rect.Empty() {
			nnScale(frame, rect, qr)
		}
	}
	return frame
}

// Helper: nearest-neighbor scale of src into dst rectangle, compositing
// over what is already there.
func nnScale(dst draw.Image, rect image.Rectangle, src image.Image) {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	dstWidth := rect.Dx()
	dstHeight := rect.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := src.Bounds().Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Bounds().Min.X + (x*srcWidth)/dstWidth
			sr, sg, sb, sa := src.At(sx, sy).RGBA()
			if sa == 0 {
				continue
			}
			px, py := rect.Min.X+x, rect.Min.Y+y
			if sa == 0xffff {
				dst.Set(px, py, color.RGBA64{R: uint16(sr), G: uint16(sg), B: uint16(sb), A: 0xffff})
				continue
			}
			dr, dg, db, da := dst.At(px, py).RGBA()
			inv := 0xffff - sa
			dst.Set(px, py, color.RGBA64{
				R: uint16(sr + dr*inv/0xffff),
				G: uint16(sg + dg*inv/0xffff),
				B: uint16(sb + db*inv/0xffff),
				A: uint16(sa + da*inv/0xffff),
			})
		}
	}
}

// Helper: copy a device-sized frame to the framebuffer, forcing opaque pixels.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	if dev == nil {
		return
	}
	bounds := dev.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
