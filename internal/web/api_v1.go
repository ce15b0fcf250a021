package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rook-computer/colorwheel/internal/render"
	"github.com/rook-computer/colorwheel/internal/wheel"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type arcInfo struct {
	Index      int     `json:"index"`
	Fraction   float64 `json:"fraction"`
	Hex        string  `json:"hex"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

type ringInfo struct {
	Index       int     `json:"index"`
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`
	Opacity     float64 `json:"opacity"`
}

type paletteResponse struct {
	Arcs  []arcInfo  `json:"arcs"`
	Rings []ringInfo `json:"rings"`
}

const qrCodeSizePx = 256

func apiV1Router(cfg APIV1Config) http.Handler {
	mux := http.NewServeMux()

	// The layout is fixed for the lifetime of the router.
	layout, layoutErr := wheel.NewLayout(cfg.Wheel)
	if layoutErr != nil && cfg.Logger != nil {
		cfg.Logger.Errorf("web", "wheel layout: %v", layoutErr)
	}
	withLayout := func(next func(w http.ResponseWriter, r *http.Request, layout wheel.Layout)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
				return
			}
			if layoutErr != nil {
				writeAPIError(w, http.StatusInternalServerError, "invalid_config", layoutErr.Error())
				return
			}
			next(w, r, layout)
		}
	}

	mux.HandleFunc("/wheel.svg", withLayout(func(w http.ResponseWriter, r *http.Request, layout wheel.Layout) {
		handleWheel(w, r, layout, render.FormatSVG)
	}))
	mux.HandleFunc("/wheel.png", withLayout(func(w http.ResponseWriter, r *http.Request, layout wheel.Layout) {
		handleWheel(w, r, layout, render.FormatPNG)
	}))
	mux.HandleFunc("/palette", withLayout(handlePalette))
	mux.HandleFunc("/qr.png", withLayout(handleQRCode))
	return mux
}

func handleWheel(w http.ResponseWriter, r *http.Request, layout wheel.Layout, format render.Format) {
	opts, err := parseOptions(r)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	scene, err := layout.Render(opts)
	if err != nil {
		if errors.Is(err, wheel.ErrInvalidDimensions) {
			writeAPIError(w, http.StatusBadRequest, "invalid_dimensions", err.Error())
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, scene); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func handlePalette(w http.ResponseWriter, r *http.Request, layout wheel.Layout) {
	resp := paletteResponse{
		Arcs:  make([]arcInfo, 0, len(layout.Slices)),
		Rings: make([]ringInfo, 0, len(layout.Rings)),
	}
	for i, slice := range layout.Slices {
		resp.Arcs = append(resp.Arcs, arcInfo{
			Index:      i,
			Fraction:   float64(i) / float64(len(layout.Slices)),
			Hex:        layout.Colors.Hex(i),
			StartAngle: slice.Start,
			EndAngle:   slice.End,
		})
	}
	for _, ring := range layout.Rings {
		resp.Rings = append(resp.Rings, ringInfo{
			Index:       ring.Index,
			InnerRadius: ring.InnerRadius,
			OuterRadius: ring.OuterRadius,
			Opacity:     ring.Opacity,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleQRCode encodes the SVG endpoint of the host the request came in on.
func handleQRCode(w http.ResponseWriter, r *http.Request, _ wheel.Layout) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	payload := fmt.Sprintf("%s://%s/api/v1/wheel.svg", scheme, r.Host)
	data, err := render.EncodeQRCodePNG(payload, qrCodeSizePx)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseOptions reads width, height and events from the query string,
// falling back to wheel.DefaultOptions for missing values.
func parseOptions(r *http.Request) (wheel.Options, error) {
	opts := wheel.DefaultOptions()
	query := r.URL.Query()
	if raw := query.Get("width"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("width must be an integer (got %q)", raw)
		}
		opts.Width = v
	}
	if raw := query.Get("height"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("height must be an integer (got %q)", raw)
		}
		opts.Height = v
	}
	if raw := query.Get("events"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("events must be a boolean (got %q)", raw)
		}
		opts.Events = v
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
