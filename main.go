package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/colorwheel/internal/app"
	"github.com/rook-computer/colorwheel/internal/render"
	"github.com/rook-computer/colorwheel/internal/system"
	"github.com/rook-computer/colorwheel/internal/web"
	"github.com/rook-computer/colorwheel/internal/wheel"
)

const envStdioLog = "COLORWHEEL_STDIO_LOG"

func main() {
	os.Exit(run())
}

func run() int {
	serverDefaults, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "server config error:", err)
		return 2
	}
	defaults := wheel.DefaultOptions()

	// Flags
	width := flag.Int("width", defaults.Width, "canvas width in pixels")
	height := flag.Int("height", defaults.Height, "canvas height in pixels")
	events := flag.Bool("events", defaults.Events, "mark the output as accepting pointer events (currently informational)")
	format := flag.String("format", string(render.FormatSVG), "export format: svg | png")
	output := flag.String("o", "", "write the export to this file instead of stdout")
	listen := flag.String("serve", serverDefaults.ListenAddr, "serve the wheel over HTTP on this address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "enable permissive CORS for UI development; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve the UI from this directory instead of the embedded page")
	fbDevice := flag.String("fb", "", "show the wheel on this framebuffer device (e.g. /dev/fb0)")
	debug := flag.Bool("debug", false, "enable debug logging to ./colorwheel-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./colorwheel-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	a := app.New(wheel.DefaultConfig(), wheel.Options{Width: *width, Height: *height, Events: *events})
	a.Logger = logger

	if *listen == "" && *fbDevice == "" {
		return export(a, *format, *output)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *web.HTTPServer
	if *listen != "" {
		server = web.NewHTTPServer(web.ServerConfig{ListenAddr: *listen, DevMode: *devMode})
		server.StaticDir = *staticDir
		server.Logger = logger
		// Bind before the framebuffer comes up so the QR code can name the port.
		if err := server.Start(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "server start error:", err)
			return 1
		}
		defer server.Stop()
		fmt.Println("colorwheel listening on", server.ListenAddr())
		a.Web = server
	}
	if *fbDevice != "" {
		fb := render.NewFBRenderer(*fbDevice)
		fb.Logger = logger
		if server != nil {
			fb.QRPayload = "http://" + displayHost(ctx, server.ListenAddr(), system.InterfaceNetInfo{}) + "/"
		}
		a.Render = fb
	}

	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "colorwheel error:", err)
		return 1
	}
	return 0
}

func export(a *app.App, rawFormat, path string) int {
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Render fully before touching the output so a rejected export leaves
	// no file behind.
	var buf bytes.Buffer
	if err := a.Export(&buf, format); err != nil {
		fmt.Fprintln(os.Stderr, "export error:", err)
		if errors.Is(err, wheel.ErrInvalidDimensions) || errors.Is(err, wheel.ErrInvalidConfig) {
			return 2
		}
		return 1
	}

	if path == "" {
		if _, err := buf.WriteTo(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "write output:", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		return 1
	}
	return 0
}

// displayHost turns a bound address into something a phone on the same
// network can reach. Unspecified hosts are replaced by the LAN address from
// ni, or 127.0.0.1 when the host has none.
func displayHost(ctx context.Context, addr string, ni system.NetInfo) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host != "" && !net.ParseIP(host).IsUnspecified() {
		return addr
	}
	ip, err := ni.IP(ctx)
	if err != nil || ip == "" {
		ip = "127.0.0.1"
	}
	return net.JoinHostPort(ip, port)
}
