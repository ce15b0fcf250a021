package app

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rook-computer/colorwheel/internal/render"
	"github.com/rook-computer/colorwheel/internal/web"
	"github.com/rook-computer/colorwheel/internal/wheel"
)

type App struct {
	Wheel   wheel.Config
	Options wheel.Options
	// Render and Web are optional long-running surfaces used by Start.
	Render render.Renderer
	Web    web.Server
	Logger Logger

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(cfg wheel.Config, opts wheel.Options) *App {
	return &App{Wheel: cfg, Options: opts, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Scene validates the configuration and lays out the wheel.
func (app *App) Scene() (wheel.Scene, error) {
	scene, err := wheel.Render(app.Wheel, app.Options)
	if err != nil {
		return wheel.Scene{}, err
	}
	app.Logger.Infof("wheel", "scene %dx%d, %d rings, %d arcs", scene.Width, scene.Height, len(scene.Rings), scene.ArcCount())
	return scene, nil
}

// Export renders the wheel once and writes it to w.
func (app *App) Export(w io.Writer, format render.Format) error {
	scene, err := app.Scene()
	if err != nil {
		app.Logger.Errorf("wheel", "render failed: %v", err)
		return err
	}
	if err := render.Write(w, format, scene); err != nil {
		app.Logger.Errorf("export", "%s export failed: %v", format, err)
		return err
	}
	app.Logger.Infof("export", "wrote %s", format)
	return nil
}

// Exit requests Start to return with err.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start shows the wheel on the renderer and starts the web server, then
// blocks until ctx is done or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Render == nil && app.Web == nil {
		return fmt.Errorf("nothing to run: no renderer or web server configured")
	}

	if app.Render != nil {
		if fb, ok := app.Render.(*render.FBRenderer); ok && fb.Logger == nil {
			fb.Logger = app.Logger
		}
		scene, err := app.Scene()
		if err != nil {
			return err
		}
		if err := app.Render.Start(ctx); err != nil {
			app.Logger.Errorf("app", "renderer start error: %v", err)
			return err
		}
		defer app.Render.Stop()
		if err := app.Render.Show(scene); err != nil {
			app.Logger.Errorf("app", "renderer show error: %v", err)
			return err
		}
	}

	if app.Web != nil {
		if err := app.Web.Start(ctx); err != nil {
			app.Logger.Errorf("app", "web start error: %v", err)
			return err
		}
		defer app.Web.Stop()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-app.exitCh:
		return err
	}
}
