package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/auraflow/icongen/internal/render"
)

// fallbackAdvice points at the browser-based generator shipped alongside
// the web app, for environments where this program cannot draw.
const fallbackAdvice = "Please open generate-pwa-icons.html in your browser to generate icons manually."

// App runs the icon generation sequence: one PNG per configured size,
// written to OutDir, with human-readable progress on Out.
type App struct {
	Render render.Renderer
	Logger Logger

	// OutDir is where icon files are written; empty means the current
	// working directory.
	OutDir string

	// Sizes overrides the generated edge lengths; nil means the manifest
	// sizes (192 and 512).
	Sizes []int

	// Out receives progress output; nil means os.Stdout.
	Out io.Writer
}

func New(renderer render.Renderer) *App {
	return &App{Render: renderer, Logger: NoopLogger{}}
}

// Run generates every configured icon in order. It returns nil on success,
// render.ErrUnavailable when the drawing backend cannot be brought up (the
// caller should treat this as a graceful skip), and any other error on
// generation failure. Fallback guidance is printed on both failure paths.
func (app *App) Run(ctx context.Context) error {
	out := app.out()
	fmt.Fprintln(out, "Generating PWA icons for AuraFlow...")
	fmt.Fprintln(out)

	if err := app.Render.Start(ctx); err != nil {
		if errors.Is(err, render.ErrUnavailable) {
			app.Logger.Errorf("app", "drawing backend unavailable: %v", err)
			fmt.Fprintln(out, "Image drawing support not available.")
			fmt.Fprintln(out, fallbackAdvice)
			return err
		}
		app.Logger.Errorf("app", "renderer start error: %v", err)
		app.printFailure(err)
		return err
	}
	defer app.Render.Stop()

	for _, size := range app.sizes() {
		if err := app.generate(size); err != nil {
			app.Logger.Errorf("app", "generate %d failed: %v", size, err)
			app.printFailure(err)
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ All PWA icons generated successfully!")
	fmt.Fprintln(out, "Icons meet PWA maskable requirements with 20% safe zone padding.")
	app.Logger.Infof("app", "all icons generated")
	return nil
}

// generate renders and saves a single icon-{size}.png.
func (app *App) generate(size int) error {
	out := app.out()
	fmt.Fprintf(out, "Generating %dx%d icon...\n", size, size)

	img, err := app.Render.RenderIcon(size)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("icon-%d.png", size)
	if err := app.Render.SaveIcon(img, filepath.Join(app.OutDir, name)); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Created %s\n", name)
	return nil
}

func (app *App) printFailure(err error) {
	out := app.out()
	fmt.Fprintf(out, "Error generating icons: %v\n", err)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fallback: "+fallbackAdvice)
}

func (app *App) out() io.Writer {
	if app.Out != nil {
		return app.Out
	}
	return os.Stdout
}

func (app *App) sizes() []int {
	if len(app.Sizes) > 0 {
		return app.Sizes
	}
	return render.IconSizes
}
