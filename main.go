package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/auraflow/icongen/internal/app"
	"github.com/auraflow/icongen/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug logging to ./icongen-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONGEN_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack
	// traces) to a file so failures are diagnosable when run from build
	// scripts that swallow console output.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ICONGEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./icongen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewDebugLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	renderer := render.NewIconRenderer()
	renderer.Logger = logger

	generator := app.New(renderer)
	generator.Logger = logger

	err := generator.Run(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, render.ErrUnavailable):
		// Missing drawing support is a skippable condition, not a failure;
		// the manual fallback has already been suggested.
		return 0
	default:
		return 1
	}
}
