// Command chaikin runs the corner-cutting curve visualizer.
//
// A real window backend plugs in as an app.Surface. Until one is
// compiled in, the command drives a scripted demo against an
// offscreen surface and prints the playback progress.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-chaikin/chaikin/cmd/chaikin/internal/config"
	"github.com/go-chaikin/chaikin/pkg/app"
)

func main() {
	dir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "chaikin: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	application, err := app.New(resolved.Options)
	if err != nil {
		return err
	}

	unsubscribe := application.AddStepListener(func(step int) {
		fmt.Printf("animation step: %d\n", step)
	})
	defer unsubscribe()

	return application.Run(newDemoSurface(application))
}
