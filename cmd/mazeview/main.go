// Package main is the entry point for mazeview, which checks and draws mazefiles.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samdwyer/penomaze/internal/config"
	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/mazedata"
	"github.com/samdwyer/penomaze/internal/mazefile"
	"github.com/samdwyer/penomaze/internal/telemetry"
	"github.com/samdwyer/penomaze/internal/ui"
	"github.com/samdwyer/penomaze/internal/viewer"
)

// errInconsistent is returned by run when -check finds disagreeing walls.
var errInconsistent = errors.New("maze walls are inconsistent")

// options holds the parsed command line.
type options struct {
	file  string
	name  string
	list  bool
	check bool
	view  bool
}

func main() {
	os.Exit(mainExit())
}

// mainExit runs mazeview and returns the process exit status.
// Kept apart from main so deferred telemetry shutdown runs before exit.
func mainExit() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 2
	}

	opts, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		return 2
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			EndpointURL: cfg.TelemetryEndpoint(),
			Headers:     cfg.TelemetryHeaders(),
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, opts, cfg, os.Stdout); err != nil {
		log.Printf("mazeview: %v", err)
		return 1
	}
	return 0
}

// parseFlags reads the command line, using the configured mazefile as default.
func parseFlags(args []string, cfg config.Config) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mazeview", flag.ContinueOnError)
	fs.StringVar(&opts.file, "file", cfg.Mazefile, "path of the mazefile to load")
	fs.StringVar(&opts.name, "maze", "", "ID of a bundled mazefile to load (see -list)")
	fs.BoolVar(&opts.list, "list", false, "list the bundled mazefiles and exit")
	fs.BoolVar(&opts.check, "check", false, "fail when neighbouring tiles disagree on a wall")
	fs.BoolVar(&opts.view, "view", false, "show the maze in an interactive terminal view")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// run executes a single mazeview invocation, writing reports to out.
func run(ctx context.Context, opts options, cfg config.Config, out io.Writer) error {
	if opts.list {
		return listMazes(out)
	}

	title, lines, err := loadLines(opts)
	if err != nil {
		return err
	}

	m, err := mazefile.Build(ctx, lines)
	if err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}

	if opts.check {
		incs := maze.Inconsistencies(m)
		for _, inc := range incs {
			fmt.Fprintf(out, "%s: %s\n", title, inc)
		}
		if len(incs) > 0 {
			return fmt.Errorf("%s: %w (%d edges)", title, errInconsistent, len(incs))
		}
		fmt.Fprintf(out, "%s: %d tiles, walls consistent\n", title, m.Len())
		return nil
	}

	if opts.view {
		palette, err := ui.NewPalette(cfg.WallColor, cfg.AlertColor)
		if err != nil {
			return err
		}
		v, err := viewer.New(m, title, palette)
		if err != nil {
			return err
		}
		return v.Run(ctx)
	}

	return maze.AsciiArtRenderer{}.Render(m, out)
}

// loadLines returns a display title and the lines of the selected mazefile.
func loadLines(opts options) (string, []string, error) {
	if opts.name != "" {
		def := mazedata.MustLoadRegistry().GetByID(opts.name)
		if def == nil {
			return "", nil, fmt.Errorf("unknown bundled maze %q", opts.name)
		}
		lines, err := def.Lines()
		return def.ID, lines, err
	}

	if opts.file == "" {
		return "", nil, errors.New("no mazefile given, use -file, -maze or " + config.EnvMazefile)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	lines, err := mazefile.ReadLines(f)
	return opts.file, lines, err
}

// listMazes writes the bundled mazefiles, one per line.
func listMazes(out io.Writer) error {
	registry, err := mazedata.LoadRegistry()
	if err != nil {
		return err
	}
	for _, def := range registry.All() {
		fmt.Fprintf(out, "%-12s %s\n", def.ID, def.Description)
	}
	return nil
}
