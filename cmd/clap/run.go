package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	clap "github.com/grindlemire/go-clap"
	"github.com/grindlemire/go-clap/internal/debug"
	"github.com/grindlemire/go-clap/internal/term"
)

const (
	patternProps   = "props"
	patternContext = "context"
)

// config is the parsed run command line.
type config struct {
	pattern string
	max     int
	count   int
	total   int
	clicked bool
	fps     int
}

func parseRunFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.StringVar(&cfg.pattern, "pattern", patternProps, "How subcomponents are wired: props or context")
	fs.IntVar(&cfg.max, "max", clap.DefaultMax, "Maximum claps")
	fs.IntVar(&cfg.count, "count", 0, "Initial count")
	fs.IntVar(&cfg.total, "total", 0, "Initial total")
	fs.BoolVar(&cfg.clicked, "clicked", false, "Start in the clicked state")
	fs.IntVar(&cfg.fps, "fps", 60, "Animation frame rate")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.pattern != patternProps && cfg.pattern != patternContext {
		return config{}, errors.Errorf("unknown pattern %q (want %s or %s)", cfg.pattern, patternProps, patternContext)
	}
	return cfg, nil
}

// controllerOptions maps the flags onto controller options. Range checks
// are left to the controller.
func (c config) controllerOptions() []clap.Option {
	return []clap.Option{
		clap.WithMax(c.max),
		clap.WithInitialState(clap.State{
			Count:      c.count,
			CountTotal: c.total,
			IsClicked:  c.clicked,
		}),
	}
}

func runRun(args []string) error {
	cfg, err := parseRunFlags(args)
	if err != nil {
		return err
	}
	defer debug.Close()

	t := term.New(os.Stdin, os.Stdout)
	a, err := newApp(cfg, t)
	if err != nil {
		return err
	}
	if err := t.Start(); err != nil {
		return err
	}
	defer t.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	keys := make(chan term.KeyEvent, 16)
	g.Go(func() error {
		return t.ReadKeys(gctx, keys)
	})
	g.Go(func() error {
		// The loop ending for any reason ends the reader too.
		defer cancel()
		return a.run(gctx, keys)
	})
	return g.Wait()
}
