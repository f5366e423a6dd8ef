package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eaugeas/arboretum/config"
	"github.com/eaugeas/arboretum/logs"
	"github.com/eaugeas/arboretum/script"
	"github.com/pkg/errors"
)

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg Config
	parser, err := config.Generate("arboretum", &cfg)
	if err != nil {
		return err
	}

	if err := parser.Parse(args); err != nil {
		if _, ok := err.(config.ErrParseFlags); ok {
			_ = parser.Usage()
		}
		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.Log.Level,
		Output: stderr,
	})

	runner, err := script.NewRunner(script.RunnerProps{
		Logger:    logger,
		ValueType: cfg.Script.ValueType,
	})
	if err != nil {
		return err
	}

	in := stdin
	if cfg.Script.Path != "" {
		f, err := os.Open(cfg.Script.Path)
		if err != nil {
			return errors.Wrapf(err, "failed to open script %s", cfg.Script.Path)
		}
		defer f.Close()
		in = f
	}

	ctx = logs.WithTraceID(ctx, time.Now().UnixNano())
	return runner.Run(ctx, in, stdout)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
