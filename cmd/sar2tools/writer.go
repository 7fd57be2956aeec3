package main

import (
	"fmt"
	"io"
	"os"

	"sar2tools/internal/scenery"
)

// newWriter sets up the scenery writer for the given output format and
// destination, teeing into a JSONL placement log when logFile is set. The
// returned cleanup closes any files opened here.
func newWriter(format, out, logFile string) (scenery.Writer, func() error, error) {
	var closers []io.Closer
	cleanup := func() error {
		var first error
		for _, c := range closers {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
		closers = nil
		return first
	}

	var dst io.Writer = os.Stdout
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return nil, nil, fmt.Errorf("create output: %w", err)
		}
		closers = append(closers, f)
		dst = f
	}

	var base scenery.Writer
	switch format {
	case "", "text":
		base = scenery.NewTextWriter(dst)
	case "json":
		base = scenery.NewJSONWriter(dst)
	default:
		cleanup()
		return nil, nil, fmt.Errorf("unknown format %q (want text or json)", format)
	}
	if logFile == "" {
		return base, cleanup, nil
	}
	fw, err := scenery.NewFileWriter(logFile)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create placement log: %w", err)
	}
	closers = append(closers, fw)
	return scenery.NewMultiWriter(base, fw), cleanup, nil
}
