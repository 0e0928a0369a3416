package sensor

import (
	"context"
	"errors"
	"log/slog"

	"breathalyzer.klederson.com/internal/config"
)

// Source feeds readings into a cell from a background goroutine.
type Source interface {
	// Name is a short label for the status bar.
	Name() string
	// Start opens the channel and begins writing to cell.
	Start(ctx context.Context, cell *Cell) error
	// Close stops the reader and releases the channel. Safe to call on an
	// unstarted source.
	Close() error
}

// Open builds and starts the source selected by opts. When a hardware
// source cannot be opened it logs the failure and returns nil so the
// caller falls back to manual controls.
func Open(ctx context.Context, opts config.Options, cell *Cell, log *slog.Logger) Source {
	var src Source
	switch opts.Source {
	case config.SourceSerial:
		src = NewSerialSource(opts.Port, opts.Baud, log)
	case config.SourceBLE:
		src = NewBLESource(opts.BLEName, log)
	case config.SourceSim:
		src = NewSimSource(config.PollInterval)
	default:
		return nil
	}

	if err := src.Start(ctx, cell); err != nil {
		log.Warn("input channel unavailable, manual controls enabled",
			"source", opts.Source, "err", err)
		return nil
	}
	log.Info("input channel open", "source", src.Name())
	return src
}

// ErrClosed is returned by Start on a source that has been closed.
var ErrClosed = errors.New("source closed")
