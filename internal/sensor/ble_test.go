package sensor

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"tinygo.org/x/bluetooth"
)

func payload(s string) []bluetooth.ManufacturerDataElement {
	return []bluetooth.ManufacturerDataElement{{CompanyID: 0xFFFF, Data: []byte(s)}}
}

func TestBLEForward(t *testing.T) {
	src := NewBLESource("ETILOMETRO", slog.New(slog.NewTextHandler(io.Discard, nil)))
	cell := NewCell()
	ctx := context.Background()

	assert.Equal(t, 1, src.forward(ctx, cell, "ETILOMETRO", payload("1.10")))
	assert.Equal(t, 1.1, cell.Load())

	assert.Zero(t, src.forward(ctx, cell, "OTHER", payload("2.00")), "other adverts ignored")
	assert.Zero(t, src.forward(ctx, cell, "ETILOMETRO", payload("9.9")), "out of range")
	assert.Equal(t, 1.1, cell.Load())
}

func TestBLEContextOnlyStopsReadings(t *testing.T) {
	src := NewBLESource("ETILOMETRO", slog.New(slog.NewTextHandler(io.Discard, nil)))
	src.running.Store(true)
	cell := NewCell()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Zero(t, src.forward(ctx, cell, "ETILOMETRO", payload("0.70")))
	assert.Zero(t, cell.Writes())
	assert.True(t, src.running.Load(), "the scan is released by Close, not by ctx")
}

func TestBLECloseUnstarted(t *testing.T) {
	src := NewBLESource("ETILOMETRO", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, src.Close())
}
