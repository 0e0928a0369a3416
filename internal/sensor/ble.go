package sensor

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"breathalyzer.klederson.com/internal/config"
	"tinygo.org/x/bluetooth"
)

// BLESource listens for advertisements from a sensor that broadcasts its
// reading as ASCII decimal text in the manufacturer data field.
type BLESource struct {
	adapter *bluetooth.Adapter
	name    string
	log     *slog.Logger
	running atomic.Bool
}

// NewBLESource creates a source that accepts adverts from the given local name.
func NewBLESource(name string, log *slog.Logger) *BLESource {
	return &BLESource{
		adapter: bluetooth.DefaultAdapter,
		name:    name,
		log:     log,
	}
}

func (s *BLESource) Name() string {
	return "BLE " + s.name
}

// Start enables the adapter and scans in a goroutine. Readings stop flowing
// once ctx ends; the scan itself runs until Close.
func (s *BLESource) Start(ctx context.Context, cell *Cell) error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running.Store(true)
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running.Load() {
				_ = adapter.StopScan()
				return
			}
			s.forward(ctx, cell, result.LocalName(), result.ManufacturerData())
		})
		if err != nil && s.running.Load() {
			s.log.Warn("BLE scan stopped", "err", err)
		}
	}()

	return nil
}

// forward writes the payloads of an advert from the configured sensor into
// cell. Returns how many were accepted.
func (s *BLESource) forward(ctx context.Context, cell *Cell, name string, data []bluetooth.ManufacturerDataElement) int {
	if ctx.Err() != nil || name != s.name {
		return 0
	}
	accepted := 0
	for _, m := range data {
		if !cell.Accept(string(m.Data), config.MaxValue) {
			s.log.Debug("discarded BLE payload",
				"company", fmt.Sprintf("0x%04X", m.CompanyID), "data", m.Data)
			continue
		}
		accepted++
	}
	return accepted
}

// Close halts the scan.
func (s *BLESource) Close() error {
	if !s.running.Swap(false) {
		return nil
	}
	if err := s.adapter.StopScan(); err != nil {
		return fmt.Errorf("failed to stop BLE scan: %w", err)
	}
	return nil
}
