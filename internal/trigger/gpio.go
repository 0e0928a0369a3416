package trigger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// edgeTimeout bounds each WaitForEdge so the watcher notices shutdown.
const edgeTimeout = 250 * time.Millisecond

// Button watches an active-low push button wired between a GPIO pin and
// ground, using the internal pull-up.
type Button struct {
	name string
	pin  gpio.PinIO
	log  *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// OpenButton initialises the host drivers and claims the named pin
// (e.g. "GPIO18"). The pin is configured for falling-edge detection.
func OpenButton(name string, log *slog.Logger) (*Button, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise GPIO host: %w", err)
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return newButton(name, pin, log)
}

func newButton(name string, pin gpio.PinIO, log *slog.Logger) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("failed to configure %s: %w", name, err)
	}
	return &Button{name: name, pin: pin, log: log}, nil
}

// Name returns the pin name.
func (b *Button) Name() string {
	return b.name
}

// Watch forwards every falling edge to t until Close or ctx ends.
func (b *Button) Watch(ctx context.Context, t *Trigger) {
	b.mu.Lock()
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})
	b.running = true
	done := b.done
	b.mu.Unlock()

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				return
			}
			if !b.pin.WaitForEdge(edgeTimeout) {
				continue
			}
			// Active low: a press reads Low after the falling edge.
			if b.pin.Read() != gpio.Low {
				continue
			}
			if t.Press() {
				b.log.Debug("button pressed", "pin", b.name)
			}
		}
	}()
}

// Close stops the watcher and releases the pin.
func (b *Button) Close() error {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return b.halt()
	}
	b.running = false
	b.cancel()
	done := b.done
	b.mu.Unlock()

	<-done
	return b.halt()
}

func (b *Button) halt() error {
	if err := b.pin.Halt(); err != nil {
		return fmt.Errorf("failed to release %s: %w", b.name, err)
	}
	return nil
}
