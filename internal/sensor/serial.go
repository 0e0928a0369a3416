package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"breathalyzer.klederson.com/internal/config"
	serial "github.com/tarm/goserial"
)

// OpenPortFunc opens a serial device. Replaced in tests.
type OpenPortFunc func(c *serial.Config) (io.ReadWriteCloser, error)

// SerialSource reads newline-terminated decimal readings from a serial port.
type SerialSource struct {
	port     string
	baud     int
	openPort OpenPortFunc
	log      *slog.Logger

	mu     sync.Mutex
	conn   io.ReadWriteCloser
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewSerialSource creates a source for the given device path and baud rate.
func NewSerialSource(port string, baud int, log *slog.Logger) *SerialSource {
	return &SerialSource{
		port:     port,
		baud:     baud,
		openPort: serial.OpenPort,
		log:      log,
	}
}

func (s *SerialSource) Name() string {
	return "SERIAL " + s.port
}

// Start opens the port and begins reading in a goroutine.
func (s *SerialSource) Start(ctx context.Context, cell *Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	conn, err := s.openPort(&serial.Config{Name: s.port, Baud: s.baud})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", s.port, err)
	}
	s.conn = conn

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, conn, cell)
	return nil
}

func (s *SerialSource) loop(ctx context.Context, conn io.Reader, cell *Cell) {
	defer close(s.done)
	r := bufio.NewReader(conn)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := r.ReadString('\n')
		if err == nil {
			if !cell.Accept(line, config.MaxValue) {
				s.log.Debug("discarded serial line", "line", line)
			}
			continue
		}
		// A line cut short by a read error is incomplete.
		if line != "" {
			s.log.Debug("dropped partial serial line", "line", line)
		}

		if ctx.Err() != nil {
			return
		}
		if err != io.EOF {
			s.log.Warn("serial read failed", "port", s.port, "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(config.PollInterval):
		}
	}
}

// Close stops the reader and closes the port.
func (s *SerialSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", s.port, err)
	}
	return nil
}

// Done is closed when the reader goroutine exits.
func (s *SerialSource) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
