package sensor

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"breathalyzer.klederson.com/internal/config"
)

// breath is one synthetic exhale: a rise to peak, a plateau and a decay.
type breath struct {
	peak   float64
	rise   float64 // seconds
	hold   float64
	fall   float64
	offset float64 // seconds of silence before the exhale
}

func (b breath) length() float64 {
	return b.offset + b.rise + b.hold + b.fall
}

// level returns the reading t seconds into the breath.
func (b breath) level(t float64) float64 {
	t -= b.offset
	switch {
	case t < 0:
		return 0
	case t < b.rise:
		return b.peak * math.Sin(t/b.rise*math.Pi/2)
	case t < b.rise+b.hold:
		return b.peak
	case t < b.rise+b.hold+b.fall:
		f := (t - b.rise - b.hold) / b.fall
		return b.peak * (1 - f*f)
	default:
		return 0
	}
}

// SimSource generates breath-shaped readings for demo mode. Each sample is
// formatted as a text line and fed through the same parser as the serial
// channel.
type SimSource struct {
	interval time.Duration
	rng      *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSimSource creates a simulator that writes every interval.
func NewSimSource(interval time.Duration) *SimSource {
	return &SimSource{
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *SimSource) Name() string {
	return "SIM"
}

// Start begins emitting samples.
func (s *SimSource) Start(ctx context.Context, cell *Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.loop(ctx, cell)
	return nil
}

func (s *SimSource) loop(ctx context.Context, cell *Cell) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	b := s.nextBreath()
	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += s.interval.Seconds()
			if t > b.length() {
				b = s.nextBreath()
				t = 0
			}
			v := b.level(t) + (s.rng.Float64()-0.5)*0.04
			v = math.Max(0, math.Min(config.MaxValue, v))
			cell.Accept(strconv.FormatFloat(v, 'f', 3, 64), config.MaxValue)
		}
	}
}

func (s *SimSource) nextBreath() breath {
	return breath{
		peak:   0.2 + s.rng.Float64()*2.2,
		rise:   1 + s.rng.Float64(),
		hold:   1 + s.rng.Float64()*2,
		fall:   1.5 + s.rng.Float64(),
		offset: 2 + s.rng.Float64()*4,
	}
}

// Close stops the simulator.
func (s *SimSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}
