package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/gauge"
	"breathalyzer.klederson.com/internal/meter"
	"breathalyzer.klederson.com/internal/sensor"
	"breathalyzer.klederson.com/internal/trigger"
	"breathalyzer.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	opts    config.Options
	log     *slog.Logger
	cell    *sensor.Cell
	trigger *trigger.Trigger
	meter   *meter.Meter

	source sensor.Source
	button Button

	history  *History
	backdrop *ui.Backdrop

	// Result bar easing, presentation only.
	spring   harmonica.Spring
	level    float64
	levelVel float64

	session string

	cleanup sync.Once
	err     error
}

// Button is the claimed start button. Close releases the pin.
type Button interface {
	Name() string
	Close() error
}

// AppModel is the root Bubble Tea model for the breathalyzer display.
type AppModel struct {
	width  int
	height int

	shared *shared
}

// New creates the model. Hardware is not touched until Start.
func New(opts config.Options, log *slog.Logger) AppModel {
	cell := sensor.NewCell()
	trig := trigger.New(config.ButtonDebounce)
	return AppModel{
		shared: &shared{
			opts:     opts,
			log:      log,
			cell:     cell,
			trigger:  trig,
			meter:    meter.New(cell, trig, nil),
			history:  NewHistory(config.HistorySize),
			backdrop: &ui.Backdrop{},
			spring:   harmonica.NewSpring(harmonica.FPS(config.TargetFPS), 6.0, 0.4),
		},
	}
}

// Start claims the start button and opens the reading source. Neither is
// fatal: a missing button falls back to the space bar and a missing source
// to the arrow keys. Must be called before p.Run().
func (m AppModel) Start(ctx context.Context) {
	s := m.shared

	if !s.opts.NoButton {
		btn, err := trigger.OpenButton(s.opts.ButtonPin, s.log)
		if err != nil {
			s.log.Warn("button unavailable, press SPACE to start", "pin", s.opts.ButtonPin, "err", err)
		} else {
			btn.Watch(ctx, s.trigger)
			s.button = btn
			s.log.Info("button ready", "pin", btn.Name())
		}
	}

	s.source = sensor.Open(ctx, s.opts, s.cell, s.log)
}

// ManualButton reports whether the space bar stands in for the button.
func (m AppModel) ManualButton() bool {
	return m.shared.button == nil
}

// ManualLevel reports whether the arrow keys drive the reading.
func (m AppModel) ManualLevel() bool {
	return m.shared.source == nil || !m.shared.opts.Source.Hardware()
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.step()
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.shared

	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		_ = m.Shutdown()
		return m, tea.Quit

	case " ", "space":
		if m.ManualButton() && s.meter.Phase() == meter.PhaseWaiting {
			s.trigger.Press()
		}

	case "up", "k":
		if m.ManualLevel() {
			s.meter.Nudge(config.ManualStep)
		}

	case "down", "j":
		if m.ManualLevel() {
			s.meter.Nudge(-config.ManualStep)
		}

	case "r", "R":
		if m.ManualLevel() && s.meter.Phase() == meter.PhaseReading {
			s.meter.ResetReading()
		}
	}

	return m, nil
}

// step advances the session one tick and keeps the presentation state
// (history, result bar, session log) in line with it.
func (m AppModel) step() {
	s := m.shared

	ch, changed := s.meter.Step()
	if changed {
		m.onTransition(ch)
	}

	anim := s.meter.Animation()
	switch s.meter.Phase() {
	case meter.PhaseReading:
		if s.meter.Machine().Timer()%2 == 0 {
			s.history.Push(anim.Current)
		}
	case meter.PhaseResult:
		s.level, s.levelVel = s.spring.Update(s.level, s.levelVel, anim.MaxReached/config.MaxValue)
	}
}

func (m AppModel) onTransition(ch meter.Change) {
	s := m.shared
	anim := s.meter.Animation()

	switch ch.To {
	case meter.PhaseInstructions:
		s.session = uuid.NewString()
		s.log.Info("session started", "session", s.session)
	case meter.PhaseReading:
		s.history.Reset()
		s.log.Debug("reading started", "session", s.session)
	case meter.PhaseResult:
		s.level, s.levelVel = 0, 0
		s.log.Info("session result",
			"session", s.session,
			"max", anim.MaxReached,
			"band", meter.Classify(anim.MaxReached).Label(),
			"samples", s.history.Len(),
			"last", s.history.Last())
	case meter.PhaseWaiting:
		s.log.Debug("session finished", "session", s.session)
		s.session = ""
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	s := m.shared
	phase := s.meter.Phase()
	anim := s.meter.Animation()

	bodyH := m.height - 2
	if bodyH < 5 {
		bodyH = 5
	}

	menuBar := ui.RenderMenuBar(m.width, phase, m.ManualButton(), m.ManualLevel())

	rows := s.backdrop.Rows(m.width, bodyH)
	if phase.ShowsGauge() && anim.Current > 1.0 {
		rows = ui.Pulse(rows, gauge.BandColor(s.meter.Band()), ui.PulseAlpha(anim.PulseTime))
	}

	var screen string
	switch phase {
	case meter.PhaseWaiting:
		screen = ui.RenderWaiting(m.width, bodyH, anim.WaitingPulse, m.ManualButton(), rows)
	case meter.PhaseInstructions:
		screen = ui.RenderInstructions(m.width, bodyH, s.meter.Machine().Remaining(), rows)
	default:
		screen = ui.RenderDial(m.width, bodyH, m.dialView(), rows)
	}

	sourceName := ""
	if s.source != nil {
		sourceName = s.source.Name()
	}
	buttonName := ""
	if s.button != nil {
		buttonName = s.button.Name()
	}
	info := ui.StatusInfo{
		Source:    sourceName,
		Button:    buttonName,
		Phase:     phase,
		Remaining: s.meter.Machine().Remaining(),
		Target:    s.cell.Load(),
		Samples:   s.cell.Writes(),
		Particles: s.meter.Particles().Len(),
		Capacity:  s.meter.Particles().Cap(),
	}
	if last := s.cell.LastUpdate(); !last.IsZero() {
		info.Age = time.Since(last)
	}
	statusBar := ui.RenderStatusBar(m.width, info)

	return ui.ComposeLayout(menuBar, screen, statusBar)
}

func (m AppModel) dialView() ui.DialView {
	s := m.shared
	anim := s.meter.Animation()

	particles := make([]meter.Particle, 0, s.meter.Particles().Len())
	s.meter.Particles().Each(func(p meter.Particle) {
		particles = append(particles, p)
	})

	return ui.DialView{
		Phase:     s.meter.Phase(),
		Status:    s.meter.StatusText(),
		Band:      s.meter.Band(),
		Value:     s.meter.StatusValue(),
		Remaining: s.meter.Machine().Remaining(),
		Gauge: gauge.Frame{
			Needle:    anim.DisplayAngle(),
			Band:      s.meter.Band(),
			Glow:      anim.GlowIntensity,
			Particles: particles,
		},
		ResultScale: anim.ResultScale,
		ResultGlow:  anim.ResultGlow,
		Level:       s.level,
		History:     s.history.Values(),
		ManualLevel: m.ManualLevel(),
	}
}

// Shutdown releases the button pin, then closes the input channel. Each
// step runs even if an earlier one failed; failures are logged and joined.
// Safe to call more than once.
func (m AppModel) Shutdown() error {
	s := m.shared
	s.cleanup.Do(func() {
		var errs []error
		if s.button != nil {
			if err := s.button.Close(); err != nil {
				s.log.Error("button cleanup failed", "err", err)
				errs = append(errs, err)
			} else {
				s.log.Info("button released")
			}
		}
		if s.source != nil {
			if err := s.source.Close(); err != nil {
				s.log.Error("input channel cleanup failed", "err", err)
				errs = append(errs, err)
			} else {
				s.log.Info("input channel closed")
			}
		}
		s.err = errors.Join(errs...)
	})
	return s.err
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
