package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/meter"
	"breathalyzer.klederson.com/internal/sensor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	opts := config.DefaultOptions()
	opts.Source = config.SourceNone
	opts.NoButton = true
	return New(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func tick(m AppModel, n int) AppModel {
	for i := 0; i < n; i++ {
		m, _ = send(m, TickMsg(time.Now()))
	}
	return m
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyReset = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestManualModes(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, m.ManualButton())
	assert.True(t, m.ManualLevel())
}

func TestSpaceStartsSession(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, keySpace)
	m = tick(m, 1)
	require.Equal(t, meter.PhaseInstructions, m.shared.meter.Phase())
	assert.NotEmpty(t, m.shared.session)

	m = tick(m, config.InstructionsTicks)
	assert.Equal(t, meter.PhaseReading, m.shared.meter.Phase())
}

func TestSpaceIgnoredOutsideWaiting(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, keySpace)
	m = tick(m, 1)

	m, _ = send(m, keySpace)
	assert.False(t, m.shared.trigger.Consume(), "no press queued during instructions")
}

func TestManualLevelKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, keyUp)
	assert.Zero(t, m.shared.cell.Load(), "level keys only work while reading")

	m, _ = send(m, keySpace)
	m = tick(m, 1+config.InstructionsTicks)
	require.Equal(t, meter.PhaseReading, m.shared.meter.Phase())

	for i := 0; i < 5; i++ {
		m, _ = send(m, keyUp)
	}
	assert.InDelta(t, 0.5, m.shared.cell.Load(), 1e-9)

	m, _ = send(m, keyDown)
	assert.InDelta(t, 0.4, m.shared.cell.Load(), 1e-9)

	m = tick(m, 20)
	require.Positive(t, m.shared.meter.Animation().MaxReached)
	assert.Equal(t, 11, m.shared.history.Len(), "one sample every other tick")

	m, _ = send(m, keyReset)
	assert.Zero(t, m.shared.cell.Load())
	assert.Zero(t, m.shared.meter.Animation().MaxReached)
}

func TestResultLevelEases(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, keySpace)
	m = tick(m, 1+config.InstructionsTicks)

	for i := 0; i < 20; i++ {
		m, _ = send(m, keyUp)
	}
	m = tick(m, config.ReadingTicks)
	require.Equal(t, meter.PhaseResult, m.shared.meter.Phase())

	m = tick(m, 120)
	want := m.shared.meter.Animation().MaxReached / config.MaxValue
	assert.InDelta(t, want, m.shared.level, 0.05)

	m = tick(m, config.ResultTicks)
	assert.Equal(t, meter.PhaseWaiting, m.shared.meter.Phase())
	assert.Empty(t, m.shared.session)
}

func TestQuitShutsDown(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(m, keyQuit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.NoError(t, m.Shutdown())
	assert.NoError(t, m.Shutdown(), "shutdown is idempotent")
}

type fakeButton struct {
	calls *[]string
	err   error
}

func (b *fakeButton) Name() string { return "GPIO18" }

func (b *fakeButton) Close() error {
	*b.calls = append(*b.calls, "button")
	return b.err
}

type fakeSource struct {
	calls *[]string
	err   error
}

func (s *fakeSource) Name() string { return "FAKE" }

func (s *fakeSource) Start(context.Context, *sensor.Cell) error { return nil }

func (s *fakeSource) Close() error {
	*s.calls = append(*s.calls, "source")
	return s.err
}

func TestShutdownReleasesButtonFirst(t *testing.T) {
	var calls []string
	m := newTestModel(t)
	m.shared.button = &fakeButton{calls: &calls}
	m.shared.source = &fakeSource{calls: &calls}

	assert.False(t, m.ManualButton())
	require.NoError(t, m.Shutdown())
	assert.Equal(t, []string{"button", "source"}, calls)
}

func TestShutdownContinuesAfterFailure(t *testing.T) {
	var calls []string
	pinErr := errors.New("pin busy")
	portErr := errors.New("port gone")

	m := newTestModel(t)
	m.shared.button = &fakeButton{calls: &calls, err: pinErr}
	m.shared.source = &fakeSource{calls: &calls, err: portErr}

	err := m.Shutdown()
	require.Error(t, err)
	assert.ErrorIs(t, err, pinErr)
	assert.ErrorIs(t, err, portErr)
	assert.Equal(t, []string{"button", "source"}, calls, "source still closed after the button failed")

	assert.Equal(t, err, m.Shutdown(), "second call reports the same result")
	assert.Len(t, calls, 2, "cleanup runs once")
}

func TestSpaceIgnoredWithHardwareButton(t *testing.T) {
	var calls []string
	m := newTestModel(t)
	m.shared.button = &fakeButton{calls: &calls}

	m, _ = send(m, keySpace)
	m = tick(m, 1)
	assert.Equal(t, meter.PhaseWaiting, m.shared.meter.Phase())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Initializing")

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, config.Title)
	assert.Contains(t, view, "[MANUAL]")
	assert.Contains(t, view, "WAITING")

	m, _ = send(m, keySpace)
	m = tick(m, 1)
	assert.Contains(t, ansi.Strip(m.View()), "ISTRUZIONI")

	m = tick(m, config.InstructionsTicks)
	assert.Contains(t, ansi.Strip(m.View()), "LETTURA IN CORSO...")

	builds := m.shared.backdrop.Builds()
	m.View()
	assert.Equal(t, builds, m.shared.backdrop.Builds(), "gradient cached between frames")
}

func TestTickReschedules(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.NotNil(t, m.Init())
}
