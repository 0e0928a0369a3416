package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptionsValid(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		errMsg string
	}{
		{"unknown source", func(o *Options) { o.Source = "usb" }, "unknown source"},
		{"serial without port", func(o *Options) { o.Port = "" }, "--port"},
		{"bad baud", func(o *Options) { o.Baud = 0 }, "baud"},
		{"ble without name", func(o *Options) { o.Source = SourceBLE; o.BLEName = "" }, "--ble-name"},
		{"sim ignores port", func(o *Options) { o.Source = SourceSim; o.Port = "" }, ""},
		{"none", func(o *Options) { o.Source = SourceNone }, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := DefaultOptions()
			c.mutate(&o)
			err := o.Validate()
			if c.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, c.errMsg)
		})
	}
}

func TestSourceHardware(t *testing.T) {
	assert.True(t, SourceSerial.Hardware())
	assert.True(t, SourceBLE.Hardware())
	assert.False(t, SourceSim.Hardware())
	assert.False(t, SourceNone.Hardware())
}

func TestPhaseDurations(t *testing.T) {
	assert.Equal(t, 300, InstructionsTicks)
	assert.Equal(t, 300, ReadingTicks)
	assert.Equal(t, 300, ResultTicks)
	assert.Equal(t, 150, HistorySize)
}
