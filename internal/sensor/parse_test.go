package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReading(t *testing.T) {
	cases := []struct {
		line string
		want float64
		ok   bool
	}{
		{"0.42\n", 0.42, true},
		{"  1.5\r\n", 1.5, true},
		{"0", 0, true},
		{"2.5", 2.5, true},
		{"2.51", 0, false},
		{"-0.1", 0, false},
		{"", 0, false},
		{"\n", 0, false},
		{"abc", 0, false},
		{"1,2", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}
	for _, c := range cases {
		v, ok := ParseReading(c.line, 2.5)
		assert.Equal(t, c.ok, ok, "line %q", c.line)
		assert.Equal(t, c.want, v, "line %q", c.line)
	}
}
