package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 30, 0, time.Local)
}

func TestAttendanceWindowContains(t *testing.T) {
	w := AttendanceWindowConfig{OpenHour: 8, OpenMinute: 40, CloseHour: 14, CloseMinute: 50}

	assert.False(t, w.Contains(clock(8, 39)))
	assert.True(t, w.Contains(clock(8, 40)))
	assert.True(t, w.Contains(clock(11, 15)))
	assert.True(t, w.Contains(clock(14, 50)))
	assert.False(t, w.Contains(clock(14, 51)))
}

func TestAttendanceWindowFullDay(t *testing.T) {
	w := AttendanceWindowConfig{OpenHour: 0, OpenMinute: 0, CloseHour: 23, CloseMinute: 59}

	assert.True(t, w.Contains(clock(0, 0)))
	assert.True(t, w.Contains(clock(23, 59)))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		h, m   int
		wantOK bool
	}{
		{"08:40", 8, 40, true},
		{"23:59", 23, 59, true},
		{" 14:50 ", 14, 50, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		h, m, ok := parseClock(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.m, m)
		}
	}
}
