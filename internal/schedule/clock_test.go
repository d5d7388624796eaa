package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationString(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		expect    string
	}{
		{name: "same day", departure: "09:15", arrival: "11:45", expect: "2h 30m"},
		{name: "midnight rollover", departure: "23:30", arrival: "00:15", expect: "0h 45m"},
		{name: "minutes not padded", departure: "10:00", arrival: "12:05", expect: "2h 5m"},
		{name: "zero duration", departure: "08:00", arrival: "08:00", expect: "0h 0m"},
		{name: "just under a day", departure: "10:00", arrival: "09:59", expect: "23h 59m"},
		{name: "overnight long haul", departure: "16:25", arrival: "08:15", expect: "15h 50m"},
		{name: "invalid departure", departure: "later", arrival: "08:15", expect: ""},
		{name: "missing arrival", departure: "08:15", arrival: "", expect: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, DurationString(tc.departure, tc.arrival))
		})
	}
}

func TestClock12(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{in: "00:05", expect: "12:05 AM"},
		{in: "12:00", expect: "12:00 PM"},
		{in: "23:59", expect: "11:59 PM"},
		{in: "01:00", expect: "1:00 AM"},
		{in: "11:59", expect: "11:59 AM"},
		{in: "13:07", expect: "1:07 PM"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expect, Clock12(tc.in))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{name: "lowercase", in: "ndls", expect: "NDLS"},
		{name: "already normalized", in: "BCT", expect: "BCT"},
		{name: "strips non-letters", in: " nd-ls1 ", expect: "NDLS"},
		{name: "empty", in: "", expect: ""},
		{name: "only junk", in: "123 .;", expect: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, NormalizeCode(tc.in))
		})
	}
}
