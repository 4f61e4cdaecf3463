package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []uint64
		ok   bool
	}{
		{name: "empty string means no filter", raw: "", want: nil, ok: true},
		{name: "blank string means no filter", raw: "   ", want: nil, ok: true},
		{name: "single id", raw: "7", want: []uint64{7}, ok: true},
		{name: "several ids", raw: "1,3,12", want: []uint64{1, 3, 12}, ok: true},
		{name: "spaces around ids", raw: " 1 , 3 ", want: []uint64{1, 3}, ok: true},
		{name: "blank segments skipped", raw: "1,,3,", want: []uint64{1, 3}, ok: true},
		{name: "letters rejected", raw: "1,abc", ok: false},
		{name: "negative rejected", raw: "-1", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseIDList(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)
	in := time.Date(2026, 3, 1, 12, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-01T10:30:00Z", formatTime(in), "timestamps normalize to UTC")
}
