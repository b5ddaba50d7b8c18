package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ref = time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC)

func TestDate(t *testing.T) {
	assert.Equal(t, "2025-06-11", Date(ref))
}

func TestInstant(t *testing.T) {
	assert.Equal(t, "2025-06-11 10:30:00.000", Instant(ref))

	withMillis := ref.Add(250 * time.Millisecond)
	assert.Equal(t, "2025-06-11 10:30:00.250", Instant(withMillis))
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", ref, "today"},
		{"later today", ref.Add(3 * time.Hour), "in 3 hours"},
		{"one hour later", ref.Add(time.Hour), "in 1 hour"},
		{"earlier today", ref.Add(-2 * time.Hour), "2 hours ago"},
		{"tomorrow", ref.AddDate(0, 0, 1), "tomorrow"},
		{"yesterday", ref.AddDate(0, 0, -1), "yesterday"},
		{"in five days", ref.AddDate(0, 0, 5), "in 5 days"},
		{"a week ago", ref.AddDate(0, 0, -7), "7 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(tt.t, ref))
		})
	}
}
