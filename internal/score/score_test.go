package score

import (
	"testing"
	"time"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		limit   int
		want    int
	}{
		{"instant answer", 0, 15, 1000},
		{"instant answer short limit", 0, 8, 1000},
		{"halfway", 6 * time.Second, 12, 500},
		{"quarter in", 2 * time.Second, 8, 750},
		{"at the limit", 15 * time.Second, 15, 100},
		{"past the limit", 20 * time.Second, 15, 100},
		{"absurdly late", time.Hour, 10, 100},
		{"just under the floor", 14 * time.Second, 15, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.elapsed, tt.limit); got != tt.want {
				t.Errorf("Points(%v, %d) = %d, want %d", tt.elapsed, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPoints_NeverBelowFloor(t *testing.T) {
	for secs := 0; secs < 60; secs++ {
		got := Points(time.Duration(secs)*time.Second, 10)
		if got < MinPoints || got > MaxPoints {
			t.Errorf("Points(%ds, 10) = %d, outside [%d,%d]", secs, got, MinPoints, MaxPoints)
		}
	}
}
