// Package score computes the points earned for a correct answer: a linear
// decay from 1000 at instant answers down to a floor of 100 at (or past) the
// challenge's time limit. Late correct answers still earn the floor; only an
// outright timeout yields nothing.
package score

import (
	"math"
	"time"
)

const (
	// MaxPoints is earned for an instant correct answer.
	MaxPoints = 1000
	// MinPoints is the consolation floor for any correct answer, however late.
	MinPoints = 100
)

// Points returns the score for a correct answer given the elapsed time and
// the challenge's time limit in seconds.
func Points(elapsed time.Duration, timeLimitSecs int) int {
	limit := float64(timeLimitSecs) * 1000
	elapsedMs := float64(elapsed.Milliseconds())

	p := int(math.Floor(MaxPoints * (1 - elapsedMs/limit)))
	if p < MinPoints {
		return MinPoints
	}
	return p
}
