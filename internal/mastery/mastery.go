// Package mastery implements the score update applied after every quiz
// answer: an Ebbinghaus-style fixed interval table driven by a 0-100
// mastery score instead of SM-2 easiness factors.
package mastery

import (
	"time"

	"github.com/example/wordrecall/pkg/models"
)

// Deltas is the mastery adjustment applied per answer. Call sites may study
// whole words or individual meanings with different reward weights, so the
// pair is configuration rather than a constant.
type Deltas struct {
	OnCorrect   int
	OnIncorrect int
}

// DefaultDeltas is the canonical +15/-10 pair.
var DefaultDeltas = Deltas{OnCorrect: 15, OnIncorrect: -10}

// ReviewIntervals holds the day offsets until the next review, indexed by
// mastery bracket (mastery/20, clamped to the last entry).
var ReviewIntervals = []int{1, 2, 4, 7, 15, 30}

// Updater computes the next progress record for an answer outcome.
type Updater struct {
	Deltas    Deltas
	Intervals []int
}

// New creates an updater with the default reward pair and interval table.
func New() *Updater {
	return &Updater{
		Deltas:    DefaultDeltas,
		Intervals: ReviewIntervals,
	}
}

// ComputeNextProgress derives the record to persist after one answer.
// current may be nil (first-ever interaction with the item) and is never
// mutated. The function is total: mastery is clamped to [0,100] and the
// interval index to the table, so every input produces a defined output.
func (u *Updater) ComputeNextProgress(current *models.ProgressRecord, correct bool, now time.Time) models.ProgressRecord {
	var next models.ProgressRecord
	if current != nil {
		next = *current
		// Stored records occasionally violate the counter invariant
		// (hand-edited rows, partial writes). Clamp instead of failing.
		if next.CorrectCount > next.ReviewCount {
			next.CorrectCount = next.ReviewCount
		}
		next.Mastery = clamp(next.Mastery, 0, 100)
	}

	delta := u.Deltas.OnIncorrect
	if correct {
		delta = u.Deltas.OnCorrect
	}
	next.Mastery = clamp(next.Mastery+delta, 0, 100)

	next.ReviewCount++
	if correct {
		next.CorrectCount++
	}

	interval := u.IntervalDays(next.Mastery)
	due := now.AddDate(0, 0, interval)
	next.LastReviewed = &now
	next.NextReview = &due
	return next
}

// IntervalDays returns the review offset in days for a mastery score.
func (u *Updater) IntervalDays(mastery int) int {
	intervals := u.Intervals
	if len(intervals) == 0 {
		intervals = ReviewIntervals
	}
	idx := clamp(mastery, 0, 100) / 20
	if idx > len(intervals)-1 {
		idx = len(intervals) - 1
	}
	return intervals[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
