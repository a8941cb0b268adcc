// Package study builds study queues and drives answer submission.
package study

import (
	"sort"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

// QueueOptions control how candidates are ranked for a session.
type QueueOptions struct {
	Limit                   int
	PrioritizeHighFrequency bool
	PrioritizeExamFocus     bool
	IncludeReview           bool
}

// DefaultQueueOptions returns the standard smart-study configuration.
func DefaultQueueOptions() QueueOptions {
	return QueueOptions{
		Limit:                   20,
		PrioritizeHighFrequency: true,
		PrioritizeExamFocus:     true,
		IncludeReview:           true,
	}
}

// SelectQueue ranks candidates for a study session and returns at most
// opts.Limit of them. The ordering is a stable tie-break cascade: due
// reviews first, then unseen words, then exam priority descending, then the
// high-frequency flag and ascending frequency rank. Words that compare
// equal keep their input order, so the result is deterministic for a fixed
// candidate slice and clock.
func SelectQueue(candidates []models.Word, progress map[int64]*models.ProgressRecord, opts QueueOptions, now time.Time) []models.Word {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}

	queue := make([]models.Word, len(candidates))
	copy(queue, candidates)

	sort.SliceStable(queue, func(i, j int) bool {
		a, b := &queue[i], &queue[j]
		pa, pb := progress[a.ID], progress[b.ID]

		if opts.IncludeReview {
			aDue, bDue := pa.DueAt(now), pb.DueAt(now)
			if aDue != bDue {
				return aDue
			}
		}

		aUnseen := pa.State() == models.StateUnseen
		bUnseen := pb.State() == models.StateUnseen
		if aUnseen != bUnseen {
			return aUnseen
		}

		if opts.PrioritizeExamFocus && a.ExamPriority != b.ExamPriority {
			return a.ExamPriority > b.ExamPriority
		}

		if opts.PrioritizeHighFrequency {
			if a.IsHighFrequency != b.IsHighFrequency {
				return a.IsHighFrequency
			}
			if a.FrequencyRank != b.FrequencyRank {
				return a.FrequencyRank < b.FrequencyRank
			}
		}

		return false
	})

	if len(queue) > opts.Limit {
		queue = queue[:opts.Limit]
	}
	return queue
}
