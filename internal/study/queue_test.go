package study

import (
	"testing"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

var queueNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func word(id int64, examPriority, freqRank int, highFreq bool) models.Word {
	return models.Word{
		ID:              id,
		Word:            "w",
		ExamPriority:    examPriority,
		FrequencyRank:   freqRank,
		IsHighFrequency: highFreq,
	}
}

func progressWith(mastery int, nextReview *time.Time) *models.ProgressRecord {
	return &models.ProgressRecord{Mastery: mastery, ReviewCount: 1, NextReview: nextReview}
}

func ids(words []models.Word) []int64 {
	out := make([]int64, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestDueReviewBeatsEverything(t *testing.T) {
	yesterday := queueNow.AddDate(0, 0, -1)
	candidates := []models.Word{
		word(1, 100, 1, true), // unseen, top exam priority
		word(2, 0, 9999, false),
	}
	progress := map[int64]*models.ProgressRecord{
		2: progressWith(40, &yesterday),
	}

	got := SelectQueue(candidates, progress, DefaultQueueOptions(), queueNow)
	if got[0].ID != 2 {
		t.Errorf("order = %v, want due word 2 first", ids(got))
	}
}

func TestFutureReviewIsNotDue(t *testing.T) {
	tomorrow := queueNow.AddDate(0, 0, 1)
	candidates := []models.Word{
		word(1, 10, 100, false),
		word(2, 90, 100, false),
	}
	progress := map[int64]*models.ProgressRecord{
		1: progressWith(40, &tomorrow),
		2: progressWith(40, &tomorrow),
	}

	got := SelectQueue(candidates, progress, DefaultQueueOptions(), queueNow)
	if got[0].ID != 2 {
		t.Errorf("order = %v, want exam-priority word 2 first", ids(got))
	}
}

func TestUnseenBeforeExamPriority(t *testing.T) {
	// Word 1 has high exam priority but was studied, word 2 is untouched.
	// Novelty wins.
	candidates := []models.Word{
		word(1, 90, 500, false),
		word(2, 10, 1, false),
	}
	progress := map[int64]*models.ProgressRecord{
		1: progressWith(50, nil),
	}

	opts := DefaultQueueOptions()
	opts.IncludeReview = false
	got := SelectQueue(candidates, progress, opts, queueNow)
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("order = %v, want [2 1]", ids(got))
	}
}

func TestHighFrequencyTieBreak(t *testing.T) {
	candidates := []models.Word{
		word(1, 50, 800, false),
		word(2, 50, 300, true),
		word(3, 50, 100, true),
	}

	got := SelectQueue(candidates, nil, DefaultQueueOptions(), queueNow)
	want := []int64{3, 2, 1}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestLimitTruncates(t *testing.T) {
	var candidates []models.Word
	for i := int64(1); i <= 50; i++ {
		candidates = append(candidates, word(i, 0, int(i), false))
	}

	opts := DefaultQueueOptions()
	opts.Limit = 5
	got := SelectQueue(candidates, nil, opts, queueNow)
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

func TestEmptyCandidates(t *testing.T) {
	got := SelectQueue(nil, nil, DefaultQueueOptions(), queueNow)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestOrderingIsDeterministic(t *testing.T) {
	yesterday := queueNow.AddDate(0, 0, -2)
	candidates := []models.Word{
		word(1, 30, 40, true),
		word(2, 30, 40, true), // identical signal to word 1: input order must hold
		word(3, 90, 10, false),
		word(4, 0, 5, true),
	}
	progress := map[int64]*models.ProgressRecord{
		3: progressWith(20, &yesterday),
		4: progressWith(90, nil),
	}

	first := SelectQueue(candidates, progress, DefaultQueueOptions(), queueNow)
	for run := 0; run < 10; run++ {
		again := SelectQueue(candidates, progress, DefaultQueueOptions(), queueNow)
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("run %d: order %v != %v", run, ids(again), ids(first))
			}
		}
	}

	// Ties preserve input order.
	for i, w := range first {
		if w.ID == 2 {
			if i == 0 || first[i-1].ID != 1 {
				t.Errorf("order = %v, want word 1 immediately before its twin 2", ids(first))
			}
		}
	}
}

func TestInputSliceNotReordered(t *testing.T) {
	candidates := []models.Word{
		word(1, 0, 100, false),
		word(2, 90, 1, true),
	}
	SelectQueue(candidates, nil, DefaultQueueOptions(), queueNow)
	if candidates[0].ID != 1 || candidates[1].ID != 2 {
		t.Errorf("input slice mutated: %v", ids(candidates))
	}
}
