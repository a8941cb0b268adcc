package study

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

type fakeStore struct {
	records map[int64]*models.ProgressRecord
	getErr  error
	saveErr error
	saved   []models.ProgressRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[int64]*models.ProgressRecord)}
}

func (s *fakeStore) GetOne(_ context.Context, _, itemID int64) (*models.ProgressRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	rec, ok := s.records[itemID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) GetMany(_ context.Context, _ int64, itemIDs []int64) (map[int64]*models.ProgressRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := make(map[int64]*models.ProgressRecord)
	for _, id := range itemIDs {
		if rec, ok := s.records[id]; ok {
			cp := *rec
			out[id] = &cp
		}
	}
	return out, nil
}

func (s *fakeStore) Upsert(_ context.Context, rec *models.ProgressRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *rec
	s.records[rec.ItemID] = &cp
	s.saved = append(s.saved, cp)
	return nil
}

type fakeCatalog struct {
	words []models.Word
}

func (c *fakeCatalog) ListItems(_ context.Context, _ int64) ([]models.Word, error) {
	return c.words, nil
}

type fakeDaily struct {
	newWords    int
	reviewWords int
	minutes     int
}

func (d *fakeDaily) Bump(_ context.Context, _ int64, _ string, newWords, reviewWords, minutes int) error {
	d.newWords += newWords
	d.reviewWords += reviewWords
	d.minutes += minutes
	return nil
}

var trainerNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSubmitAnswerFirstInteraction(t *testing.T) {
	store := newFakeStore()
	daily := &fakeDaily{}
	tr := NewTrainer(nil, &fakeCatalog{}, store, daily)

	rec, err := tr.SubmitAnswer(context.Background(), 7, 42, true, trainerNow)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if rec.UserID != 7 || rec.ItemID != 42 {
		t.Errorf("keys = %d/%d, want 7/42", rec.UserID, rec.ItemID)
	}
	if rec.Mastery != 15 || rec.ReviewCount != 1 || rec.CorrectCount != 1 {
		t.Errorf("record = %+v, want mastery 15, counts 1/1", rec)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(store.saved))
	}
	if daily.newWords != 1 || daily.reviewWords != 0 {
		t.Errorf("daily counters = %d new / %d review, want 1/0", daily.newWords, daily.reviewWords)
	}
}

func TestSubmitAnswerSequenceIsMonotone(t *testing.T) {
	store := newFakeStore()
	daily := &fakeDaily{}
	tr := NewTrainer(nil, &fakeCatalog{}, store, daily)
	ctx := context.Background()

	answers := []bool{true, true, false, true, false, false, true}
	prevReviews := 0
	for _, correct := range answers {
		rec, err := tr.SubmitAnswer(ctx, 7, 42, correct, trainerNow)
		if err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if rec.ReviewCount != prevReviews+1 {
			t.Fatalf("review count = %d, want %d", rec.ReviewCount, prevReviews+1)
		}
		if rec.CorrectCount > rec.ReviewCount {
			t.Fatalf("correct count %d exceeds review count %d", rec.CorrectCount, rec.ReviewCount)
		}
		prevReviews = rec.ReviewCount
	}
	if daily.newWords != 1 || daily.reviewWords != len(answers)-1 {
		t.Errorf("daily counters = %d new / %d review, want 1/%d", daily.newWords, daily.reviewWords, len(answers)-1)
	}
}

func TestSubmitAnswerPropagatesStoreErrors(t *testing.T) {
	wantErr := errors.New("store unavailable")

	store := newFakeStore()
	store.getErr = wantErr
	tr := NewTrainer(nil, &fakeCatalog{}, store, nil)
	if _, err := tr.SubmitAnswer(context.Background(), 7, 42, true, trainerNow); !errors.Is(err, wantErr) {
		t.Errorf("read failure: err = %v, want wrapped %v", err, wantErr)
	}

	store = newFakeStore()
	store.saveErr = wantErr
	tr = NewTrainer(nil, &fakeCatalog{}, store, nil)
	if _, err := tr.SubmitAnswer(context.Background(), 7, 42, true, trainerNow); !errors.Is(err, wantErr) {
		t.Errorf("write failure: err = %v, want wrapped %v", err, wantErr)
	}
}

func TestBuildQueueMergesProgress(t *testing.T) {
	yesterday := trainerNow.AddDate(0, 0, -1)
	catalog := &fakeCatalog{words: []models.Word{
		{ID: 1, ExamPriority: 95},
		{ID: 2, ExamPriority: 5},
	}}
	store := newFakeStore()
	store.records[1] = &models.ProgressRecord{ItemID: 1, Mastery: 60, ReviewCount: 3}
	store.records[2] = &models.ProgressRecord{ItemID: 2, Mastery: 30, ReviewCount: 2, NextReview: &yesterday}

	tr := NewTrainer(nil, catalog, store, nil)
	queue, err := tr.BuildQueue(context.Background(), 7, 0, DefaultQueueOptions(), trainerNow)
	if err != nil {
		t.Fatalf("BuildQueue: %v", err)
	}
	if len(queue) != 2 || queue[0].ID != 2 {
		t.Errorf("queue = %v, want due word 2 first", queue)
	}
}

func TestRecordStudyTimeAccumulatesMinutes(t *testing.T) {
	daily := &fakeDaily{}
	tr := NewTrainer(nil, &fakeCatalog{}, newFakeStore(), daily)
	ctx := context.Background()

	// Answers bump word counters only; the session duration arrives once,
	// at the end.
	if _, err := tr.SubmitAnswer(ctx, 7, 42, true, trainerNow); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if daily.minutes != 0 {
		t.Fatalf("minutes after answer = %d, want 0", daily.minutes)
	}

	if err := tr.RecordStudyTime(ctx, 7, trainerNow, 9*time.Minute+30*time.Second); err != nil {
		t.Fatalf("RecordStudyTime: %v", err)
	}
	if daily.minutes != 9 {
		t.Errorf("minutes = %d, want 9", daily.minutes)
	}
	if daily.newWords != 1 || daily.reviewWords != 0 {
		t.Errorf("counters = %d new, %d review, want 1 and 0", daily.newWords, daily.reviewWords)
	}

	// Sub-minute sessions add nothing rather than a spurious zero row.
	if err := tr.RecordStudyTime(ctx, 7, trainerNow, 20*time.Second); err != nil {
		t.Fatalf("RecordStudyTime short: %v", err)
	}
	if daily.minutes != 9 {
		t.Errorf("minutes after short session = %d, want unchanged 9", daily.minutes)
	}
}
