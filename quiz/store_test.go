package quiz_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/quiz"
	"github.com/karupanerura/lazyload/source"
	"github.com/karupanerura/lazyload/source/mocksource"
)

func TestStore(t *testing.T) {
	t.Parallel()

	src := &source.CountingListSource[quiz.Question]{
		Source: &mocksource.Questions{Count: mocksource.DefaultQuestionCount},
	}
	store := quiz.NewStore(src)

	// landing page warm-up
	prefetch := store.Prefetch()

	var wg sync.WaitGroup
	results := make([][]quiz.Question, 3)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			questions, err := store.Questions(t.Context())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = questions
		}()
	}
	wg.Wait()

	if _, err := prefetch.Wait(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, questions := range results {
		if len(questions) != 5000 {
			t.Errorf("unexpected question count of caller %d: %d", i, len(questions))
		}
		if diff := cmp.Diff(results[0], questions); diff != "" {
			t.Errorf("caller %d observed different questions (-first +got):\n%s", i, diff)
		}
	}
	if got := src.Calls(); got != 1 {
		t.Errorf("expected source to be called once, but it was called %d times", got)
	}

	state := store.State()
	if state.Status != lazyload.StatusReady || len(state.Data) != 5000 {
		t.Errorf("unexpected state: status=%v, data=%d", state.Status, len(state.Data))
	}
}

func TestStore_Start(t *testing.T) {
	t.Parallel()

	store := quiz.NewStore(&mocksource.Questions{Count: 3})
	session, err := store.Start(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Len() != 3 {
		t.Errorf("unexpected length: %d", session.Len())
	}
	if got := session.Current().Index; got != 1 {
		t.Errorf("unexpected first question index: %d", got)
	}
}

func TestStore_StartWithoutQuestions(t *testing.T) {
	t.Parallel()

	store := quiz.NewStore(&mocksource.Questions{Count: 0})
	_, err := store.Start(t.Context())
	if !errors.Is(err, lazyload.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
	if got := store.State().Status; got != lazyload.StatusFailed {
		t.Errorf("unexpected status: %v", got)
	}
}

func TestStore_Retry(t *testing.T) {
	t.Parallel()

	sourceErr := errors.New("network error")
	fail := true
	src := &source.CountingListSource[quiz.Question]{
		Source: source.ListFunc[quiz.Question](func(ctx context.Context) ([]quiz.Question, error) {
			if fail {
				return nil, sourceErr
			}
			return (&mocksource.Questions{Count: 2}).List(ctx)
		}),
	}
	store := quiz.NewStore(src)

	if _, err := store.Questions(t.Context()); !errors.Is(err, sourceErr) {
		t.Fatalf("unexpected error: %v", err)
	}

	fail = false
	questions, err := store.Questions(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("unexpected question count: %d", len(questions))
	}
	if got := src.Calls(); got != 2 {
		t.Errorf("expected source to be called twice, but it was called %d times", got)
	}
}
