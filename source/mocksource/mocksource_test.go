package mocksource_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/lazyload/source/mocksource"
)

func TestQuestions(t *testing.T) {
	t.Parallel()

	questions, err := (&mocksource.Questions{Count: mocksource.DefaultQuestionCount}).List(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5000 {
		t.Fatalf("unexpected count: %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i || q.Index != i+1 {
			t.Fatalf("unexpected numbering of question %d: %+v", i, q)
		}
	}
	if got := questions[41].Title; got != "Question 42: If your partner texted you right now, would you reply at once?" {
		t.Errorf("unexpected title: %q", got)
	}
	if !questions[0].HasOption("yes") || !questions[0].HasOption("no") {
		t.Errorf("unexpected options: %+v", questions[0].Options)
	}
}

func TestRooms(t *testing.T) {
	t.Parallel()

	rooms, err := (&mocksource.Rooms{Count: 3}).List(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got [][2]string
	for _, r := range rooms {
		got = append(got, [2]string{r.ID, r.Name})
	}
	want := [][2]string{
		{"room-0", "Cozy King Room (Window)"},
		{"room-1", "Deluxe Twin Room (Non-smoking)"},
		{"room-2", "Cozy King Room (Window)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestPrices(t *testing.T) {
	t.Parallel()

	src := &mocksource.Prices{Random: rand.New(rand.NewPCG(1, 2))}

	initial, err := src.InitialPage(t.Context(), "room-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(initial) != mocksource.InitialPageSize {
		t.Fatalf("unexpected initial page size: %d", len(initial))
	}
	bounds := map[string][2]int{"ctrip": {138, 157}, "meituan": {135, 154}}
	for i, id := range []string{"ctrip", "meituan"} {
		p := initial[i]
		if p.ChannelID != id {
			t.Errorf("unexpected channel at %d: %s", i, p.ChannelID)
		}
		if b := bounds[id]; p.Amount < b[0] || p.Amount > b[1] {
			t.Errorf("amount of %s out of range: %d", id, p.Amount)
		}
	}

	remaining, err := src.RemainingPage(t.Context(), "room-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	type offer struct {
		ChannelID string
		Amount    int
	}
	var got []offer
	for _, p := range remaining {
		got = append(got, offer{p.ChannelID, p.Amount})
	}
	if diff := cmp.Diff([]offer{{"agoda", 160}, {"booking", 155}}, got); diff != "" {
		t.Errorf("remaining page mismatch (-want +got):\n%s", diff)
	}
}

func TestPrices_Canceled(t *testing.T) {
	t.Parallel()

	src := &mocksource.Prices{InitialDelay: time.Hour, RemainingDelay: time.Hour}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := src.InitialPage(ctx, "room-0"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := src.RemainingPage(ctx, "room-0"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := (&mocksource.Rooms{Count: 1, Delay: time.Hour}).List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if got := mocksource.NewQuestions(); got.Count != 5000 || got.Delay != 1500*time.Millisecond {
		t.Errorf("unexpected questions: %+v", got)
	}
	if got := mocksource.NewRooms(); got.Count != 10 || got.Delay != 500*time.Millisecond {
		t.Errorf("unexpected rooms: %+v", got)
	}
	prices := mocksource.NewPrices()
	if prices.InitialDelay != 800*time.Millisecond || prices.RemainingDelay != 600*time.Millisecond {
		t.Errorf("unexpected price delays: %v, %v", prices.InitialDelay, prices.RemainingDelay)
	}
}
