package mocksource

import (
	"context"
	"fmt"
	"time"

	"github.com/karupanerura/lazyload"
	"github.com/karupanerura/lazyload/quiz"
)

const (
	// DefaultQuestionCount is the default size of the question set.
	DefaultQuestionCount = 5000

	// DefaultQuestionDelay is the default latency of the question set.
	DefaultQuestionDelay = 1500 * time.Millisecond
)

// Questions is a source of generated quiz questions.
type Questions struct {
	Count int
	Delay time.Duration
}

var _ lazyload.ListSource[quiz.Question] = (*Questions)(nil)

// NewQuestions creates a question source with the default size and delay.
func NewQuestions() *Questions {
	return &Questions{Count: DefaultQuestionCount, Delay: DefaultQuestionDelay}
}

// List returns Count questions after Delay.
func (s *Questions) List(ctx context.Context) ([]quiz.Question, error) {
	if err := sleep(ctx, s.Delay); err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, s.Count)
	for i := range questions {
		questions[i] = quiz.Question{
			ID:    i,
			Index: i + 1,
			Title: fmt.Sprintf("Question %d: If your partner texted you right now, would you reply at once?", i+1),
			Options: []quiz.Option{
				{Label: "Yes, it is a habit", Value: "yes"},
				{Label: "Depends on my mood", Value: "no"},
			},
		}
	}
	return questions, nil
}
