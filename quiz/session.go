package quiz

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrNoQuestions   = errors.New("quiz: no questions loaded")
	ErrUnknownOption = errors.New("quiz: unknown option")
	ErrFinished      = errors.New("quiz: already finished")
)

// Direction is the direction of the last move.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Session walks one user through the questions.
// It is not safe for concurrent use.
type Session struct {
	questions []Question
	index     int
	direction Direction
	answers   map[int]string
	finished  bool
}

// NewSession creates a session positioned at the first question.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		questions: questions,
		direction: Forward,
		answers:   make(map[int]string),
	}, nil
}

// Current returns the current question.
func (s *Session) Current() Question {
	return s.questions[s.index]
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Direction returns the direction of the last move.
func (s *Session) Direction() Direction {
	return s.direction
}

// Progress returns the position of the current question as a percentage in (0, 100].
func (s *Session) Progress() float64 {
	return float64(s.index+1) / float64(len(s.questions)) * 100
}

// Finished reports whether the last question has been answered.
func (s *Session) Finished() bool {
	return s.finished
}

// Answer records the answer to the current question and moves to the next one.
// It returns true when the answered question was the last one.
func (s *Session) Answer(value string) (bool, error) {
	if s.finished {
		return true, ErrFinished
	}

	q := s.Current()
	if !q.HasOption(value) {
		return false, fmt.Errorf("%w: %q for question %d", ErrUnknownOption, value, q.Index)
	}
	s.answers[q.ID] = value

	if s.index == len(s.questions)-1 {
		s.finished = true
		return true, nil
	}
	s.direction = Forward
	s.index++
	return false, nil
}

// Prev moves back to the previous question.
// It returns false on the first question.
func (s *Session) Prev() bool {
	if s.index == 0 {
		return false
	}
	s.direction = Backward
	s.index--
	s.finished = false
	return true
}

// Answers returns a copy of the recorded answers keyed by question ID.
func (s *Session) Answers() map[int]string {
	return maps.Clone(s.answers)
}
