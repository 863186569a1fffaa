package quiz

// Option is a selectable answer of a question.
type Option struct {
	Label string
	Value string
}

// Question is a quiz question.
type Question struct {
	// ID is the identifier of the question, starting from 0.
	ID int

	// Index is the 1-based position shown to the user.
	Index int

	Title   string
	Options []Option
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}

// HasOption reports whether value is one of the option values of the question.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
