package questionnaire

import (
	"errors"

	"github.com/doeshing/dpc-go/internal/domain"
)

// ErrSessionDone is returned when answering past the last question.
var ErrSessionDone = errors.New("questionnaire already complete")

// Session is the state of one pass through the questionnaire. It is a plain
// value: methods return the next state and never mutate the receiver.
type Session struct {
	Step    int
	Answers domain.QuestionnaireAnswers
}

// NewSession starts an empty questionnaire.
func NewSession() Session {
	return Session{}
}

// Done reports whether every question has been answered.
func (s Session) Done() bool {
	return s.Step >= len(questions)
}

// Current returns the question awaiting an answer.
func (s Session) Current() (Question, bool) {
	if s.Done() || s.Step < 0 {
		return Question{}, false
	}
	return questions[s.Step], true
}

// Answer records raw for the current question and advances.
func (s Session) Answer(raw string) (Session, error) {
	q, ok := s.Current()
	if !ok {
		return s, ErrSessionDone
	}
	value, err := q.Parse(raw)
	if err != nil {
		return s, err
	}
	next := s
	assign(&next.Answers, q.ID, value)
	next.Step++
	return next, nil
}

// Back returns to the previous question and forgets its answer.
func (s Session) Back() Session {
	if s.Step == 0 {
		return s
	}
	prev := s
	prev.Step--
	unset(&prev.Answers, questions[prev.Step].ID)
	return prev
}

// Reset discards all answers.
func (s Session) Reset() Session {
	return NewSession()
}

// Progress returns the 1-based number of the current question and the total.
func (s Session) Progress() (int, int) {
	return min(s.Step+1, len(questions)), len(questions)
}
