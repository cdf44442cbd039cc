package quiz

import (
	"context"
	"slices"
	"strings"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
)

// OXChoices are the fixed choices of an OX question
var OXChoices = []string{"O", "X"}

// Session walks a reader through one quiz. Answering the last question
// submits the quiz.
type Session struct {
	svc     Service
	quiz    *entities.Quiz
	index   int
	answers []entities.Answer
	result  *SubmitOutput
}

// NewSession starts at the first question
func NewSession(svc Service, quiz *entities.Quiz) (*Session, error) {
	if svc == nil {
		return nil, errors.InvalidArgument("service is required")
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, errors.Client(errors.CodeFailedPrecondition, MsgNoQuestions)
	}
	return &Session{svc: svc, quiz: quiz}, nil
}

// Current returns the question being answered, or nil once graded
func (s *Session) Current() *entities.Question {
	if s.result != nil || s.index >= len(s.quiz.Questions) {
		return nil
	}
	return &s.quiz.Questions[s.index]
}

// Index is the 0-based position of the current question
func (s *Session) Index() int {
	return s.index
}

// Total is the number of questions
func (s *Session) Total() int {
	return len(s.quiz.Questions)
}

// Progress is the bar fill for the current question
func (s *Session) Progress() float64 {
	return progress.QuizPosition(s.index, s.Total())
}

// Last reports whether the current question is the final one
func (s *Session) Last() bool {
	return s.index == s.Total()-1
}

// Choices lists the selectable answers of the current question. Short
// answer questions have none.
func (s *Session) Choices() []string {
	q := s.Current()
	if q == nil {
		return nil
	}
	switch q.Type {
	case entities.QuestionOX:
		return OXChoices
	case entities.QuestionShort:
		return nil
	default:
		return q.Options
	}
}

// Answer records the answer to the current question and moves on. After the
// last question the quiz is submitted and the graded result returned; until
// then the result is nil. A failed submission keeps the session on the last
// question so the answer can be sent again.
func (s *Session) Answer(ctx context.Context, answer string) (*SubmitOutput, error) {
	q := s.Current()
	if q == nil {
		return nil, errors.FailedPrecondition("quiz is already graded")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgAnswerMissing)
	}
	if choices := s.Choices(); len(choices) > 0 && !slices.Contains(choices, answer) {
		return nil, errors.Client(errors.CodeInvalidArgument, MsgAnswerInvalid)
	}

	s.answers = append(s.answers, entities.Answer{
		QuestionNo: q.QuestionNo,
		QuestionID: q.QuestionID,
		Answer:     answer,
	})

	if !s.Last() {
		s.index++
		return nil, nil
	}

	out, err := s.svc.Submit(ctx, &SubmitInput{QuizID: s.quiz.QuizID, Answers: s.Answers()})
	if err != nil {
		s.answers = s.answers[:len(s.answers)-1]
		return nil, err
	}
	s.result = out
	return out, nil
}

// Answers returns a copy of the answers given so far
func (s *Session) Answers() []entities.Answer {
	out := make([]entities.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result returns the graded result, or nil before submission
func (s *Session) Result() *SubmitOutput {
	return s.result
}

// Reset starts the same quiz over
func (s *Session) Reset() {
	s.index = 0
	s.answers = nil
	s.result = nil
}
