package quiz

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// LoadInput defines the request for loading a quiz
type LoadInput struct {
	ISBN string
}

// LoadOutput defines the response for loading a quiz
type LoadOutput struct {
	Quiz *entities.Quiz
}

// SubmitInput defines the request for grading a quiz
type SubmitInput struct {
	QuizID  int64
	Answers []entities.Answer
}

// SubmitOutput defines the response for grading a quiz
type SubmitOutput struct {
	Result *entities.QuizResult
	Passed bool
}
