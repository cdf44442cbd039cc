package entities

// QuestionType is the answer format of a quiz question
type QuestionType string

// Question types
const (
	QuestionMultiple QuestionType = "MULTIPLE"
	QuestionOX       QuestionType = "OX"
	QuestionShort    QuestionType = "SHORT"
)

// PassingScore is the lowest passing quiz score
const PassingScore = 60

// Question is a normalized quiz question. Options is always set; it is empty
// for short-answer questions or when the server sent unreadable options.
type Question struct {
	QuestionNo int          `json:"questionNo"`
	QuestionID int64        `json:"questionId"`
	Question   string       `json:"question"`
	Type       QuestionType `json:"type"`
	Options    []string     `json:"options"`
}

// Quiz is a generated quiz for one book
type Quiz struct {
	QuizID    int64      `json:"quizId"`
	Questions []Question `json:"questions"`
}

// Answer is one submitted answer
type Answer struct {
	QuestionNo int    `json:"questionNo"`
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuizSubmission is the body of POST /quizzes/submit
type QuizSubmission struct {
	QuizID  int64    `json:"quizId"`
	Answers []Answer `json:"answers"`
}

// QuizResult is the graded submission
type QuizResult struct {
	Score     int `json:"score"`
	GainedExp int `json:"gainedExp"`
}

// Passed reports whether the score reaches PassingScore
func (r *QuizResult) Passed() bool {
	return r.Score >= PassingScore
}
