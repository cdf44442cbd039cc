package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

// wireQuestion is a question as sent by the server. Options arrive either as
// a list or as a JSON-encoded string.
type wireQuestion struct {
	QuestionNo  int                   `json:"questionNo"`
	QuestionID  int64                 `json:"questionId"`
	Question    string                `json:"question"`
	Type        entities.QuestionType `json:"type"`
	Options     []string              `json:"options"`
	OptionsJSON string                `json:"optionsJson"`
}

type wireQuiz struct {
	QuizID    int64          `json:"quizId"`
	Questions []wireQuestion `json:"questions"`
}

func (c *client) GetQuiz(ctx context.Context, isbn string) (*entities.Quiz, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, errors.InvalidArgument("isbn cannot be empty")
	}

	var wire wireQuiz
	ok, err := c.call(ctx, &request{method: http.MethodGet, path: "/quizzes/" + url.PathEscape(isbn)}, &wire)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("no quiz for %s", isbn)
	}

	return normalizeQuiz(&wire, c.logger), nil
}

func (c *client) SubmitQuiz(ctx context.Context, input *entities.QuizSubmission) (*entities.QuizResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out entities.QuizResult
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/quizzes/submit", body: input}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Internal("quiz submission returned no result")
	}
	return &out, nil
}

func normalizeQuiz(wire *wireQuiz, logger *zap.Logger) *entities.Quiz {
	quiz := &entities.Quiz{
		QuizID:    wire.QuizID,
		Questions: make([]entities.Question, len(wire.Questions)),
	}
	for i, q := range wire.Questions {
		quiz.Questions[i] = entities.Question{
			QuestionNo: q.QuestionNo,
			QuestionID: q.QuestionID,
			Question:   q.Question,
			Type:       q.Type,
			Options:    normalizeOptions(wire.QuizID, &q, logger),
		}
	}
	return quiz
}

// normalizeOptions never fails; unreadable options become an empty list
func normalizeOptions(quizID int64, q *wireQuestion, logger *zap.Logger) []string {
	if q.Options != nil {
		return q.Options
	}

	encoded := strings.TrimSpace(q.OptionsJSON)
	if encoded == "" {
		return []string{}
	}

	var options []string
	if err := json.Unmarshal([]byte(encoded), &options); err != nil || options == nil {
		logger.Warn("unreadable quiz options",
			zap.Int64("quiz_id", quizID),
			zap.Int64("question_id", q.QuestionID),
			zap.Error(err))
		return []string{}
	}
	return options
}
