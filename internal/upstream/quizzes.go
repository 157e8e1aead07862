package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lernia/console-backend/internal/model"
)

// ListQuizzes fetches a page of quizzes, both teacher- and admin-created.
func (c *Client) ListQuizzes(ctx context.Context, page, limit int, search string) ([]model.Quiz, *model.Pagination, error) {
	var out struct {
		envelope
		Quizzes    []model.Quiz      `json:"quizzes"`
		Pagination *model.Pagination `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/quizzes", listQuery(page, limit, search), &out); err != nil {
		return nil, nil, err
	}
	return out.Quizzes, out.Pagination, nil
}

// CreateQuiz submits a new quiz.
func (c *Client) CreateQuiz(ctx context.Context, p model.QuizPayload) (model.Quiz, error) {
	var out struct {
		envelope
		Quiz model.Quiz `json:"quiz"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, c.adminBase, "/quizzes", p, &out); err != nil {
		return model.Quiz{}, err
	}
	return out.Quiz, nil
}

// UpdateQuiz submits quiz edits.
func (c *Client) UpdateQuiz(ctx context.Context, id string, p model.QuizPayload) (model.Quiz, error) {
	var out struct {
		envelope
		Quiz model.Quiz `json:"quiz"`
	}
	if err := c.sendJSON(ctx, http.MethodPut, c.adminBase, "/quizzes/"+id, p, &out); err != nil {
		return model.Quiz{}, err
	}
	return out.Quiz, nil
}

// DeleteQuiz removes a quiz.
func (c *Client) DeleteQuiz(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.adminBase, "/quizzes/"+id, nil, &out)
}

// QuizAttempts fetches the attempts listing for one quiz.
func (c *Client) QuizAttempts(ctx context.Context, id string, page, limit int) (model.QuizAttempts, error) {
	var out struct {
		envelope
		model.QuizAttempts
	}
	if err := c.getJSON(ctx, c.adminBase, "/quizzes/"+id+"/attempts", listQuery(page, limit, ""), &out); err != nil {
		return model.QuizAttempts{}, err
	}
	return out.QuizAttempts, nil
}

// QuizRankings fetches the server-computed leaderboard and statistics for
// one quiz. The console displays this verbatim.
func (c *Client) QuizRankings(ctx context.Context, id string, limit int) (model.QuizRankings, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out struct {
		envelope
		model.QuizRankings
	}
	if err := c.getJSON(ctx, c.adminBase, "/quizzes/"+id+"/rankings", q, &out); err != nil {
		return model.QuizRankings{}, err
	}
	return out.QuizRankings, nil
}
