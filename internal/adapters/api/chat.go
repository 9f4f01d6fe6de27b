package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

type sendMessageRequest struct {
	Message string `json:"message"`
}

type chatReplyResponse struct {
	Response    string   `json:"response"`
	Intent      string   `json:"intent"`
	Sentiment   string   `json:"sentiment"`
	Suggestions []string `json:"suggestions"`
}

type historyResponse struct {
	Messages []turnSchema `json:"messages"`
}

type turnSchema struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Intent    string `json:"intent"`
	Sentiment string `json:"sentiment"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) SendMessage(ctx context.Context, message string) (domain.ChatReply, error) {
	var resp chatReplyResponse
	if err := c.do(ctx, http.MethodPost, "/chat/message", nil, sendMessageRequest{Message: message}, &resp, true); err != nil {
		return domain.ChatReply{}, fmt.Errorf("send message: %w", err)
	}

	return domain.ChatReply{
		Response:    resp.Response,
		Intent:      resp.Intent,
		Sentiment:   resp.Sentiment,
		Suggestions: resp.Suggestions,
	}, nil
}

func (c *Client) History(ctx context.Context, limit int) ([]domain.ConversationTurn, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "/chat/history", query, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	turns := make([]domain.ConversationTurn, 0, len(resp.Messages))
	for _, entry := range resp.Messages {
		turns = append(turns, domain.ConversationTurn{
			Message:   entry.Message,
			Response:  entry.Response,
			Intent:    entry.Intent,
			Sentiment: entry.Sentiment,
			Timestamp: entry.Timestamp,
		})
	}

	return turns, nil
}

func (c *Client) ClearHistory(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/chat/history", nil, nil, nil, true); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	return nil
}
