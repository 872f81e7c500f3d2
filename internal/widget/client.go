package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/zhouzirui/vitrine/backend/internal/model/chat"
	"github.com/zhouzirui/vitrine/backend/internal/model/faq"
)

// Client talks to the landing page backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the backend rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Ask posts one question to /api/chatbot. The body is decoded whatever the
// status code, so an error payload yields an empty answer and a nil error.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(chat.Request{Question: question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chatbot", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot request failed: %w", err)
	}
	defer resp.Body.Close()

	var out chat.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chatbot response (status %d): %w", resp.StatusCode, err)
	}
	return out.Answer, nil
}

// FAQs fetches the FAQ list used for the greeting.
func (c *Client) FAQs(ctx context.Context) ([]faq.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/faq", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("faq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("faq request failed with status %d", resp.StatusCode)
	}

	var entries []faq.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode faq response: %w", err)
	}
	return entries, nil
}
