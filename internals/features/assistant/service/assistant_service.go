package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/features/assistant/dto"
)

// campusContext is prepended as a system turn so the assistant answers
// with campus-specific knowledge.
const campusContext = "You are the campus helpdesk assistant. Answer questions about " +
	"courses, attendance rules, fee payments, assignments and campus facilities. " +
	"Keep answers short and refer students to the department office when unsure."

var ErrAssistantNotConfigured = errors.New("assistant endpoint is not configured")

type AssistantService struct {
	Endpoint string
	APIKey   string
	Model    string
	Client   *http.Client
}

func NewAssistantService() *AssistantService {
	return &AssistantService{
		Endpoint: configs.GetEnv("ASSISTANT_ENDPOINT"),
		APIKey:   configs.GetEnv("ASSISTANT_API_KEY"),
		Model:    configs.GetEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model    string            `json:"model"`
	Messages []dto.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message dto.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Ask appends the prompt to the caller-supplied history, queries the
// completion endpoint and returns the reply with the updated history.
// The service itself holds no conversation state.
func (s *AssistantService) Ask(ctx context.Context, history []dto.ChatMessage, prompt string) (string, []dto.ChatMessage, error) {
	if s.Endpoint == "" {
		return "", nil, ErrAssistantNotConfigured
	}

	messages := make([]dto.ChatMessage, 0, len(history)+2)
	messages = append(messages, dto.ChatMessage{Role: "system", Content: campusContext})
	messages = append(messages, history...)
	messages = append(messages, dto.ChatMessage{Role: "user", Content: prompt})

	payload, err := json.Marshal(completionRequest{Model: s.Model, Messages: messages})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", nil, fmt.Errorf("assistant endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", nil, err
	}
	if len(parsed.Choices) == 0 {
		return "", nil, errors.New("assistant returned no choices")
	}

	reply := parsed.Choices[0].Message.Content
	updated := append(history,
		dto.ChatMessage{Role: "user", Content: prompt},
		dto.ChatMessage{Role: "assistant", Content: reply},
	)
	return reply, updated, nil
}
