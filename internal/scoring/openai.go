package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"call-quality-backend/internal/config"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
)

// OpenAIScorer scores transcripts through a chat-completions endpoint
type OpenAIScorer struct {
	baseURL      string
	apiKey       string
	model        string
	httpClient   *http.Client
	systemPrompt string
	log          *logger.Logger
}

// NewOpenAIScorer creates a scorer from config
func NewOpenAIScorer(cfg *config.Config) *OpenAIScorer {
	return &OpenAIScorer{
		baseURL:      strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:       cfg.OpenAIAPIKey,
		model:        cfg.OpenAIModel,
		httpClient:   &http.Client{Timeout: 2 * time.Minute},
		systemPrompt: BuildSystemPrompt(),
		log:          logger.New().WithField("client", "scoring"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Score submits the transcript and parses the structured verdict. An answer
// with no usable content comes back as (nil, nil): retry under policy.
func (s *OpenAIScorer) Score(ctx context.Context, transcript string) (*Result, error) {
	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: s.systemPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: 0.5,
		TopP:        0.5,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ExternalUnavailableError{Service: "scoring", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &apperrors.ExternalUnavailableError{
			Service: "scoring",
			Cause:   fmt.Errorf("chat completion returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "scoring", Detail: err.Error()}
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		s.log.Debug("scoring answer empty")
		return nil, nil
	}

	return parseVerdict(parsed.Choices[0].Message.Content)
}

// parseVerdict extracts the JSON object from the model answer. Models often
// wrap the object in prose or code fences, so only the outermost braces are
// trusted.
func parseVerdict(content string) (*Result, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, &apperrors.MalformedResponseError{Service: "scoring", Detail: "no JSON object in answer"}
	}

	var result Result
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "scoring", Detail: err.Error()}
	}
	return &result, nil
}
