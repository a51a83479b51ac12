package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-quality-backend/internal/config"
	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
)

func newTestScorer(baseURL string) *OpenAIScorer {
	return NewOpenAIScorer(&config.Config{
		OpenAIBaseURL: baseURL,
		OpenAIAPIKey:  "test-key",
		OpenAIModel:   "gpt-3.5-turbo",
	})
}

func chatAnswer(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
}

const verdictJSON = `{
  "general_comment": "Confident call",
  "total_score": 7.5,
  "greeting": {"score": 9, "comment": "Warm opening"},
  "speech": {"score": 8, "comment": "Clear"},
  "initiative": {"score": 7, "comment": "Led well"},
  "need": {"score": 7, "comment": "Probed needs"},
  "offer": {"score": 8, "comment": "Concrete offer"},
  "objection": {"score": 6, "comment": "Partial"},
  "perseverance": {"score": 6, "comment": "One retry"},
  "advantages": {"score": 8, "comment": "Named terms"},
  "agreement": {"score": 9, "comment": "Closed next step"},
  "resume_manager": ["kept initiative"],
  "recommendations": ["address objections sooner"]
}`

func TestScoreParsesVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "call transcript here", req.Messages[1].Content)

		json.NewEncoder(w).Encode(chatAnswer(verdictJSON))
	}))
	defer server.Close()

	result, err := newTestScorer(server.URL).Score(context.Background(), "call transcript here")
	require.NoError(t, err)
	assert.Equal(t, "Confident call", result.GeneralComment)
	assert.InDelta(t, 7.5, result.TotalScore, 0.01)
	assert.Equal(t, 9, result.Greeting.Score)
	assert.Equal(t, "Closed next step", result.Agreement.Comment)
	assert.Equal(t, []string{"kept initiative"}, result.ManagerResume)
}

func TestScoreExtractsJSONFromProse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := "Here is the evaluation you asked for:\n```json\n" + verdictJSON + "\n```\nLet me know if you need more."
		json.NewEncoder(w).Encode(chatAnswer(wrapped))
	}))
	defer server.Close()

	result, err := newTestScorer(server.URL).Score(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, "Confident call", result.GeneralComment)
}

func TestScoreEmptyAnswerMeansRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	result, err := newTestScorer(server.URL).Score(context.Background(), "transcript")
	assert.Nil(t, result)
	assert.NoError(t, err)
}

func TestScoreMalformedAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatAnswer("I cannot evaluate this call."))
	}))
	defer server.Close()

	result, err := newTestScorer(server.URL).Score(context.Background(), "transcript")
	assert.Nil(t, result)
	assert.True(t, apperrors.IsMalformed(err))
}

func TestScoreServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	result, err := newTestScorer(server.URL).Score(context.Background(), "transcript")
	assert.Nil(t, result)
	assert.True(t, apperrors.IsExternalUnavailable(err))
}

func TestBuildSystemPromptNamesEveryDimension(t *testing.T) {
	prompt := BuildSystemPrompt()
	for _, d := range models.Dimensions() {
		assert.Contains(t, prompt, `"`+string(d)+`"`)
	}
	assert.Contains(t, prompt, "resume_manager")
	assert.Contains(t, prompt, "recommendations")
}
