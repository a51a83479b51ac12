package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
)

// WhisperClient talks to a self-hosted whisper ASR service. The recording is
// posted as multipart and the verbose JSON answer carries the text and the
// segment timeline.
type WhisperClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewWhisperClient creates a whisper engine client
func NewWhisperClient(baseURL string) *WhisperClient {
	return &WhisperClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// transcription of a long call can take minutes
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		log:        logger.New().WithField("client", "whisper"),
	}
}

type whisperResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		ID    int     `json:"id"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs speech-to-text over one stored recording
func (c *WhisperClient) Transcribe(ctx context.Context, audioPath, language string) (*Result, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio_file", filepath.Base(audioPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("task", "transcribe")
	params.Set("language", language)
	params.Set("output", "json")
	endpoint := c.baseURL + "/asr?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.WithField("file", filepath.Base(audioPath)).Info("transcription started")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ExternalUnavailableError{Service: "whisper", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &apperrors.ExternalUnavailableError{
			Service: "whisper",
			Cause:   fmt.Errorf("asr returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		}
	}

	var parsed whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "whisper", Detail: err.Error()}
	}

	result := &Result{Text: parsed.Text}
	for _, s := range parsed.Segments {
		result.Segments = append(result.Segments, models.TranscriptSegment{
			ID:    s.ID,
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}

	c.log.WithField("file", filepath.Base(audioPath)).Info("transcription finished")
	return result, nil
}
