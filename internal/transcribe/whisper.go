package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"minutify/internal/contextutil"
	"minutify/internal/ingest"
)

// WhisperClient transcribes audio through an OpenAI-compatible
// /v1/audio/transcriptions endpoint (whisper.cpp server, faster-whisper
// server or the OpenAI API). It is built once and shared across requests.
type WhisperClient struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewWhisperClient creates a new transcription client.
func NewWhisperClient(baseURL, apiKey, model string) *WhisperClient {
	return &WhisperClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  http.DefaultClient,
	}
}

// verboseSegment is one utterance of a verbose_json response.
type verboseSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// VerboseResponse is the verbose_json transcription response.
type VerboseResponse struct {
	Language string           `json:"language"`
	Duration float64          `json:"duration"`
	Text     string           `json:"text"`
	Segments []verboseSegment `json:"segments"`
}

// Transcribe uploads the audio file and returns its timed utterances.
func (c *WhisperClient) Transcribe(ctx context.Context, audioPath string) (ingest.Transcript, error) {
	logger := contextutil.LoggerFromContext(ctx)

	f, err := os.Open(audioPath)
	if err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to open audio: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"model":                     c.Model,
		"response_format":           "verbose_json",
		"timestamp_granularities[]": "segment",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return ingest.Transcript{}, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to close form: %w", err)
	}

	url := fmt.Sprintf("%s/v1/audio/transcriptions", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return ingest.Transcript{}, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var verbose VerboseResponse
	if err := json.NewDecoder(resp.Body).Decode(&verbose); err != nil {
		return ingest.Transcript{}, fmt.Errorf("failed to decode response: %w", err)
	}

	transcript := ingest.Transcript{
		Duration: verbose.Duration,
		Language: verbose.Language,
	}
	if transcript.Language == "" {
		transcript.Language = "unknown"
	}
	for _, s := range verbose.Segments {
		transcript.Utterances = append(transcript.Utterances, ingest.Utterance{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}
	// Servers that ignore response_format return only the text.
	if len(verbose.Segments) == 0 && verbose.Text != "" {
		transcript.Utterances = []ingest.Utterance{{Text: verbose.Text, End: verbose.Duration}}
	}

	logger.DebugContext(ctx, "transcription received", "utterances", len(transcript.Utterances), "duration", transcript.Duration, "language", transcript.Language)
	return transcript, nil
}
