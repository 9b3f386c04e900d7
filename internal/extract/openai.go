package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultModel is the multimodal model used for name extraction.
	DefaultModel = "gpt-4o"

	// DefaultBaseURL is the OpenAI-compatible API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds the otherwise open-ended inference call.
	DefaultTimeout = 60 * time.Second

	maxResponseTokens = 1000
)

// OpenAIEngine extracts attendee names with a vision-capable chat model.
type OpenAIEngine struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *logrus.Entry
}

// NewOpenAIEngine creates an engine authenticated with apiKey. Empty model,
// baseURL, or timeout select the defaults.
func NewOpenAIEngine(apiKey, model, baseURL string, timeout time.Duration) *OpenAIEngine {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIEngine{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logging.NewLogger("extract-openai"),
	}
}

func (e *OpenAIEngine) Name() string { return "openai" }

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Extract sends the image with the fixed participant prompt and returns the
// model's newline-separated name list. All failures wrap ErrService (or
// ErrTimeout on deadline expiry); the API key is never included in errors or
// logs.
func (e *OpenAIEngine) Extract(ctx context.Context, in Input) (Result, error) {
	if e.apiKey == "" {
		return Result{}, fmt.Errorf("%w: API key is not configured", ErrService)
	}

	format := in.Format
	if format == "" {
		format = ImageFormatPNG
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", format, base64.StdEncoding.EncodeToString(in.Image))

	payload := chatRequest{
		Model: e.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: ParticipantPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
		MaxTokens: maxResponseTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to encode request: %v", ErrService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	e.logger.WithFields(logrus.Fields{
		"model":       e.model,
		"image_bytes": len(in.Image),
	}).Debug("Sending extraction request")

	resp, err := e.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			return Result{}, fmt.Errorf("%w after %s", ErrTimeout, e.client.Timeout)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to read response: %v", ErrService, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Result{}, fmt.Errorf("%w: malformed response (HTTP %d)", ErrService, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return Result{}, fmt.Errorf("%w: %s (HTTP %d)", ErrService, parsed.Error.Message, resp.StatusCode)
		}
		return Result{}, fmt.Errorf("%w: HTTP %d", ErrService, resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: response contained no choices", ErrService)
	}

	return Result{RawText: strings.TrimSpace(parsed.Choices[0].Message.Content)}, nil
}

func isClientTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// MaskKey renders a credential as a short masked suffix for display, e.g.
// "...a1b2". Keys too short to mask safely render as "****".
func MaskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "..." + key[len(key)-4:]
}
