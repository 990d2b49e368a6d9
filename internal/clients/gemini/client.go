package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/idea-incubator/internal/logger"
	"github.com/yungbote/idea-incubator/internal/utils"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	maxAttempts = 3
)

// Client generates text from a prompt. Implementations retry transient
// failures internally; an error from Generate means the call is exhausted.
// Usage is nil when the provider did not report token counts.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, *Usage, error)
	Model() string
}

// Usage reports token consumption for one successful call.
type Usage struct {
	PromptTokens    int `json:"prompt_tokens"`
	CandidateTokens int `json:"candidate_tokens"`
	TotalTokens     int `json:"total_tokens"`
}

type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	BaseDelay time.Duration
}

type client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

func New(cfg Config, baseLog *logger.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 2 * time.Second
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  baseLog.With("client", "gemini"),
	}, nil
}

func NewFromEnv(baseLog *logger.Logger) (Client, error) {
	apiKey := utils.GetEnv("GEMINI_API_KEY", "", baseLog)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY is not set")
	}
	timeoutSeconds := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60, baseLog)
	return New(Config{
		APIKey:  apiKey,
		Model:   utils.GetEnv("GEMINI_MODEL", defaultModel, baseLog),
		BaseURL: utils.GetEnv("GEMINI_BASE_URL", defaultBaseURL, baseLog),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, baseLog)
}

func (c *client) Model() string {
	return c.cfg.Model
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate calls the model and returns the candidate text. It retries up to
// maxAttempts times with exponential backoff; an empty candidate counts as a
// failed attempt.
func (c *client) Generate(ctx context.Context, prompt string) (string, *Usage, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.cfg.BaseDelay * time.Duration(1<<(attempt-1))
			c.log.Warn("gemini call failed, retrying",
				"attempt", attempt, "delay", delay.String(), "error", lastErr)
			select {
			case <-ctx.Done():
				return "", nil, ctx.Err()
			case <-time.After(delay):
			}
		}
		text, usage, err := c.generateOnce(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		return text, usage, nil
	}
	return "", nil, fmt.Errorf("gemini: generate failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *client) generateOnce(ctx context.Context, prompt string) (string, *Usage, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("gemini: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("gemini: status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", nil, fmt.Errorf("gemini: api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", nil, fmt.Errorf("gemini: no candidates in response")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", nil, fmt.Errorf("gemini: empty candidate text")
	}

	var usage *Usage
	if parsed.UsageMetadata != nil {
		usage = &Usage{
			PromptTokens:    parsed.UsageMetadata.PromptTokenCount,
			CandidateTokens: parsed.UsageMetadata.CandidatesTokenCount,
			TotalTokens:     parsed.UsageMetadata.TotalTokenCount,
		}
	}
	return text, usage, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
