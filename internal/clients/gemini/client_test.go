package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/idea-incubator/internal/logger"
)

func testClient(t *testing.T, baseURL string) Client {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	c, err := New(Config{
		APIKey:    "test-key",
		Model:     "gemini-test",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		BaseDelay: time.Millisecond,
	}, log)
	require.NoError(t, err)
	return c
}

func candidateBody(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return body
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(candidateBody("recovered on third attempt"))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	text, _, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "recovered on third attempt", text)
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestGenerateGivesUpAfterThreeAttempts(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, _, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestGenerateTreatsEmptyTextAsFailure(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write(candidateBody("   "))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, _, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestGenerateTreatsNoCandidatesAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, _, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

func TestGenerateJoinsMultipleParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "first "},
					{"text": "second"},
				}}},
			},
		})
		w.Write(body)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	text, _, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "first second", text)
}

func TestGenerateReportsUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "answer"}}}},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     17,
				"candidatesTokenCount": 240,
				"totalTokenCount":      257,
			},
		})
		w.Write(body)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	text, usage, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "answer", text)
	require.NotNil(t, usage)
	require.Equal(t, 17, usage.PromptTokens)
	require.Equal(t, 240, usage.CandidateTokens)
	require.Equal(t, 257, usage.TotalTokens)
}

func TestGenerateWithoutUsageMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(candidateBody("answer"))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, usage, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Nil(t, usage)
}

func TestGenerateStopsWhenContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	log, err := logger.New("test")
	require.NoError(t, err)
	c, err := New(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		BaseDelay: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, genErr := c.Generate(ctx, "prompt")
	require.ErrorIs(t, genErr, context.DeadlineExceeded)
}

func TestNewRequiresAPIKey(t *testing.T) {
	log, err := logger.New("test")
	require.NoError(t, err)
	_, err = New(Config{}, log)
	require.Error(t, err)
}
