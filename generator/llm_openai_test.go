package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI serves the two endpoints the provider touches.
func fakeOpenAI(t *testing.T, validKey, reply string, chatStatus int) (*httptest.Server, *int32) {
	t.Helper()
	var chatCalls int32
	mux := http.NewServeMux()
	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+validKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"API key not valid","type":"invalid_request_error","code":"invalid_api_key"}}`)
			return false
		}
		return true
	}
	mux.HandleFunc("GET /v1/models", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"object":"list","data":[{"id":"gemini-2.0-flash","object":"model","created":0,"owned_by":"google"}]}`)
	})
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&chatCalls, 1)
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if chatStatus != http.StatusOK {
			w.WriteHeader(chatStatus)
			_, _ = io.WriteString(w, `{"error":{"message":"quota exceeded","type":"rate_limit"}}`)
			return
		}
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			return
		}
		assert.Equal(t, "gemini-2.0-flash", body.Model)
		if assert.Len(t, body.Messages, 1) {
			assert.Equal(t, "user", body.Messages[0].Role)
		}

		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &chatCalls
}

func newTestProvider(srv *httptest.Server) *OpenAIProvider {
	return &OpenAIProvider{
		Model:       "gemini-2.0-flash",
		BaseURL:     srv.URL + "/v1/",
		ValidateKey: true,
		HTTPClient:  srv.Client(),
	}
}

func TestOpenAIProvider_ConfigureAndComplete(t *testing.T) {
	reply := "1. 方法：トートバッグに作り替える、エコ度：高\n"
	srv, calls := fakeOpenAI(t, "good", reply, http.StatusOK)
	p := newTestProvider(srv)

	llm, err := p.Configure(context.Background(), "good")
	require.NoError(t, err)

	text, err := llm.Complete(context.Background(), BuildUpcyclePrompt("古いジーンズ"))
	require.NoError(t, err)
	assert.Equal(t, reply, text)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestOpenAIProvider_ConfigureRejectsBadKey(t *testing.T) {
	srv, _ := fakeOpenAI(t, "good", "", http.StatusOK)
	p := newTestProvider(srv)

	llm, err := p.Configure(context.Background(), "bad")

	require.Error(t, err)
	assert.Nil(t, llm)
	assert.Contains(t, err.Error(), "401")
}

func TestOpenAIProvider_SkipValidation(t *testing.T) {
	srv, _ := fakeOpenAI(t, "good", "", http.StatusOK)
	p := newTestProvider(srv)
	p.ValidateKey = false

	llm, err := p.Configure(context.Background(), "bad")

	require.NoError(t, err)
	assert.NotNil(t, llm)
}

func TestOpenAILLM_CompleteErrorNoRetry(t *testing.T) {
	srv, calls := fakeOpenAI(t, "good", "", http.StatusTooManyRequests)
	p := newTestProvider(srv)
	llm, err := p.Configure(context.Background(), "good")
	require.NoError(t, err)

	_, err = llm.Complete(context.Background(), BuildUpcyclePrompt("空き瓶"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestNewOpenAIProviderFromConfig(t *testing.T) {
	p, err := NewOpenAIProviderFromConfig(&LLMSettings{Provider: "gemini", ValidateKey: true})
	require.NoError(t, err)
	assert.Equal(t, GeminiBaseURL, p.BaseURL)
	assert.Equal(t, DefaultGeminiModel, p.Model)
	assert.True(t, p.ValidateKey)

	p, err = NewOpenAIProviderFromConfig(&LLMSettings{Provider: "openai", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Empty(t, p.BaseURL)

	_, err = NewOpenAIProviderFromConfig(&LLMSettings{Provider: "openai"})
	assert.Error(t, err)

	_, err = NewOpenAIProviderFromConfig(&LLMSettings{Provider: "deepseek", Model: "deepseek-chat"})
	assert.Error(t, err)

	_, err = NewOpenAIProviderFromConfig(&LLMSettings{Provider: "claude"})
	assert.Error(t, err)

	_, err = NewOpenAIProviderFromConfig(nil)
	assert.Error(t, err)
}
