package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GeminiBaseURL is Gemini's OpenAI-compatible endpoint.
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultGeminiModel is used when provider gemini is selected without a model.
const DefaultGeminiModel = "gemini-2.0-flash"

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
type OpenAILLM struct {
	Model string
	Opts  []option.RequestOption
}

// OpenAIProvider builds OpenAILLM clients for any OpenAI-compatible endpoint.
type OpenAIProvider struct {
	Model       string
	BaseURL     string
	ValidateKey bool
	// HTTPClient overrides the SDK's default client; nil keeps the default.
	HTTPClient *http.Client
}

func NewOpenAIProviderFromConfig(cfg *LLMSettings) (*OpenAIProvider, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	model := cfg.Model
	baseURL := cfg.BaseURL
	switch cfg.Provider {
	case "gemini", "":
		if baseURL == "" {
			baseURL = GeminiBaseURL
		}
		if model == "" {
			model = DefaultGeminiModel
		}
	case "openai":
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url。
		if baseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
	if model == "" {
		return nil, errors.New("llm model is required")
	}
	return &OpenAIProvider{Model: model, BaseURL: baseURL, ValidateKey: cfg.ValidateKey}, nil
}

// Configure builds a client for apiKey. With ValidateKey set, the key is
// checked by listing models on the endpoint.
func (p *OpenAIProvider) Configure(ctx context.Context, apiKey string) (LLMClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}
	if p.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(p.HTTPClient))
	}

	if p.ValidateKey {
		client := openai.NewClient(opts...)
		if _, err := client.Models.List(ctx); err != nil {
			return nil, describeAPIError(err)
		}
	}
	return &OpenAILLM{Model: p.Model, Opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	var msgs []openai.ChatCompletionMessageParamUnion
	if prompt.System != "" {
		msgs = append(msgs, openai.SystemMessage(prompt.System))
	}
	msgs = append(msgs, openai.UserMessage(prompt.User))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: msgs,
	})
	if err != nil {
		return "", describeAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// describeAPIError 把 SDK 的错误压缩成一行，避免把整段请求/响应 dump 给用户。
func describeAPIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return fmt.Errorf("%d %s: %s", apiErr.StatusCode, http.StatusText(apiErr.StatusCode), apiErr.Message)
		}
		return fmt.Errorf("%d %s", apiErr.StatusCode, http.StatusText(apiErr.StatusCode))
	}
	return err
}
