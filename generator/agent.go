package generator

import (
	"context"
	"errors"
	"strings"
)

// Agent 负责 API key 的登记和アップサイクル案的生成。
// 会话状态由调用方持有，Agent 本身无状态。
type Agent struct {
	provider Provider
}

func NewAgent(provider Provider) (*Agent, error) {
	if provider == nil {
		return nil, errors.New("llm provider is required")
	}
	return &Agent{provider: provider}, nil
}

// Configure registers apiKey with the provider and returns the next state.
// A blank key leaves st untouched and makes no call.
func (a *Agent) Configure(ctx context.Context, st State, apiKey string) (State, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return st, ErrEmptyCredential
	}
	llm, err := a.provider.Configure(ctx, apiKey)
	if err != nil {
		return State{}, &ConfigurationError{Err: err}
	}
	return State{CredentialConfigured: true, LLM: llm}, nil
}

// Generate 在已配置的前提下调用一次模型，原样返回文本。
func (a *Agent) Generate(ctx context.Context, st State, itemName string) (string, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return "", ErrEmptyItem
	}
	if !st.CredentialConfigured || st.LLM == nil {
		return "", ErrNotConfigured
	}

	raw, err := st.LLM.Complete(ctx, BuildUpcyclePrompt(itemName))
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return raw, nil
}
