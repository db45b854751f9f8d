package generator

import "context"

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Provider registers a credential with the external text API and hands back a
// client bound to it. Configure fails when the credential is rejected.
type Provider interface {
	Configure(ctx context.Context, apiKey string) (LLMClient, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider    string
	Model       string
	BaseURL     string
	ValidateKey bool
}
