package generator

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockLLM 一个简单的占位实现，便于本地调试和测试，不调用外部模型。
// Reply 为空时根据提示词生成固定格式的十条示例。
type MockLLM struct {
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	item := strings.TrimPrefix(strings.SplitN(prompt.User, "\n", 2)[0], "不要な商品の名前：")
	var sb strings.Builder
	for i := 1; i <= IdeaCount; i++ {
		level := EcoLevels[(i-1)%len(EcoLevels)]
		sb.WriteString(fmt.Sprintf("%d. 方法：%sを使ったリメイク案その%d、エコ度：%s\n", i, item, i, level))
	}
	return sb.String(), nil
}

// Calls reports how many times Complete ran.
func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt received.
func (m *MockLLM) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}

// MockProvider accepts any key except those listed in Reject and hands out LLM.
type MockProvider struct {
	LLM    *MockLLM
	Reject map[string]error

	mu    sync.Mutex
	calls int
}

func (p *MockProvider) Configure(_ context.Context, apiKey string) (LLMClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	if err, ok := p.Reject[apiKey]; ok {
		return nil, err
	}
	if p.LLM == nil {
		p.LLM = &MockLLM{}
	}
	return p.LLM, nil
}

// Calls reports how many times Configure ran.
func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
