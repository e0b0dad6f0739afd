package mailer

import (
	"context"
	"errors"
	"sync"
)

// MockClient 可配置的邮件客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []Mail

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]Mail, 0),
	}
}

func (m *MockClient) Provider() string {
	return "mock"
}

func (m *MockClient) Send(ctx context.Context, mail Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, mail)

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock mail send failure")
	}

	return nil
}

// Sent 返回已记录的调用副本
func (m *MockClient) Sent() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Mail, len(m.Calls))
	copy(out, m.Calls)
	return out
}
