package mail

import (
	"context"
	"sync"
)

// MemoryProvider records messages instead of sending them. Test double.
type MemoryProvider struct {
	mu   sync.Mutex
	sent []Email
	err  error
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

// Fail makes every subsequent send return err.
func (p *MemoryProvider) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *MemoryProvider) SendEmail(ctx context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, *email)
	return nil
}

func (p *MemoryProvider) Name() string {
	return "memory"
}

// Sent returns a copy of everything recorded so far.
func (p *MemoryProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
