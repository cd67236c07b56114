package tts

import "context"

// MockSynthesizer returns canned bytes without calling a backend. Tests
// set Err to simulate backend failure.
type MockSynthesizer struct {
	Audio []byte
	Err   error
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return []byte("ID3 mock audio"), nil
}
