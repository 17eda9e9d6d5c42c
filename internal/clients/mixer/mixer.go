// Package mixer provides the mixer service the audio manager drives.
//
// A mixer exposes named float parameters (MasterVol, MaxMusicVol, ...). A cleared
// parameter falls back to whatever the mixer's own snapshot says, which callers
// observe as GetFloat returning ok=false.
package mixer

//go:generate mockgen -destination=mock/mock_mixer.go -package=mixermock github.com/KirkDiggler/rpg-gamekit/internal/clients/mixer Mixer

import (
	"context"
	"sync"
)

// Mixer is the exposed-parameter surface of an audio mixer
type Mixer interface {
	// SetFloat sets an exposed parameter
	SetFloat(ctx context.Context, param string, level float32) error

	// GetFloat reads a parameter; ok is false when it has never been set or was cleared
	GetFloat(ctx context.Context, param string) (level float32, ok bool, err error)

	// ClearFloat resets a parameter to the mixer default
	ClearFloat(ctx context.Context, param string) error
}

// InMemory is a process-local mixer
type InMemory struct {
	mu     sync.RWMutex
	params map[string]float32
}

// NewInMemory creates an empty in-memory mixer
func NewInMemory() *InMemory {
	return &InMemory{
		params: make(map[string]float32),
	}
}

// SetFloat sets an exposed parameter
func (m *InMemory) SetFloat(_ context.Context, param string, level float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params[param] = level
	return nil
}

// GetFloat reads a parameter
func (m *InMemory) GetFloat(_ context.Context, param string) (float32, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	level, ok := m.params[param]
	return level, ok, nil
}

// ClearFloat removes a parameter override
func (m *InMemory) ClearFloat(_ context.Context, param string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.params, param)
	return nil
}

var _ Mixer = (*InMemory)(nil)
