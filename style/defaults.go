package style

import (
	"sync"
)

// The process-wide defaults follow "last writer wins". Callers that need
// isolation use Push or With instead of Update.
var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns a copy of the process-wide defaults.
func Current() Params {
	mu.RLock()
	defer mu.RUnlock()
	return current.Clone()
}

// Update validates p and installs it as the process-wide defaults.
func Update(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	mu.Lock()
	current = p.Clone()
	mu.Unlock()
	return nil
}

// Reset restores the baseline defaults.
func Reset() {
	mu.Lock()
	current = Default()
	mu.Unlock()
}

// Scope is an active Push. Restore reinstalls the defaults that were in
// place before the Push.
type Scope struct {
	prev Params
	once sync.Once
}

// Push installs p as the process-wide defaults and remembers the previous
// ones. Nested scopes must be restored in reverse order.
func Push(p Params) (*Scope, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()
	s := &Scope{prev: current}
	current = p.Clone()
	return s, nil
}

// Restore reinstalls the saved defaults. Calling it more than once is a no-op.
func (s *Scope) Restore() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		mu.Lock()
		current = s.prev
		mu.Unlock()
	})
}

// With runs fn with p installed and restores the previous defaults when fn
// returns or panics.
func With(p Params, fn func() error) error {
	s, err := Push(p)
	if err != nil {
		return err
	}
	defer s.Restore()
	return fn()
}
