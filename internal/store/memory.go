package store

import (
	"context"
	"sync"

	"github.com/dgallion1/onboard/internal/domain"
)

// Memory is an in-process Latest store, used without a database and in tests.
type Memory[T any] struct {
	mu      sync.Mutex
	records []T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{}
}

// NewMemoryStores returns in-memory stores for every record kind.
func NewMemoryStores() Stores {
	return Stores{
		LocalHire:  NewMemory[domain.LocalHireInfo](),
		Onboarding: NewMemory[domain.OnboardingPlan](),
		Etiquette:  NewMemory[domain.Etiquette](),
		Welcome:    NewMemory[domain.WelcomeMessage](),
		Contacts:   NewMemory[domain.ContactDirectory](),
	}
}

func (m *Memory[T]) Replace(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records[:0], rec)
	return rec, nil
}

func (m *Memory[T]) Latest(_ context.Context) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if len(m.records) == 0 {
		return zero, ErrNotFound
	}
	return m.records[len(m.records)-1], nil
}

func (m *Memory[T]) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

func (m *Memory[T]) DeleteLatest(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) == 0 {
		return ErrNotFound
	}
	m.records = m.records[:len(m.records)-1]
	return nil
}
