package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dgallion1/onboard/internal/domain"
)

func TestMemory_LatestEmpty(t *testing.T) {
	m := NewMemory[domain.Etiquette]()
	if _, err := m.Latest(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.DeleteLatest(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestMemory_ReplaceKeepsOnlyNewest(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[domain.WelcomeMessage]()

	first := domain.WelcomeMessage{Ceo: domain.Person{Name: "First"}}
	second := domain.WelcomeMessage{Ceo: domain.Person{Name: "Second"}}
	if _, err := m.Replace(ctx, first); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Replace(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := m.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Ceo.Name != "Second" {
		t.Errorf("expected Second, got %q", got.Ceo.Name)
	}

	// Replace dropped the first record, so one delete empties the store.
	if err := m.DeleteLatest(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemory_DeleteAll(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[domain.ContactDirectory]()
	m.Replace(ctx, domain.ContactDirectory{Contacts: []domain.Contact{{Name: "Ada"}}})

	if err := m.DeleteAll(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// Deleting an empty store is not an error.
	if err := m.DeleteAll(ctx); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestMemory_ConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[domain.OnboardingPlan]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Replace(ctx, domain.OnboardingPlan{Buddy: domain.Buddy{Details: "buddy"}})
			m.Latest(ctx)
		}()
	}
	wg.Wait()

	if len(m.records) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(m.records))
	}
}

func TestNewMemoryStores_AllKinds(t *testing.T) {
	s := NewMemoryStores()
	if s.LocalHire == nil || s.Onboarding == nil || s.Etiquette == nil || s.Welcome == nil || s.Contacts == nil {
		t.Fatalf("expected every store to be set, got %+v", s)
	}
}
