// Package store persists onboarding records with single-latest-wins
// semantics: saving a record replaces every earlier record of its kind.
package store

import (
	"context"
	"errors"

	"github.com/dgallion1/onboard/internal/domain"
)

// ErrNotFound is returned when no record of a kind exists.
var ErrNotFound = errors.New("record not found")

// Latest stores the newest record of one kind.
type Latest[T any] interface {
	// Replace deletes all stored records and inserts rec, atomically.
	Replace(ctx context.Context, rec T) (T, error)
	// Latest returns the newest record or ErrNotFound.
	Latest(ctx context.Context) (T, error)
	DeleteAll(ctx context.Context) error
	// DeleteLatest removes the newest record; ErrNotFound if none.
	DeleteLatest(ctx context.Context) error
}

// Stores bundles one Latest store per record kind.
type Stores struct {
	LocalHire  Latest[domain.LocalHireInfo]
	Onboarding Latest[domain.OnboardingPlan]
	Etiquette  Latest[domain.Etiquette]
	Welcome    Latest[domain.WelcomeMessage]
	Contacts   Latest[domain.ContactDirectory]
}
