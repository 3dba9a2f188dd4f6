package subscription

import "context"

// Repository persists the local subscription ledger.
type Repository interface {
	// Add stores a subscription. Adding an already tracked part number
	// returns shared.ErrAlreadyExists.
	Add(ctx context.Context, sub *Subscription) error

	// Remove deletes a subscription by part number. Removing an
	// untracked part returns shared.ErrNotFound.
	Remove(ctx context.Context, partNumber string) error

	// FindByPartNumber returns the subscription for a part, or
	// shared.ErrNotFound.
	FindByPartNumber(ctx context.Context, partNumber string) (*Subscription, error)

	// List returns all subscriptions ordered by part number.
	List(ctx context.Context) ([]*Subscription, error)

	// Update persists changes to an existing subscription.
	Update(ctx context.Context, sub *Subscription) error

	// Count returns the number of tracked parts.
	Count(ctx context.Context) (int64, error)
}
