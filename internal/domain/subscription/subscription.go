package subscription

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/partkit/partkit/internal/domain/shared"
)

// Subscription is one part the account tracks with the catalog API. The
// upstream subscription is authoritative; this ledger mirrors it locally
// so list and sync work offline.
type Subscription struct {
	ID            uuid.UUID
	PartNumber    string
	GeneratedName string
	Description   string
	AddedAt       time.Time
	LastSyncedAt  *time.Time
}

// New creates a subscription for a part number.
func New(partNumber string) (*Subscription, error) {
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return nil, shared.NewDomainError("INVALID_PART_NUMBER", "Part number cannot be empty")
	}

	return &Subscription{
		ID:         uuid.New(),
		PartNumber: partNumber,
		AddedAt:    time.Now().UTC(),
	}, nil
}

// RecordSync stores the naming result of a sync pass.
func (s *Subscription) RecordSync(generatedName, description string, at time.Time) {
	s.GeneratedName = generatedName
	s.Description = description
	t := at.UTC()
	s.LastSyncedAt = &t
}
