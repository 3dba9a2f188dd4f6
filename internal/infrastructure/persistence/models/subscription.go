package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/partkit/partkit/internal/domain/subscription"
)

// SubscriptionModel is the persistence mapping for a tracked part.
type SubscriptionModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	PartNumber    string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	GeneratedName string     `gorm:"type:varchar(200)"`
	Description   string     `gorm:"type:text"`
	AddedAt       time.Time  `gorm:"not null"`
	LastSyncedAt  *time.Time `gorm:"index"`
}

// TableName returns the database table name
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts the model to a domain subscription
func (m *SubscriptionModel) ToDomain() *subscription.Subscription {
	return &subscription.Subscription{
		ID:            m.ID,
		PartNumber:    m.PartNumber,
		GeneratedName: m.GeneratedName,
		Description:   m.Description,
		AddedAt:       m.AddedAt,
		LastSyncedAt:  m.LastSyncedAt,
	}
}

// SubscriptionModelFromDomain converts a domain subscription to its model
func SubscriptionModelFromDomain(s *subscription.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:            s.ID,
		PartNumber:    s.PartNumber,
		GeneratedName: s.GeneratedName,
		Description:   s.Description,
		AddedAt:       s.AddedAt,
		LastSyncedAt:  s.LastSyncedAt,
	}
}
