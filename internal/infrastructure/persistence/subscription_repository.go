package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/partkit/partkit/internal/domain/shared"
	"github.com/partkit/partkit/internal/domain/subscription"
	"github.com/partkit/partkit/internal/infrastructure/persistence/models"
)

// GormSubscriptionRepository implements subscription.Repository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// WithTx returns a new repository instance with the given transaction
func (r *GormSubscriptionRepository) WithTx(tx *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: tx}
}

// Add stores a subscription
func (r *GormSubscriptionRepository) Add(ctx context.Context, sub *subscription.Subscription) error {
	model := models.SubscriptionModelFromDomain(sub)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "part_number"}},
			DoNothing: true,
		}).
		Create(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrAlreadyExists
	}
	return nil
}

// Remove deletes a subscription by part number
func (r *GormSubscriptionRepository) Remove(ctx context.Context, partNumber string) error {
	result := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		Delete(&models.SubscriptionModel{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByPartNumber returns the subscription for a part
func (r *GormSubscriptionRepository) FindByPartNumber(ctx context.Context, partNumber string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all subscriptions ordered by part number
func (r *GormSubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	var rows []models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Order("part_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	subs := make([]*subscription.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, rows[i].ToDomain())
	}
	return subs, nil
}

// Update persists changes to an existing subscription
func (r *GormSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := models.SubscriptionModelFromDomain(sub)
	result := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("part_number = ?", sub.PartNumber).
		Updates(map[string]any{
			"generated_name": model.GeneratedName,
			"description":    model.Description,
			"last_synced_at": model.LastSyncedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of tracked parts
func (r *GormSubscriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Count(&count).Error
	return count, err
}
