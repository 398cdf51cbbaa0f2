package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/subscription"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(database *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Save(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "property_id", s.PropertyID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", s.ID(), s.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", s.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("subscription was modified concurrently")
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) FindByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		r.logger.Errorw("failed to find subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by owner", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list subscriptions by owner: %w", err)
	}

	subscriptions := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		s, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription %d: %w", model.ID, err)
		}
		subscriptions = append(subscriptions, s)
	}
	return subscriptions, nil
}

func (r *SubscriptionRepositoryImpl) FindActiveByPropertyID(ctx context.Context, propertyID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ? AND status = ?", propertyID, "active").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find active subscription", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
