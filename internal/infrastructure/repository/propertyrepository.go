package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/property"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type PropertyRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
	logger logger.Interface
}

func NewPropertyRepository(database *gorm.DB, logger logger.Interface) property.Repository {
	return &PropertyRepositoryImpl{
		db:     database,
		mapper: mappers.NewPropertyMapper(),
		logger: logger,
	}
}

func (r *PropertyRepositoryImpl) Save(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create property", "error", err, "owner_id", p.OwnerID())
		return fmt.Errorf("failed to create property: %w", err)
	}

	return p.SetID(model.ID)
}

// Update writes the aggregate keyed on its previous version; losing a
// concurrent update surfaces as Conflict.
func (r *PropertyRepositoryImpl) Update(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PropertyModel{}).
		Where("id = ? AND version = ?", p.ID(), p.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update property", "error", result.Error, "property_id", p.ID())
		return fmt.Errorf("failed to update property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("property was modified concurrently")
	}

	return nil
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PropertyModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete property", "error", result.Error, "property_id", id)
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("property not found")
	}

	return nil
}

func (r *PropertyRepositoryImpl) FindByID(ctx context.Context, id uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("property not found")
		}
		r.logger.Errorw("failed to find property", "error", err, "property_id", id)
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PropertyRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	var propertyModels []*models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&propertyModels).Error; err != nil {
		r.logger.Errorw("failed to list properties by owner", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list properties by owner: %w", err)
	}

	return r.toDomainList(propertyModels)
}

func (r *PropertyRepositoryImpl) FindPending(ctx context.Context) ([]*property.Property, error) {
	return r.findByApprovalStatus(ctx, "pending")
}

func (r *PropertyRepositoryImpl) FindApproved(ctx context.Context) ([]*property.Property, error) {
	return r.findByApprovalStatus(ctx, "approved")
}

func (r *PropertyRepositoryImpl) findByApprovalStatus(ctx context.Context, status string) ([]*property.Property, error) {
	var propertyModels []*models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("approval_status = ?", status).Order("created_at DESC").Find(&propertyModels).Error; err != nil {
		r.logger.Errorw("failed to list properties by status", "error", err, "status", status)
		return nil, fmt.Errorf("failed to list properties by status: %w", err)
	}

	return r.toDomainList(propertyModels)
}

func (r *PropertyRepositoryImpl) toDomainList(propertyModels []*models.PropertyModel) ([]*property.Property, error) {
	properties := make([]*property.Property, 0, len(propertyModels))
	for _, model := range propertyModels {
		p, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map property %d: %w", model.ID, err)
		}
		properties = append(properties, p)
	}
	return properties, nil
}
