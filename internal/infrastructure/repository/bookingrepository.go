package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/booking"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// terminalBookingStatuses mirrors the terminal states of the booking
// lifecycle; everything else counts as live for deletion checks.
var terminalBookingStatuses = []string{"cancelled"}

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BookingMapper
	logger logger.Interface
}

func NewBookingRepository(database *gorm.DB, logger logger.Interface) booking.Repository {
	return &BookingRepositoryImpl{
		db:     database,
		mapper: mappers.NewBookingMapper(),
		logger: logger,
	}
}

func (r *BookingRepositoryImpl) Save(ctx context.Context, b *booking.Booking) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create booking", "error", err, "property_id", b.PropertyID())
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, b *booking.Booking) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.BookingModel{}).
		Where("id = ? AND version = ?", b.ID(), b.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update booking", "error", result.Error, "booking_id", b.ID())
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("booking was modified concurrently")
	}

	return nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var model models.BookingModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("booking not found")
		}
		r.logger.Errorw("failed to find booking", "error", err, "booking_id", id)
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BookingRepositoryImpl) FindByTenantID(ctx context.Context, tenantID uint) ([]*booking.Booking, error) {
	var bookingModels []*models.BookingModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&bookingModels).Error; err != nil {
		r.logger.Errorw("failed to list bookings by tenant", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list bookings by tenant: %w", err)
	}

	return r.toDomainList(bookingModels)
}

func (r *BookingRepositoryImpl) FindByPropertyID(ctx context.Context, propertyID uint) ([]*booking.Booking, error) {
	var bookingModels []*models.BookingModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ?", propertyID).Order("created_at DESC").Find(&bookingModels).Error; err != nil {
		r.logger.Errorw("failed to list bookings by property", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to list bookings by property: %w", err)
	}

	return r.toDomainList(bookingModels)
}

func (r *BookingRepositoryImpl) CountNonTerminalByPropertyID(ctx context.Context, propertyID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.BookingModel{}).
		Where("property_id = ? AND status NOT IN ?", propertyID, terminalBookingStatuses).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count live bookings", "error", err, "property_id", propertyID)
		return 0, fmt.Errorf("failed to count live bookings: %w", err)
	}
	return count, nil
}

func (r *BookingRepositoryImpl) toDomainList(bookingModels []*models.BookingModel) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(bookingModels))
	for _, model := range bookingModels {
		b, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map booking %d: %w", model.ID, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
