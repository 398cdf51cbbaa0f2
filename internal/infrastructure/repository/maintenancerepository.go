package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/maintenance"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// terminalTicketStatuses mirrors TicketStatus.IsTerminal for the open-ticket
// query predicate.
var terminalTicketStatuses = []string{"completed", "cancelled"}

type MaintenanceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MaintenanceTicketMapper
	logger logger.Interface
}

func NewMaintenanceRepository(database *gorm.DB, logger logger.Interface) maintenance.Repository {
	return &MaintenanceRepositoryImpl{
		db:     database,
		mapper: mappers.NewMaintenanceTicketMapper(),
		logger: logger,
	}
}

func (r *MaintenanceRepositoryImpl) Save(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create maintenance ticket", "error", err, "property_id", t.PropertyID())
		return fmt.Errorf("failed to create maintenance ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *MaintenanceRepositoryImpl) Update(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.MaintenanceTicketModel{}).
		Where("id = ? AND version = ?", t.ID(), t.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update maintenance ticket", "error", result.Error, "ticket_id", t.ID())
		return fmt.Errorf("failed to update maintenance ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("maintenance ticket was modified concurrently")
	}

	return nil
}

func (r *MaintenanceRepositoryImpl) FindByID(ctx context.Context, id uint) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("maintenance ticket not found")
		}
		r.logger.Errorw("failed to find maintenance ticket", "error", err, "ticket_id", id)
		return nil, fmt.Errorf("failed to find maintenance ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaintenanceRepositoryImpl) FindByPropertyID(ctx context.Context, propertyID uint) ([]*maintenance.Ticket, error) {
	var ticketModels []*models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("property_id = ?", propertyID).Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list maintenance tickets by property", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to list maintenance tickets by property: %w", err)
	}

	return r.toDomainList(ticketModels)
}

func (r *MaintenanceRepositoryImpl) FindByStaffID(ctx context.Context, staffID uint) ([]*maintenance.Ticket, error) {
	var ticketModels []*models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("assigned_staff_id = ?", staffID).Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list maintenance tickets by staff", "error", err, "staff_id", staffID)
		return nil, fmt.Errorf("failed to list maintenance tickets by staff: %w", err)
	}

	return r.toDomainList(ticketModels)
}

func (r *MaintenanceRepositoryImpl) FindOpenByPropertyID(ctx context.Context, propertyID uint) ([]*maintenance.Ticket, error) {
	var ticketModels []*models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("property_id = ? AND status NOT IN ?", propertyID, terminalTicketStatuses).
		Order("created_at DESC").Find(&ticketModels).Error
	if err != nil {
		r.logger.Errorw("failed to list open maintenance tickets", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to list open maintenance tickets: %w", err)
	}

	return r.toDomainList(ticketModels)
}

func (r *MaintenanceRepositoryImpl) toDomainList(ticketModels []*models.MaintenanceTicketModel) ([]*maintenance.Ticket, error) {
	tickets := make([]*maintenance.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map maintenance ticket %d: %w", model.ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
