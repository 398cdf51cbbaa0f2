package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentora/internal/domain/assignment"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// terminalAssignmentStatuses mirrors AssignmentStatus.IsTerminal; the
// exclusive-insert predicate and bulk cancellation run in SQL and cannot
// call the domain method.
var terminalAssignmentStatuses = []string{"completed", "cancelled"}

type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
	logger logger.Interface
}

func NewAssignmentRepository(database *gorm.DB, logger logger.Interface) assignment.Repository {
	return &AssignmentRepositoryImpl{
		db:     database,
		mapper: mappers.NewAssignmentMapper(),
		logger: logger,
	}
}

// SaveExclusive inserts the assignment only when the property has no live
// assignment. The NOT EXISTS guard and the insert are one statement, so two
// concurrent assigns serialize on the row lock and the loser inserts nothing.
func (r *AssignmentRepositoryImpl) SaveExclusive(ctx context.Context, a *assignment.Assignment) error {
	model := r.mapper.ToModel(a)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Exec(`
		INSERT INTO staff_assignments
			(staff_id, property_id, assigned_by_admin_id, status, inspection_frequency,
			 next_inspection_at, last_inspection_at, description, instructions,
			 staff_notes, completed_date, version, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM staff_assignments
			WHERE property_id = ? AND status NOT IN ?
		)`,
		model.StaffID, model.PropertyID, model.AssignedByAdminID, model.Status,
		model.InspectionFrequency, model.NextInspectionAt, model.LastInspectionAt,
		model.Description, model.Instructions, model.StaffNotes, model.CompletedDate,
		model.Version, model.CreatedAt, model.UpdatedAt,
		model.PropertyID, terminalAssignmentStatuses,
	)
	if result.Error != nil {
		r.logger.Errorw("failed to create assignment", "error", result.Error, "property_id", a.PropertyID())
		return fmt.Errorf("failed to create assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("property already has an active assignment")
	}

	var id uint
	if err := tx.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error; err != nil {
		return fmt.Errorf("failed to read assignment id: %w", err)
	}

	return a.SetID(id)
}

func (r *AssignmentRepositoryImpl) Update(ctx context.Context, a *assignment.Assignment) error {
	model := r.mapper.ToModel(a)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.AssignmentModel{}).
		Where("id = ? AND version = ?", a.ID(), a.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update assignment", "error", result.Error, "assignment_id", a.ID())
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("assignment was modified concurrently")
	}

	return nil
}

func (r *AssignmentRepositoryImpl) FindByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		r.logger.Errorw("failed to find assignment", "error", err, "assignment_id", id)
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssignmentRepositoryImpl) FindByStaffID(ctx context.Context, staffID uint) ([]*assignment.Assignment, error) {
	var assignmentModels []*models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("staff_id = ?", staffID).Order("next_inspection_at").Find(&assignmentModels).Error; err != nil {
		r.logger.Errorw("failed to list assignments by staff", "error", err, "staff_id", staffID)
		return nil, fmt.Errorf("failed to list assignments by staff: %w", err)
	}

	return r.toDomainList(assignmentModels)
}

func (r *AssignmentRepositoryImpl) FindActiveByPropertyID(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("property_id = ? AND status NOT IN ?", propertyID, terminalAssignmentStatuses).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find active assignment", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssignmentRepositoryImpl) CancelActiveByStaffID(ctx context.Context, staffID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.AssignmentModel{}).
		Where("staff_id = ? AND status NOT IN ?", staffID, terminalAssignmentStatuses).
		Updates(map[string]any{
			"status":     "cancelled",
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to cancel assignments", "error", result.Error, "staff_id", staffID)
		return fmt.Errorf("failed to cancel assignments: %w", result.Error)
	}

	return nil
}

func (r *AssignmentRepositoryImpl) toDomainList(assignmentModels []*models.AssignmentModel) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		a, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map assignment %d: %w", model.ID, err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
