package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/report"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type ReportRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
	logger logger.Interface
}

func NewReportRepository(database *gorm.DB, logger logger.Interface) report.Repository {
	return &ReportRepositoryImpl{
		db:     database,
		mapper: mappers.NewReportMapper(),
		logger: logger,
	}
}

func (r *ReportRepositoryImpl) Save(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create report", "error", err, "assignment_id", rep.AssignmentID())
		return fmt.Errorf("failed to create report: %w", err)
	}

	return rep.SetID(model.ID)
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, rep *report.Report) error {
	model := r.mapper.ToModel(rep)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ReportModel{}).
		Where("id = ? AND version = ?", rep.ID(), rep.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update report", "error", result.Error, "report_id", rep.ID())
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("report was modified concurrently")
	}

	return nil
}

func (r *ReportRepositoryImpl) FindByID(ctx context.Context, id uint) (*report.Report, error) {
	var model models.ReportModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("report not found")
		}
		r.logger.Errorw("failed to find report", "error", err, "report_id", id)
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReportRepositoryImpl) FindByAssignmentID(ctx context.Context, assignmentID uint) ([]*report.Report, error) {
	return r.find(ctx, "assignment_id = ?", assignmentID, "submitted_at DESC")
}

func (r *ReportRepositoryImpl) FindByPropertyID(ctx context.Context, propertyID uint) ([]*report.Report, error) {
	return r.find(ctx, "property_id = ?", propertyID, "submitted_at DESC")
}

func (r *ReportRepositoryImpl) FindByStaffID(ctx context.Context, staffID uint) ([]*report.Report, error) {
	return r.find(ctx, "staff_id = ?", staffID, "submitted_at DESC")
}

func (r *ReportRepositoryImpl) FindForwardedToOwner(ctx context.Context, ownerID uint) ([]*report.Report, error) {
	return r.find(ctx, "forwarded_to_owner_id = ?", ownerID, "forwarded_at DESC")
}

func (r *ReportRepositoryImpl) find(ctx context.Context, cond string, arg uint, order string) ([]*report.Report, error) {
	var reportModels []*models.ReportModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(cond, arg).Order(order).Find(&reportModels).Error; err != nil {
		r.logger.Errorw("failed to list reports", "error", err, "condition", cond)
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*report.Report, 0, len(reportModels))
	for _, model := range reportModels {
		rep, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map report %d: %w", model.ID, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
