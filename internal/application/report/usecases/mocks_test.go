package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/assignment"
	"rentora/internal/domain/entitlement"
	propertyvo "rentora/internal/domain/property/valueobjects"
	"rentora/internal/domain/report"
)

type mockReportRepository struct {
	SaveFunc                 func(ctx context.Context, r *report.Report) error
	UpdateFunc               func(ctx context.Context, r *report.Report) error
	FindByIDFunc             func(ctx context.Context, id uint) (*report.Report, error)
	FindByAssignmentIDFunc   func(ctx context.Context, assignmentID uint) ([]*report.Report, error)
	FindByPropertyIDFunc     func(ctx context.Context, propertyID uint) ([]*report.Report, error)
	FindByStaffIDFunc        func(ctx context.Context, staffID uint) ([]*report.Report, error)
	FindForwardedToOwnerFunc func(ctx context.Context, ownerID uint) ([]*report.Report, error)
}

func (m *mockReportRepository) Save(ctx context.Context, r *report.Report) error {
	return m.SaveFunc(ctx, r)
}

func (m *mockReportRepository) Update(ctx context.Context, r *report.Report) error {
	return m.UpdateFunc(ctx, r)
}

func (m *mockReportRepository) FindByID(ctx context.Context, id uint) (*report.Report, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockReportRepository) FindByAssignmentID(ctx context.Context, assignmentID uint) ([]*report.Report, error) {
	return m.FindByAssignmentIDFunc(ctx, assignmentID)
}

func (m *mockReportRepository) FindByPropertyID(ctx context.Context, propertyID uint) ([]*report.Report, error) {
	return m.FindByPropertyIDFunc(ctx, propertyID)
}

func (m *mockReportRepository) FindByStaffID(ctx context.Context, staffID uint) ([]*report.Report, error) {
	return m.FindByStaffIDFunc(ctx, staffID)
}

func (m *mockReportRepository) FindForwardedToOwner(ctx context.Context, ownerID uint) ([]*report.Report, error) {
	return m.FindForwardedToOwnerFunc(ctx, ownerID)
}

type mockAssignmentRepository struct {
	SaveExclusiveFunc          func(ctx context.Context, a *assignment.Assignment) error
	UpdateFunc                 func(ctx context.Context, a *assignment.Assignment) error
	FindByIDFunc               func(ctx context.Context, id uint) (*assignment.Assignment, error)
	FindByStaffIDFunc          func(ctx context.Context, staffID uint) ([]*assignment.Assignment, error)
	FindActiveByPropertyIDFunc func(ctx context.Context, propertyID uint) (*assignment.Assignment, error)
	CancelActiveByStaffIDFunc  func(ctx context.Context, staffID uint) error
}

func (m *mockAssignmentRepository) SaveExclusive(ctx context.Context, a *assignment.Assignment) error {
	return m.SaveExclusiveFunc(ctx, a)
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	return m.UpdateFunc(ctx, a)
}

func (m *mockAssignmentRepository) FindByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockAssignmentRepository) FindByStaffID(ctx context.Context, staffID uint) ([]*assignment.Assignment, error) {
	return m.FindByStaffIDFunc(ctx, staffID)
}

func (m *mockAssignmentRepository) FindActiveByPropertyID(ctx context.Context, propertyID uint) (*assignment.Assignment, error) {
	return m.FindActiveByPropertyIDFunc(ctx, propertyID)
}

func (m *mockAssignmentRepository) CancelActiveByStaffID(ctx context.Context, staffID uint) error {
	return m.CancelActiveByStaffIDFunc(ctx, staffID)
}

type mockCoordinator struct {
	RecordInspectionOutcomeFunc func(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error
	AttachStaffToPropertyFunc   func(ctx context.Context, propertyID, staffID uint) error
	DetachStaffFromPropertyFunc func(ctx context.Context, propertyID, staffID uint) error
	ResolveCurrentOwnerFunc     func(ctx context.Context, propertyID uint) (uint, error)
	ApplySubscriptionFunc       func(ctx context.Context, propertyID uint, tier entitlement.Tier) error
	ClearSubscriptionFunc       func(ctx context.Context, propertyID uint) error
	FlagUrgentMaintenanceFunc   func(ctx context.Context, propertyID uint) error
}

func (m *mockCoordinator) RecordInspectionOutcome(ctx context.Context, propertyID uint, condition propertyvo.Condition, inspectedAt time.Time, nextInspectionAt *time.Time) error {
	return m.RecordInspectionOutcomeFunc(ctx, propertyID, condition, inspectedAt, nextInspectionAt)
}

func (m *mockCoordinator) AttachStaffToProperty(ctx context.Context, propertyID, staffID uint) error {
	return m.AttachStaffToPropertyFunc(ctx, propertyID, staffID)
}

func (m *mockCoordinator) DetachStaffFromProperty(ctx context.Context, propertyID, staffID uint) error {
	return m.DetachStaffFromPropertyFunc(ctx, propertyID, staffID)
}

func (m *mockCoordinator) ResolveCurrentOwner(ctx context.Context, propertyID uint) (uint, error) {
	return m.ResolveCurrentOwnerFunc(ctx, propertyID)
}

func (m *mockCoordinator) ApplySubscription(ctx context.Context, propertyID uint, tier entitlement.Tier) error {
	return m.ApplySubscriptionFunc(ctx, propertyID, tier)
}

func (m *mockCoordinator) ClearSubscription(ctx context.Context, propertyID uint) error {
	return m.ClearSubscriptionFunc(ctx, propertyID)
}

func (m *mockCoordinator) FlagUrgentMaintenance(ctx context.Context, propertyID uint) error {
	return m.FlagUrgentMaintenanceFunc(ctx, propertyID)
}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
