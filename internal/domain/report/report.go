package report

import (
	"fmt"
	"strings"
	"time"

	vo "rentora/internal/domain/report/valueobjects"
)

// Report is an inspection report. Staff submit one against an assignment,
// an admin may review it, and it is forwarded to the property's owner who
// acknowledges it.
//
// The owner is not captured at submission time: forwarding stamps the
// recipient because ownership may change between inspection and
// escalation.
type Report struct {
	id                     uint
	assignmentID           uint
	propertyID             uint
	staffID                uint
	condition              vo.PropertyCondition
	notes                  string
	maintenanceRecommended bool
	maintenanceDetails     string
	status                 vo.ReportStatus
	reviewedByAdminID      *uint
	reviewedAt             *time.Time
	forwardedToOwnerID     *uint
	forwardedAt            *time.Time
	acknowledged           bool
	acknowledgedAt         *time.Time
	submittedAt            time.Time
	version                int
	createdAt              time.Time
	updatedAt              time.Time
}

// NewReport creates a freshly submitted inspection report.
func NewReport(
	assignmentID, propertyID, staffID uint,
	condition vo.PropertyCondition,
	notes string,
	maintenanceRecommended bool,
	maintenanceDetails string,
	now time.Time,
) (*Report, error) {
	if assignmentID == 0 {
		return nil, fmt.Errorf("assignment ID is required")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("invalid property condition: %s", condition)
	}
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("inspection notes are required")
	}
	if maintenanceRecommended && strings.TrimSpace(maintenanceDetails) == "" {
		return nil, fmt.Errorf("maintenance details are required when maintenance is recommended")
	}

	return &Report{
		assignmentID:           assignmentID,
		propertyID:             propertyID,
		staffID:                staffID,
		condition:              condition,
		notes:                  notes,
		maintenanceRecommended: maintenanceRecommended,
		maintenanceDetails:     maintenanceDetails,
		status:                 vo.StatusSubmitted,
		submittedAt:            now,
		version:                1,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

// ReconstructReport rebuilds a report from persistence.
func ReconstructReport(
	id, assignmentID, propertyID, staffID uint,
	condition vo.PropertyCondition,
	notes string,
	maintenanceRecommended bool,
	maintenanceDetails string,
	status vo.ReportStatus,
	reviewedByAdminID *uint,
	reviewedAt *time.Time,
	forwardedToOwnerID *uint,
	forwardedAt *time.Time,
	acknowledged bool,
	acknowledgedAt *time.Time,
	submittedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("invalid property condition: %s", condition)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid report status: %s", status)
	}

	return &Report{
		id:                     id,
		assignmentID:           assignmentID,
		propertyID:             propertyID,
		staffID:                staffID,
		condition:              condition,
		notes:                  notes,
		maintenanceRecommended: maintenanceRecommended,
		maintenanceDetails:     maintenanceDetails,
		status:                 status,
		reviewedByAdminID:      reviewedByAdminID,
		reviewedAt:             reviewedAt,
		forwardedToOwnerID:     forwardedToOwnerID,
		forwardedAt:            forwardedAt,
		acknowledged:           acknowledged,
		acknowledgedAt:         acknowledgedAt,
		submittedAt:            submittedAt,
		version:                version,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

func (r *Report) ID() uint                         { return r.id }
func (r *Report) AssignmentID() uint               { return r.assignmentID }
func (r *Report) PropertyID() uint                 { return r.propertyID }
func (r *Report) StaffID() uint                    { return r.staffID }
func (r *Report) Condition() vo.PropertyCondition  { return r.condition }
func (r *Report) Notes() string                    { return r.notes }
func (r *Report) MaintenanceRecommended() bool     { return r.maintenanceRecommended }
func (r *Report) MaintenanceDetails() string       { return r.maintenanceDetails }
func (r *Report) Status() vo.ReportStatus          { return r.status }
func (r *Report) ReviewedByAdminID() *uint         { return r.reviewedByAdminID }
func (r *Report) ReviewedAt() *time.Time           { return r.reviewedAt }
func (r *Report) ForwardedToOwnerID() *uint        { return r.forwardedToOwnerID }
func (r *Report) ForwardedAt() *time.Time          { return r.forwardedAt }
func (r *Report) IsAcknowledged() bool             { return r.acknowledged }
func (r *Report) AcknowledgedAt() *time.Time       { return r.acknowledgedAt }
func (r *Report) SubmittedAt() time.Time           { return r.submittedAt }
func (r *Report) Version() int                     { return r.version }
func (r *Report) CreatedAt() time.Time             { return r.createdAt }
func (r *Report) UpdatedAt() time.Time             { return r.updatedAt }

// SetID sets the report ID (only for persistence layer use).
func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

// Review records an admin's review. Review is optional in the escalation
// chain; a submitted report may be forwarded without it.
func (r *Report) Review(adminID uint) error {
	if adminID == 0 {
		return fmt.Errorf("reviewing admin ID is required")
	}
	if !r.status.CanTransitionTo(vo.StatusReviewed) {
		return fmt.Errorf("cannot review a %s report", r.status)
	}
	now := time.Now()
	r.status = vo.StatusReviewed
	r.reviewedByAdminID = &adminID
	r.reviewedAt = &now
	r.touch()
	return nil
}

// ForwardTo escalates the report to the given owner. The caller resolves
// the property's current owner at forward time.
func (r *Report) ForwardTo(ownerID uint) error {
	if ownerID == 0 {
		return fmt.Errorf("owner ID is required")
	}
	if !r.status.CanTransitionTo(vo.StatusForwarded) {
		return fmt.Errorf("cannot forward a %s report", r.status)
	}
	now := time.Now()
	r.status = vo.StatusForwarded
	r.forwardedToOwnerID = &ownerID
	r.forwardedAt = &now
	r.touch()
	return nil
}

// Acknowledge marks a forwarded report as seen by its recipient. This is
// the terminal step of the escalation chain.
func (r *Report) Acknowledge() error {
	if r.status != vo.StatusForwarded {
		return fmt.Errorf("cannot acknowledge a %s report", r.status)
	}
	if r.acknowledged {
		return fmt.Errorf("report is already acknowledged")
	}
	now := time.Now()
	r.acknowledged = true
	r.acknowledgedAt = &now
	r.touch()
	return nil
}

func (r *Report) touch() {
	r.updatedAt = time.Now()
	r.version++
}
