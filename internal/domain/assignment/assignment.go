package assignment

import (
	"fmt"
	"time"

	vo "rentora/internal/domain/assignment/valueobjects"
)

// Assignment links one staff member to one property for recurring
// inspection work. A property holds at most one non-terminal assignment;
// the repository enforces that invariant with a conditional write.
type Assignment struct {
	id                  uint
	staffID             uint
	propertyID          uint
	assignedByAdminID   uint
	status              vo.AssignmentStatus
	inspectionFrequency vo.InspectionFrequency
	nextInspectionAt    time.Time
	lastInspectionAt    *time.Time
	description         string
	instructions        string
	staffNotes          string
	completedDate       *time.Time
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewAssignment creates an assignment in the assigned state with the first
// inspection scheduled one frequency interval from now.
func NewAssignment(
	staffID, propertyID, assignedByAdminID uint,
	frequency vo.InspectionFrequency,
	description, instructions string,
	now time.Time,
) (*Assignment, error) {
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if assignedByAdminID == 0 {
		return nil, fmt.Errorf("assigning admin ID is required")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid inspection frequency: %s", frequency)
	}

	return &Assignment{
		staffID:             staffID,
		propertyID:          propertyID,
		assignedByAdminID:   assignedByAdminID,
		status:              vo.StatusAssigned,
		inspectionFrequency: frequency,
		nextInspectionAt:    frequency.Next(now),
		description:         description,
		instructions:        instructions,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructAssignment rebuilds an assignment from persistence.
func ReconstructAssignment(
	id, staffID, propertyID, assignedByAdminID uint,
	status vo.AssignmentStatus,
	frequency vo.InspectionFrequency,
	nextInspectionAt time.Time,
	lastInspectionAt *time.Time,
	description, instructions, staffNotes string,
	completedDate *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid assignment status: %s", status)
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid inspection frequency: %s", frequency)
	}

	return &Assignment{
		id:                  id,
		staffID:             staffID,
		propertyID:          propertyID,
		assignedByAdminID:   assignedByAdminID,
		status:              status,
		inspectionFrequency: frequency,
		nextInspectionAt:    nextInspectionAt,
		lastInspectionAt:    lastInspectionAt,
		description:         description,
		instructions:        instructions,
		staffNotes:          staffNotes,
		completedDate:       completedDate,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (a *Assignment) ID() uint                                   { return a.id }
func (a *Assignment) StaffID() uint                              { return a.staffID }
func (a *Assignment) PropertyID() uint                           { return a.propertyID }
func (a *Assignment) AssignedByAdminID() uint                    { return a.assignedByAdminID }
func (a *Assignment) Status() vo.AssignmentStatus                { return a.status }
func (a *Assignment) InspectionFrequency() vo.InspectionFrequency { return a.inspectionFrequency }
func (a *Assignment) NextInspectionAt() time.Time                { return a.nextInspectionAt }
func (a *Assignment) LastInspectionAt() *time.Time               { return a.lastInspectionAt }
func (a *Assignment) Description() string                        { return a.description }
func (a *Assignment) Instructions() string                       { return a.instructions }
func (a *Assignment) StaffNotes() string                         { return a.staffNotes }
func (a *Assignment) CompletedDate() *time.Time                  { return a.completedDate }
func (a *Assignment) Version() int                               { return a.version }
func (a *Assignment) CreatedAt() time.Time                       { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time                       { return a.updatedAt }

// SetID sets the assignment ID (only for persistence layer use).
func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Reassign updates an existing non-terminal assignment in place when the
// admin re-assigns the same staff member (idempotent re-assignment).
func (a *Assignment) Reassign(frequency vo.InspectionFrequency, description, instructions string, now time.Time) error {
	if a.status.IsTerminal() {
		return fmt.Errorf("cannot reassign a %s assignment", a.status)
	}
	if !frequency.IsValid() {
		return fmt.Errorf("invalid inspection frequency: %s", frequency)
	}

	a.inspectionFrequency = frequency
	a.nextInspectionAt = frequency.Next(now)
	if description != "" {
		a.description = description
	}
	if instructions != "" {
		a.instructions = instructions
	}
	a.touch()
	return nil
}

// Accept acknowledges the assignment.
func (a *Assignment) Accept() error {
	return a.transition(vo.StatusAccepted)
}

// Start begins the inspection work.
func (a *Assignment) Start() error {
	return a.transition(vo.StatusInProgress)
}

// Complete finishes the assignment and stamps the completion date.
func (a *Assignment) Complete() error {
	if err := a.transition(vo.StatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	a.completedDate = &now
	return nil
}

// Cancel terminates the assignment from any non-terminal state.
func (a *Assignment) Cancel() error {
	if a.status.IsTerminal() {
		return fmt.Errorf("cannot cancel a %s assignment", a.status)
	}
	a.status = vo.StatusCancelled
	a.touch()
	return nil
}

// RecordInspection stamps the inspection just filed and advances the next
// inspection time by one frequency interval.
func (a *Assignment) RecordInspection(now time.Time) error {
	if a.status.IsTerminal() {
		return fmt.Errorf("cannot record inspection on a %s assignment", a.status)
	}
	a.lastInspectionAt = &now
	a.nextInspectionAt = a.inspectionFrequency.Next(now)
	a.touch()
	return nil
}

// SetStaffNotes records free-form notes from the staff member.
func (a *Assignment) SetStaffNotes(notes string) {
	a.staffNotes = notes
	a.touch()
}

func (a *Assignment) transition(next vo.AssignmentStatus) error {
	if !a.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition assignment from %s to %s", a.status, next)
	}
	a.status = next
	a.touch()
	return nil
}

func (a *Assignment) touch() {
	a.updatedAt = time.Now()
	a.version++
}
