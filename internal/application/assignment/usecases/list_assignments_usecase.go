package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/assignment"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

// AssignmentDTO is the assignment read model.
type AssignmentDTO struct {
	ID                  uint       `json:"id"`
	StaffID             uint       `json:"staff_id"`
	PropertyID          uint       `json:"property_id"`
	Status              string     `json:"status"`
	InspectionFrequency string     `json:"inspection_frequency"`
	NextInspectionAt    time.Time  `json:"next_inspection_at"`
	LastInspectionAt    *time.Time `json:"last_inspection_at,omitempty"`
	Description         string     `json:"description,omitempty"`
	Instructions        string     `json:"instructions,omitempty"`
	StaffNotes          string     `json:"staff_notes,omitempty"`
	CompletedDate       *time.Time `json:"completed_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toAssignmentDTO(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                  a.ID(),
		StaffID:             a.StaffID(),
		PropertyID:          a.PropertyID(),
		Status:              a.Status().String(),
		InspectionFrequency: a.InspectionFrequency().String(),
		NextInspectionAt:    a.NextInspectionAt(),
		LastInspectionAt:    a.LastInspectionAt(),
		Description:         a.Description(),
		Instructions:        a.Instructions(),
		StaffNotes:          a.StaffNotes(),
		CompletedDate:       a.CompletedDate(),
		CreatedAt:           a.CreatedAt(),
	}
}

// ListAssignmentsUseCase returns a staff member's assignments, nearest
// inspection first. Admins may inspect any staff member's workload.
type ListAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
}

func NewListAssignmentsUseCase(assignmentRepo assignment.Repository) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{assignmentRepo: assignmentRepo}
}

type ListAssignmentsCommand struct {
	Principal authorization.Principal
	// StaffID narrows to one staff member; admins only, staff always see
	// their own.
	StaffID uint
}

type ListAssignmentsResult struct {
	Assignments []AssignmentDTO
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, cmd ListAssignmentsCommand) (*ListAssignmentsResult, error) {
	staffID := cmd.Principal.ID
	switch {
	case cmd.Principal.Role.IsStaff():
		// always the caller's own workload
	case cmd.Principal.Role.IsAdmin():
		if cmd.StaffID == 0 {
			return nil, errors.NewValidationError("staff ID is required")
		}
		staffID = cmd.StaffID
	default:
		return nil, errors.NewForbiddenError("assignments are not visible to this role")
	}

	assignments, err := uc.assignmentRepo.FindByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		dtos = append(dtos, toAssignmentDTO(a))
	}
	return &ListAssignmentsResult{Assignments: dtos}, nil
}
