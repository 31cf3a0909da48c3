package exitrequest

import (
	"time"

	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Assignment is the scheduled duty an exit request is raised against.
type Assignment struct {
	ID        uuid.UUID
	UnitID    uuid.UUID
	BaseName  string
	RouteCode string
	Status    AssignmentStatus
	ExitID    *uuid.UUID
	Crew      Roster
}

func (a *Assignment) CheckSchedulable() error {
	if a.Status != AssignmentScheduled {
		return errs.WithResource(ErrAssignmentNotReady, "assignment", a.ID.String())
	}
	return nil
}

const ExitStatusActive = "ACTIVE"

// Exit is the record created when a request is approved.
type Exit struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	UnitID       uuid.UUID
	Reading      Reading
	Status       string
	RouteCode    string
	Crew         Roster
	StartedAt    time.Time
}

func NewExit(a *Assignment, r *Request, now time.Time) *Exit {
	crew := make(Roster, len(a.Crew))
	copy(crew, a.Crew)
	return &Exit{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		UnitID:       a.UnitID,
		Reading:      r.Reading(),
		Status:       ExitStatusActive,
		RouteCode:    a.RouteCode,
		Crew:         crew,
		StartedAt:    now,
	}
}
