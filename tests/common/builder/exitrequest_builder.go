//go:build unit || e2e

package builder

import (
	"time"

	"fieldsync/internal/domain/exitrequest"
	reqdto "fieldsync/internal/handler/dto/request"

	"github.com/google/uuid"
)

type AssignmentBuilder struct {
	ID        uuid.UUID
	UnitID    uuid.UUID
	RouteCode string
	Status    exitrequest.AssignmentStatus
	Crew      exitrequest.Roster
}

// NewAssignmentBuilder starts from a scheduled assignment with a driver and a commander.
func NewAssignmentBuilder() *AssignmentBuilder {
	return &AssignmentBuilder{
		ID:        uuid.New(),
		UnitID:    uuid.New(),
		RouteCode: "CA-9-NORTH",
		Status:    exitrequest.AssignmentScheduled,
		Crew: exitrequest.Roster{
			{UserID: uuid.New(), Role: exitrequest.CrewDriver},
			{UserID: uuid.New(), Role: exitrequest.CrewCommander},
		},
	}
}

func (b *AssignmentBuilder) With(mutate func(*AssignmentBuilder)) *AssignmentBuilder {
	mutate(b)
	return b
}

func (b *AssignmentBuilder) WithStatus(status exitrequest.AssignmentStatus) *AssignmentBuilder {
	b.Status = status
	return b
}

// WithCrew replaces the roster with the given members, the first one driving.
func (b *AssignmentBuilder) WithCrew(ids ...uuid.UUID) *AssignmentBuilder {
	b.Crew = make(exitrequest.Roster, 0, len(ids))
	for i, id := range ids {
		role := exitrequest.CrewMember
		if i == 0 {
			role = exitrequest.CrewDriver
		}
		b.Crew = append(b.Crew, exitrequest.Member{UserID: id, Role: role})
	}
	return b
}

func (b *AssignmentBuilder) Member(i int) uuid.UUID {
	return b.Crew[i].UserID
}

func (b *AssignmentBuilder) Build() *exitrequest.Assignment {
	crew := make(exitrequest.Roster, len(b.Crew))
	copy(crew, b.Crew)
	return &exitrequest.Assignment{
		ID:        b.ID,
		UnitID:    b.UnitID,
		BaseName:  "Central Base",
		RouteCode: b.RouteCode,
		Status:    b.Status,
		Crew:      crew,
	}
}

type ExitRequestBuilder struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	RequestedBy  uuid.UUID
	Reading      exitrequest.Reading
	Status       exitrequest.Status
	Deadline     time.Time
	CreatedAt    time.Time
}

func NewExitRequestBuilder() *ExitRequestBuilder {
	now := time.Now()
	return &ExitRequestBuilder{
		ID:           uuid.New(),
		AssignmentID: uuid.New(),
		RequestedBy:  uuid.New(),
		Reading:      exitrequest.Reading{Odometer: 120345.5, Fuel: 0.75},
		Status:       exitrequest.StatusPendingAuth,
		Deadline:     now.Add(30 * time.Minute),
		CreatedAt:    now,
	}
}

func (b *ExitRequestBuilder) With(mutate func(*ExitRequestBuilder)) *ExitRequestBuilder {
	mutate(b)
	return b
}

// For ties the request to the assignment and lets its first member raise it.
func (b *ExitRequestBuilder) For(a *AssignmentBuilder) *ExitRequestBuilder {
	b.AssignmentID = a.ID
	b.RequestedBy = a.Member(0)
	return b
}

func (b *ExitRequestBuilder) WithStatus(status exitrequest.Status) *ExitRequestBuilder {
	b.Status = status
	return b
}

func (b *ExitRequestBuilder) WithDeadline(deadline time.Time) *ExitRequestBuilder {
	b.Deadline = deadline
	return b
}

func (b *ExitRequestBuilder) BuildDomain() *exitrequest.Request {
	return exitrequest.ReconstructRequest(
		b.ID, b.AssignmentID, b.RequestedBy,
		b.Reading, b.Status, b.Deadline,
		nil, false, nil, nil, nil, nil, b.CreatedAt,
	)
}

func (b *ExitRequestBuilder) BuildCreateRequestDTO() reqdto.CreateExitRequestRequest {
	odometer, fuel := b.Reading.Odometer, b.Reading.Fuel
	return reqdto.CreateExitRequestRequest{
		AssignmentID: &b.AssignmentID,
		Odometer:     &odometer,
		Fuel:         &fuel,
	}
}
