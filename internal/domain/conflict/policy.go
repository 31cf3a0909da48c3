package conflict

import (
	"time"

	"github.com/google/uuid"
)

// EditPolicy defines how long after creation a record is still considered editable.
type EditPolicy struct {
	CreatorWindow time.Duration
	CrewWindow    time.Duration
}

func (p EditPolicy) WindowOpen(createdAt time.Time, createdBy, actorID uuid.UUID, now time.Time) bool {
	window := p.CrewWindow
	if createdBy == actorID {
		window = p.CreatorWindow
	}
	return now.Before(createdAt.Add(window))
}
