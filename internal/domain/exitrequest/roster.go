package exitrequest

import (
	"github.com/google/uuid"
)

type Member struct {
	UserID uuid.UUID
	Role   CrewRole
}

type Roster []Member

func (r Roster) Contains(userID uuid.UUID) bool {
	for _, m := range r {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (r Roster) UserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r))
	for _, m := range r {
		ids = append(ids, m.UserID)
	}
	return ids
}

type Vote struct {
	UserID  uuid.UUID
	Approve bool
	Notes   string
}

// Tally summarizes the votes cast against the roster. Votes from outside the roster are ignored.
type Tally struct {
	Approvals     int
	Rejections    int
	PendingVoters []uuid.UUID
}

func (t Tally) AllApproved() bool {
	return t.Rejections == 0 && len(t.PendingVoters) == 0
}

func Count(roster Roster, votes []Vote) Tally {
	byUser := make(map[uuid.UUID]bool, len(votes))
	for _, v := range votes {
		byUser[v.UserID] = v.Approve
	}

	t := Tally{PendingVoters: []uuid.UUID{}}
	for _, m := range roster {
		approve, voted := byUser[m.UserID]
		switch {
		case !voted:
			t.PendingVoters = append(t.PendingVoters, m.UserID)
		case approve:
			t.Approvals++
		default:
			t.Rejections++
		}
	}
	return t
}

// HasVoted reports whether userID already appears in votes.
func HasVoted(votes []Vote, userID uuid.UUID) bool {
	for _, v := range votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}
