package response

import (
	"time"

	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateExitRequestResponse struct {
	RequestID     uuid.UUID   `json:"requestId"`
	Deadline      time.Time   `json:"deadline"`
	Status        string      `json:"status"`
	PendingVoters []uuid.UUID `json:"pendingVoters"`
}

func FromCreateExitRequestResult(r *commands.CreateExitRequestResult) *CreateExitRequestResponse {
	return &CreateExitRequestResponse{
		RequestID:     r.RequestID,
		Deadline:      r.Deadline,
		Status:        r.Status.String(),
		PendingVoters: votersOrEmpty(r.PendingVoters),
	}
}

type VoteResponse struct {
	Status        string      `json:"status"`
	AllApproved   bool        `json:"allApproved"`
	PendingVoters []uuid.UUID `json:"pendingVoters"`
}

func FromVoteResult(r *commands.VoteResult) *VoteResponse {
	return &VoteResponse{
		Status:        r.Status.String(),
		AllApproved:   r.AllApproved,
		PendingVoters: votersOrEmpty(r.PendingVoters),
	}
}

type ExitRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	AssignmentID   uuid.UUID  `json:"assignmentId"`
	RequestedBy    uuid.UUID  `json:"requestedBy"`
	Odometer       float64    `json:"odometer"`
	Fuel           float64    `json:"fuel"`
	FuelFraction   *string    `json:"fuelFraction,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Status         string     `json:"status"`
	Deadline       time.Time  `json:"deadline"`
	ExitID         *uuid.UUID `json:"exitId,omitempty"`
	ManualOverride bool       `json:"manualOverride"`
	ApprovedBy     *uuid.UUID `json:"approvedBy,omitempty"`
	ApprovalType   *string    `json:"approvalType,omitempty"`
	OverrideReason *string    `json:"overrideReason,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type VoteViewResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Approve   bool      `json:"approve"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CrewMemberResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`
}

type ExitRequestDetailResponse struct {
	Request       ExitRequestResponse  `json:"request"`
	Votes         []VoteViewResponse   `json:"votes"`
	Roster        []CrewMemberResponse `json:"roster"`
	PendingVoters []uuid.UUID          `json:"pendingVoters"`
}

type MemberPendingResponse struct {
	Request      ExitRequestResponse `json:"request"`
	MyVote       *VoteViewResponse   `json:"myVote,omitempty"`
	MissingVotes int                 `json:"missingVotes"`
}

func FromExitRequestView(v *queries.ExitRequestView) (*ExitRequestResponse, error) {
	res := &ExitRequestResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromExitRequestList(items []*queries.ExitRequestView) ([]ExitRequestResponse, error) {
	res := make([]ExitRequestResponse, 0, len(items))
	if err := copier.Copy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

func FromExitRequestDetail(d *queries.ExitRequestDetail) (*ExitRequestDetailResponse, error) {
	res := &ExitRequestDetailResponse{
		Votes:         []VoteViewResponse{},
		Roster:        []CrewMemberResponse{},
		PendingVoters: votersOrEmpty(d.PendingVoters),
	}
	if err := copier.Copy(&res.Request, d.Request); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Votes, d.Votes); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Roster, d.Roster); err != nil {
		return nil, err
	}
	return res, nil
}

func FromMemberPending(v *queries.MemberPendingView) (*MemberPendingResponse, error) {
	res := &MemberPendingResponse{MissingVotes: v.MissingVotes}
	if err := copier.Copy(&res.Request, v.Request); err != nil {
		return nil, err
	}
	if v.MyVote != nil {
		res.MyVote = &VoteViewResponse{}
		if err := copier.Copy(res.MyVote, v.MyVote); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func votersOrEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
