package converter

import (
	"fieldsync/internal/domain/exitrequest"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
)

func ExitRequestToInsertParams(r *exitrequest.Request) sqlc.InsertExitRequestParams {
	reading := r.Reading()
	return sqlc.InsertExitRequestParams{
		ID:             r.ID(),
		AssignmentID:   r.AssignmentID(),
		RequestedBy:    r.RequestedBy(),
		Odometer:       reading.Odometer,
		Fuel:           reading.Fuel,
		FuelFraction:   pgconv.StringPtrToPgtype(reading.FuelFraction),
		Notes:          pgconv.StringPtrToPgtype(reading.Notes),
		Status:         r.Status().String(),
		Deadline:       pgconv.TimeToPgtype(r.Deadline()),
		ManualOverride: r.ManualOverride(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ExitRequestToOutcomeParams(r *exitrequest.Request) sqlc.UpdateExitRequestOutcomeParams {
	var approvalType *string
	if t := r.ApprovalType(); t != nil {
		s := string(*t)
		approvalType = &s
	}
	return sqlc.UpdateExitRequestOutcomeParams{
		ID:             r.ID(),
		Status:         r.Status().String(),
		ExitID:         pgconv.UUIDPtrToPgtype(r.ExitID()),
		ManualOverride: r.ManualOverride(),
		ApprovedBy:     pgconv.UUIDPtrToPgtype(r.ApprovedBy()),
		ApprovalType:   pgconv.StringPtrToPgtype(approvalType),
		OverrideReason: pgconv.StringPtrToPgtype(r.OverrideReason()),
		ResolvedAt:     pgconv.TimePtrToPgtype(r.ResolvedAt()),
	}
}

func ExitRequestFromRow(row sqlc.ExitRequests) *exitrequest.Request {
	var approvalType *exitrequest.ApprovalType
	if row.ApprovalType.Valid {
		t := exitrequest.ApprovalType(row.ApprovalType.String)
		approvalType = &t
	}
	return exitrequest.ReconstructRequest(
		row.ID,
		row.AssignmentID,
		row.RequestedBy,
		exitrequest.Reading{
			Odometer:     row.Odometer,
			Fuel:         row.Fuel,
			FuelFraction: pgconv.StringPtrFromPgtype(row.FuelFraction),
			Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		},
		exitrequest.Status(row.Status),
		pgconv.TimeFromPgtype(row.Deadline),
		pgconv.UUIDPtrFromPgtype(row.ExitID),
		row.ManualOverride,
		pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		approvalType,
		pgconv.StringPtrFromPgtype(row.OverrideReason),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ExitToInsertParams(e *exitrequest.Exit) sqlc.InsertExitParams {
	return sqlc.InsertExitParams{
		ID:           e.ID,
		AssignmentID: e.AssignmentID,
		UnitID:       e.UnitID,
		Odometer:     e.Reading.Odometer,
		Fuel:         e.Reading.Fuel,
		FuelFraction: pgconv.StringPtrToPgtype(e.Reading.FuelFraction),
		Notes:        pgconv.StringPtrToPgtype(e.Reading.Notes),
		Status:       e.Status,
		RouteCode:    e.RouteCode,
		StartedAt:    pgconv.TimeToPgtype(e.StartedAt),
	}
}

func AssignmentFromRows(row sqlc.Assignments, crew []sqlc.ListAssignmentCrewRow) *exitrequest.Assignment {
	roster := make(exitrequest.Roster, 0, len(crew))
	for _, m := range crew {
		roster = append(roster, exitrequest.Member{UserID: m.UserID, Role: exitrequest.CrewRole(m.CrewRole)})
	}
	return &exitrequest.Assignment{
		ID:        row.ID,
		UnitID:    row.UnitID,
		BaseName:  row.BaseName,
		RouteCode: row.RouteCode,
		Status:    exitrequest.AssignmentStatus(row.Status),
		ExitID:    pgconv.UUIDPtrFromPgtype(row.ExitID),
		Crew:      roster,
	}
}
