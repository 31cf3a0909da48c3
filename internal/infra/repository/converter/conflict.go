package converter

import (
	"encoding/json"

	"fieldsync/internal/domain/conflict"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/pkg/pgconv"
)

func ConflictToUpsertParams(c *conflict.Case) (sqlc.UpsertPendingConflictParams, error) {
	diffs, err := json.Marshal(c.Differences())
	if err != nil {
		return sqlc.UpsertPendingConflictParams{}, errs.Wrap(err, "failed to encode differences")
	}
	return sqlc.UpsertPendingConflictParams{
		ID:                 c.ID(),
		NaturalKey:         c.NaturalKey(),
		SituationID:        pgconv.UUIDPtrToPgtype(c.SituationID()),
		ClientState:        c.ClientState(),
		AuthoritativeState: nullableJSON(c.AuthoritativeState()),
		Differences:        diffs,
		ReportedBy:         c.ReportedBy(),
		Kind:               c.Kind().String(),
		EditWindowOpen:     c.EditWindowOpen(),
		CreatedAt:          pgconv.TimeToPgtype(c.CreatedAt()),
	}, nil
}

func ConflictToResolveParams(c *conflict.Case) sqlc.ResolveConflictCaseParams {
	var decision *string
	if d := c.Decision(); d != nil {
		s := d.String()
		decision = &s
	}
	return sqlc.ResolveConflictCaseParams{
		ID:              c.ID(),
		Status:          c.Status().String(),
		Decision:        pgconv.StringPtrToPgtype(decision),
		ResolvedBy:      pgconv.UUIDPtrToPgtype(c.ResolvedBy()),
		ResolutionNotes: pgconv.StringPtrToPgtype(c.ResolutionNotes()),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
		ResolvedAt:      pgconv.TimePtrToPgtype(c.ResolvedAt()),
	}
}

func ConflictFromRow(row sqlc.ConflictCases) *conflict.Case {
	var decision *conflict.Decision
	if row.Decision.Valid {
		d := conflict.Decision(row.Decision.String)
		decision = &d
	}
	return conflict.ReconstructCase(
		row.ID,
		row.NaturalKey,
		pgconv.UUIDPtrFromPgtype(row.SituationID),
		row.ClientState,
		row.AuthoritativeState,
		DifferencesFromJSON(row.Differences),
		row.ReportedBy,
		conflict.Kind(row.Kind),
		conflict.Status(row.Status),
		decision,
		pgconv.UUIDPtrFromPgtype(row.ResolvedBy),
		pgconv.StringPtrFromPgtype(row.ResolutionNotes),
		row.EditWindowOpen,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	)
}

// DifferencesFromJSON tolerates malformed stored values by returning an empty list.
func DifferencesFromJSON(raw []byte) conflict.Differences {
	diffs := conflict.Differences{}
	if len(raw) == 0 {
		return diffs
	}
	if err := json.Unmarshal(raw, &diffs); err != nil {
		return conflict.Differences{}
	}
	return diffs
}

func nullableJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
