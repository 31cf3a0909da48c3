package converter

import (
	"fieldsync/internal/domain/situation"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/pgconv"
)

func SituationToInsertParams(s *situation.Situation) sqlc.InsertSituationParams {
	return sqlc.InsertSituationParams{
		ID:           s.ID(),
		Code:         s.Code(),
		Kind:         s.Kind(),
		ClientID:     s.ClientID(),
		AssignmentID: pgconv.UUIDPtrToPgtype(s.AssignmentID()),
		UnitID:       pgconv.UUIDPtrToPgtype(s.UnitID()),
		Km:           pgconv.Float64PtrToPgtype(s.Km()),
		Direction:    s.Direction(),
		Description:  s.Description(),
		Observations: s.Observations(),
		Latitude:     pgconv.Float64PtrToPgtype(s.Latitude()),
		Longitude:    pgconv.Float64PtrToPgtype(s.Longitude()),
		CreatedBy:    s.CreatedBy(),
		UpdatedBy:    s.UpdatedBy(),
		CreatedAt:    pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SituationFromRow(row sqlc.Situations) *situation.Situation {
	return situation.ReconstructSituation(
		row.ID,
		row.Code,
		row.Kind,
		row.ClientID,
		pgconv.UUIDPtrFromPgtype(row.AssignmentID),
		pgconv.UUIDPtrFromPgtype(row.UnitID),
		pgconv.Float64PtrFromPgtype(row.Km),
		row.Direction,
		row.Description,
		row.Observations,
		pgconv.Float64PtrFromPgtype(row.Latitude),
		pgconv.Float64PtrFromPgtype(row.Longitude),
		row.CreatedBy,
		row.UpdatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func DetailToInsertParams(d *situation.Detail) sqlc.InsertSituationDetailParams {
	return sqlc.InsertSituationDetailParams{
		ID:          d.ID(),
		SituationID: d.SituationID(),
		DetailType:  d.Type().String(),
		Data:        d.Data(),
		CreatedBy:   d.CreatedBy(),
		CreatedAt:   pgconv.TimeToPgtype(d.CreatedAt()),
	}
}
