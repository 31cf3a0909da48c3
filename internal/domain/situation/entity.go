package situation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Situation struct {
	id           uuid.UUID
	code         string
	kind         string
	clientID     uuid.UUID
	assignmentID *uuid.UUID
	unitID       *uuid.UUID
	km           *float64
	direction    string
	description  string
	observations string
	latitude     *float64
	longitude    *float64
	createdBy    uuid.UUID
	updatedBy    uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSituation(clientID uuid.UUID, kind string, in Input, actorID uuid.UUID, now time.Time) *Situation {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = DeriveCode(clientID)
	}
	return &Situation{
		id:           uuid.New(),
		code:         code,
		kind:         kind,
		clientID:     clientID,
		assignmentID: in.AssignmentID,
		unitID:       in.UnitID,
		km:           in.Km,
		direction:    in.Direction,
		description:  in.Description,
		observations: in.Observations,
		latitude:     in.Latitude,
		longitude:    in.Longitude,
		createdBy:    actorID,
		updatedBy:    actorID,
		createdAt:    now,
		updatedAt:    now,
	}
}

// DeriveCode builds the natural key used when the client did not send one.
func DeriveCode(clientID uuid.UUID) string {
	return "SIT-" + strings.ToUpper(strings.ReplaceAll(clientID.String(), "-", ""))
}

func ReconstructSituation(
	id uuid.UUID,
	code, kind string,
	clientID uuid.UUID,
	assignmentID, unitID *uuid.UUID,
	km *float64,
	direction, description, observations string,
	latitude, longitude *float64,
	createdBy, updatedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Situation {
	return &Situation{
		id:           id,
		code:         code,
		kind:         kind,
		clientID:     clientID,
		assignmentID: assignmentID,
		unitID:       unitID,
		km:           km,
		direction:    direction,
		description:  description,
		observations: observations,
		latitude:     latitude,
		longitude:    longitude,
		createdBy:    createdBy,
		updatedBy:    updatedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Situation) ID() uuid.UUID { return s.id }
func (s *Situation) Code() string { return s.code }
func (s *Situation) Kind() string { return s.kind }
func (s *Situation) ClientID() uuid.UUID { return s.clientID }
func (s *Situation) AssignmentID() *uuid.UUID { return s.assignmentID }
func (s *Situation) UnitID() *uuid.UUID { return s.unitID }
func (s *Situation) Km() *float64 { return s.km }
func (s *Situation) Direction() string { return s.direction }
func (s *Situation) Description() string { return s.description }
func (s *Situation) Observations() string { return s.observations }
func (s *Situation) Latitude() *float64 { return s.latitude }
func (s *Situation) Longitude() *float64 { return s.longitude }
func (s *Situation) CreatedBy() uuid.UUID { return s.createdBy }
func (s *Situation) UpdatedBy() uuid.UUID { return s.updatedBy }
func (s *Situation) CreatedAt() time.Time { return s.createdAt }
func (s *Situation) UpdatedAt() time.Time { return s.updatedAt }

// Apply overwrites the fields present in p.
func (s *Situation) Apply(p Patch, actorID uuid.UUID, now time.Time) {
	if p.Km != nil {
		s.km = p.Km
	}
	if p.Direction != nil {
		s.direction = *p.Direction
	}
	if p.Description != nil {
		s.description = *p.Description
	}
	if p.Observations != nil {
		s.observations = *p.Observations
	}
	s.updatedBy = actorID
	s.updatedAt = now
}

// Snapshot renders the fields a conflict compares against.
func (s *Situation) Snapshot() json.RawMessage {
	snap := struct {
		ID           uuid.UUID `json:"id"`
		Code         string    `json:"code"`
		Kind         string    `json:"kind"`
		Km           *float64  `json:"km"`
		Direction    string    `json:"direction"`
		Description  string    `json:"description"`
		Observations string    `json:"observations"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}{s.id, s.code, s.kind, s.km, s.direction, s.description, s.observations, s.updatedAt}
	raw, _ := json.Marshal(snap)
	return raw
}

type Detail struct {
	id          uuid.UUID
	situationID uuid.UUID
	detailType  DetailType
	data        json.RawMessage
	createdBy   uuid.UUID
	createdAt   time.Time
}

func NewDetail(situationID uuid.UUID, detailType DetailType, data json.RawMessage, actorID uuid.UUID, now time.Time) (*Detail, error) {
	if !detailType.IsValid() {
		return nil, ErrInvalidDetailType
	}
	if len(data) == 0 {
		return nil, ErrEmptyDetail
	}
	return &Detail{
		id:          uuid.New(),
		situationID: situationID,
		detailType:  detailType,
		data:        data,
		createdBy:   actorID,
		createdAt:   now,
	}, nil
}

func ReconstructDetail(id, situationID uuid.UUID, detailType DetailType, data json.RawMessage, createdBy uuid.UUID, createdAt time.Time) *Detail {
	return &Detail{
		id:          id,
		situationID: situationID,
		detailType:  detailType,
		data:        data,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (d *Detail) ID() uuid.UUID { return d.id }
func (d *Detail) SituationID() uuid.UUID { return d.situationID }
func (d *Detail) Type() DetailType { return d.detailType }
func (d *Detail) Data() json.RawMessage { return d.data }
func (d *Detail) CreatedBy() uuid.UUID { return d.createdBy }
func (d *Detail) CreatedAt() time.Time { return d.createdAt }
