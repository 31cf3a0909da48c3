package situation

import (
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDetailType = errs.Validation("invalid detail type")
	ErrCodeTaken         = errs.Conflict("situation code already exists")
	ErrEmptyDetail       = errs.Validation("detail data is required")
)

type DetailType string

const (
	DetailIncident      DetailType = "INCIDENT"
	DetailVehicleAssist DetailType = "VEHICLE_ASSIST"
	DetailGeneral       DetailType = "GENERAL"
)

func (t DetailType) String() string {
	return string(t)
}

func (t DetailType) IsValid() bool {
	switch t {
	case DetailIncident, DetailVehicleAssist, DetailGeneral:
		return true
	default:
		return false
	}
}

// Input is the part of a draft payload that becomes the primary record.
type Input struct {
	Code         string     `json:"code" validate:"omitempty,max=64"`
	AssignmentID *uuid.UUID `json:"assignmentId"`
	UnitID       *uuid.UUID `json:"unitId"`
	Km           *float64   `json:"km" validate:"omitempty,gte=0"`
	Direction    string     `json:"direction" validate:"omitempty,oneof=NORTH SOUTH EAST WEST BOTH"`
	Description  string     `json:"description" validate:"max=2000"`
	Observations string     `json:"observations" validate:"max=2000"`
	Latitude     *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Patch holds the client-editable fields. Nil keeps the current value.
type Patch struct {
	Km           *float64 `json:"km"`
	Direction    *string  `json:"direction"`
	Description  *string  `json:"description"`
	Observations *string  `json:"observations"`
}

func (p Patch) IsEmpty() bool {
	return p.Km == nil && p.Direction == nil && p.Description == nil && p.Observations == nil
}
