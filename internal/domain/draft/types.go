package draft

import (
	"strings"

	"fieldsync/internal/pkg/errs"
)

var (
	ErrInvalidKind         = errs.Validation("invalid draft kind")
	ErrInvalidPayload      = errs.Validation("draft payload must be a JSON object")
	ErrEmptyClientID       = errs.Validation("client id is required")
	ErrAlreadySynchronized = errs.Conflict("draft already synchronized")
	ErrNotOwner            = errs.Conflict("draft belongs to another user")
	ErrIllegalTransition   = errs.Conflict("illegal draft status transition")
)

type Kind string

const (
	KindPatrol          Kind = "PATROL"
	KindTrafficIncident Kind = "TRAFFIC_INCIDENT"
	KindVehicleAssist   Kind = "VEHICLE_ASSIST"
	KindEmergency       Kind = "EMERGENCY"
	KindTrafficControl  Kind = "TRAFFIC_CONTROL"
	KindStrategicStop   Kind = "STRATEGIC_STOP"
	KindRouteChange     Kind = "ROUTE_CHANGE"
	KindMealBreak       Kind = "MEAL_BREAK"
	KindRestBreak       Kind = "REST_BREAK"
	KindOther           Kind = "OTHER"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPatrol, KindTrafficIncident, KindVehicleAssist, KindEmergency, KindTrafficControl,
		KindStrategicStop, KindRouteChange, KindMealBreak, KindRestBreak, KindOther:
		return true
	default:
		return false
	}
}

// ParseKind accepts any case and "-" in place of "_" (e.g. "traffic-incident").
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type SyncStatus string

const (
	StatusLocal        SyncStatus = "LOCAL"
	StatusInProgress   SyncStatus = "IN_PROGRESS"
	StatusSynchronized SyncStatus = "SYNCHRONIZED"
	StatusError        SyncStatus = "ERROR"
)

func (s SyncStatus) String() string {
	return string(s)
}

func (s SyncStatus) IsValid() bool {
	switch s {
	case StatusLocal, StatusInProgress, StatusSynchronized, StatusError:
		return true
	default:
		return false
	}
}

// Pending drafts are still owned by the device and may be replaced.
func (s SyncStatus) IsPending() bool {
	return s == StatusLocal || s == StatusError
}

var transitions = map[SyncStatus][]SyncStatus{
	StatusLocal:        {StatusLocal, StatusInProgress},
	StatusError:        {StatusLocal, StatusInProgress},
	StatusInProgress:   {StatusSynchronized, StatusError},
	StatusSynchronized: {},
}

func (s SyncStatus) CanTransitionTo(next SyncStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
