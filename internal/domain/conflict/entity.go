package conflict

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"fieldsync/internal/domain/situation"
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

type Case struct {
	id                 uuid.UUID
	naturalKey         string
	situationID        *uuid.UUID
	clientState        json.RawMessage
	authoritativeState json.RawMessage
	differences        Differences
	reportedBy         uuid.UUID
	kind               Kind
	status             Status
	decision           *Decision
	resolvedBy         *uuid.UUID
	resolutionNotes    *string
	editWindowOpen     bool
	createdAt          time.Time
	updatedAt          time.Time
	resolvedAt         *time.Time
}

func NewCase(
	naturalKey string,
	situationID *uuid.UUID,
	clientState, authoritativeState json.RawMessage,
	differences Differences,
	kind Kind,
	reportedBy uuid.UUID,
	editWindowOpen bool,
	now time.Time,
) (*Case, error) {
	key := strings.TrimSpace(naturalKey)
	if key == "" {
		return nil, ErrEmptyNaturalKey
	}
	if !isObject(clientState) {
		return nil, ErrInvalidState
	}
	if err := differences.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if differences == nil {
		differences = Differences{}
	}

	return &Case{
		id:                 uuid.New(),
		naturalKey:         key,
		situationID:        situationID,
		clientState:        clientState,
		authoritativeState: authoritativeState,
		differences:        differences,
		reportedBy:         reportedBy,
		kind:               kind,
		status:             StatusPending,
		editWindowOpen:     editWindowOpen,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructCase(
	id uuid.UUID,
	naturalKey string,
	situationID *uuid.UUID,
	clientState, authoritativeState json.RawMessage,
	differences Differences,
	reportedBy uuid.UUID,
	kind Kind,
	status Status,
	decision *Decision,
	resolvedBy *uuid.UUID,
	resolutionNotes *string,
	editWindowOpen bool,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) *Case {
	return &Case{
		id:                 id,
		naturalKey:         naturalKey,
		situationID:        situationID,
		clientState:        clientState,
		authoritativeState: authoritativeState,
		differences:        differences,
		reportedBy:         reportedBy,
		kind:               kind,
		status:             status,
		decision:           decision,
		resolvedBy:         resolvedBy,
		resolutionNotes:    resolutionNotes,
		editWindowOpen:     editWindowOpen,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		resolvedAt:         resolvedAt,
	}
}

func (c *Case) ID() uuid.UUID { return c.id }
func (c *Case) NaturalKey() string { return c.naturalKey }
func (c *Case) SituationID() *uuid.UUID { return c.situationID }
func (c *Case) ClientState() json.RawMessage { return c.clientState }
func (c *Case) AuthoritativeState() json.RawMessage { return c.authoritativeState }
func (c *Case) Differences() Differences { return c.differences }
func (c *Case) ReportedBy() uuid.UUID { return c.reportedBy }
func (c *Case) Kind() Kind { return c.kind }
func (c *Case) Status() Status { return c.status }
func (c *Case) Decision() *Decision { return c.decision }
func (c *Case) ResolvedBy() *uuid.UUID { return c.resolvedBy }
func (c *Case) ResolutionNotes() *string { return c.resolutionNotes }
func (c *Case) EditWindowOpen() bool { return c.editWindowOpen }
func (c *Case) CreatedAt() time.Time { return c.createdAt }
func (c *Case) UpdatedAt() time.Time { return c.updatedAt }
func (c *Case) ResolvedAt() *time.Time { return c.resolvedAt }
func (c *Case) IsPending() bool { return c.status == StatusPending }

// Resolve is terminal. A resolved case cannot be resolved again.
func (c *Case) Resolve(decision Decision, notes string, resolverID uuid.UUID, now time.Time) error {
	if !c.IsPending() {
		return errs.WithResource(ErrAlreadyResolved, "conflict", c.id.String())
	}
	if _, err := ParseDecision(string(decision)); err != nil {
		return err
	}
	c.status = StatusResolved
	c.decision = &decision
	c.resolvedBy = &resolverID
	if n := strings.TrimSpace(notes); n != "" {
		c.resolutionNotes = &n
	}
	c.resolvedAt = &now
	c.updatedAt = now
	return nil
}

// AppliesClientState reports whether resolving must write the client values to the situation.
func (c *Case) AppliesClientState() bool {
	return c.decision != nil && *c.decision == DecisionUseClient && c.situationID != nil
}

// ClientPatch extracts the editable situation fields from the client snapshot.
func (c *Case) ClientPatch() (situation.Patch, error) {
	var p situation.Patch
	if err := json.Unmarshal(c.clientState, &p); err != nil {
		return situation.Patch{}, errs.Mark(errs.Wrap(err, "client state does not match situation fields"), errs.ErrValidation)
	}
	return p, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
