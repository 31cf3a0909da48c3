package draft

import (
	"bytes"
	"encoding/json"
	"time"
	"unicode/utf8"

	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxErrorDetailLength = 1000

type Draft struct {
	clientID      uuid.UUID
	kind          Kind
	payload       json.RawMessage
	ownerID       uuid.UUID
	status        SyncStatus
	errorDetail   *string
	attempts      int32
	lastAttemptAt *time.Time
	situationID   *uuid.UUID
	detailID      *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDraft(clientID uuid.UUID, kind Kind, payload json.RawMessage, ownerID uuid.UUID, now time.Time) (*Draft, error) {
	if clientID == uuid.Nil {
		return nil, ErrEmptyClientID
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !isJSONObject(payload) {
		return nil, ErrInvalidPayload
	}

	return &Draft{
		clientID:  clientID,
		kind:      kind,
		payload:   payload,
		ownerID:   ownerID,
		status:    StatusLocal,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDraft(
	clientID uuid.UUID,
	kind Kind,
	payload json.RawMessage,
	ownerID uuid.UUID,
	status SyncStatus,
	errorDetail *string,
	attempts int32,
	lastAttemptAt *time.Time,
	situationID, detailID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Draft {
	return &Draft{
		clientID:      clientID,
		kind:          kind,
		payload:       payload,
		ownerID:       ownerID,
		status:        status,
		errorDetail:   errorDetail,
		attempts:      attempts,
		lastAttemptAt: lastAttemptAt,
		situationID:   situationID,
		detailID:      detailID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d *Draft) ClientID() uuid.UUID { return d.clientID }
func (d *Draft) Kind() Kind { return d.kind }
func (d *Draft) Payload() json.RawMessage { return d.payload }
func (d *Draft) OwnerID() uuid.UUID { return d.ownerID }
func (d *Draft) Status() SyncStatus { return d.status }
func (d *Draft) ErrorDetail() *string { return d.errorDetail }
func (d *Draft) Attempts() int32 { return d.attempts }
func (d *Draft) LastAttemptAt() *time.Time { return d.lastAttemptAt }
func (d *Draft) SituationID() *uuid.UUID { return d.situationID }
func (d *Draft) DetailID() *uuid.UUID { return d.detailID }
func (d *Draft) CreatedAt() time.Time { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time { return d.updatedAt }
func (d *Draft) IsSynchronized() bool { return d.status == StatusSynchronized }
func (d *Draft) OwnedBy(id uuid.UUID) bool { return d.ownerID == id }

// CheckOpen fails once the draft has been synchronized.
func (d *Draft) CheckOpen() error {
	if d.IsSynchronized() {
		return d.alreadySynchronized()
	}
	return nil
}

// Replace overwrites the payload of a draft that has not been synchronized yet.
func (d *Draft) Replace(kind Kind, payload json.RawMessage, actorID uuid.UUID, now time.Time) error {
	if !d.OwnedBy(actorID) {
		return errs.WithResource(ErrNotOwner, "draft", d.clientID.String())
	}
	if d.IsSynchronized() {
		return d.alreadySynchronized()
	}
	if !kind.IsValid() {
		return ErrInvalidKind
	}
	if !isJSONObject(payload) {
		return ErrInvalidPayload
	}
	if err := d.transition(StatusLocal); err != nil {
		return err
	}
	d.kind = kind
	d.payload = payload
	d.errorDetail = nil
	d.updatedAt = now
	return nil
}

func (d *Draft) BeginFinalize(now time.Time) error {
	if d.IsSynchronized() {
		return d.alreadySynchronized()
	}
	if err := d.transition(StatusInProgress); err != nil {
		return err
	}
	d.lastAttemptAt = &now
	d.updatedAt = now
	return nil
}

func (d *Draft) MarkSynchronized(situationID, detailID uuid.UUID, now time.Time) error {
	if err := d.transition(StatusSynchronized); err != nil {
		return err
	}
	d.situationID = &situationID
	d.detailID = &detailID
	d.errorDetail = nil
	d.updatedAt = now
	return nil
}

// MarkFailed records a failed finalize attempt. A pending draft is moved through IN_PROGRESS first.
func (d *Draft) MarkFailed(detail string, now time.Time) error {
	if d.status.IsPending() {
		if err := d.transition(StatusInProgress); err != nil {
			return err
		}
	}
	if err := d.transition(StatusError); err != nil {
		return err
	}
	detail = truncateDetail(detail)
	d.errorDetail = &detail
	d.attempts++
	d.lastAttemptAt = &now
	d.updatedAt = now
	return nil
}

// truncateDetail caps detail at maxErrorDetailLength bytes without splitting a UTF-8 sequence.
func truncateDetail(detail string) string {
	if len(detail) <= maxErrorDetailLength {
		return detail
	}
	cut := maxErrorDetailLength
	for cut > 0 && !utf8.RuneStart(detail[cut]) {
		cut--
	}
	return detail[:cut]
}

func (d *Draft) transition(next SyncStatus) error {
	if !d.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	d.status = next
	return nil
}

func (d *Draft) alreadySynchronized() error {
	id := d.clientID.String()
	if d.situationID != nil {
		return errs.WithResource(ErrAlreadySynchronized, "situation", d.situationID.String())
	}
	return errs.WithResource(ErrAlreadySynchronized, "draft", id)
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
