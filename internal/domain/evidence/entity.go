package evidence

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Metadata struct {
	PreviewRef      *string
	Width           *int32
	Height          *int32
	DurationSeconds *int32
	SizeBytes       *int64
}

func (m Metadata) validate() error {
	for _, v := range []*int32{m.Width, m.Height, m.DurationSeconds} {
		if v != nil && *v < 0 {
			return ErrInvalidMetadata
		}
	}
	if m.SizeBytes != nil && *m.SizeBytes < 0 {
		return ErrInvalidMetadata
	}
	return nil
}

type Item struct {
	id            uuid.UUID
	draftClientID uuid.UUID
	situationID   *uuid.UUID
	kind          Kind
	ordinal       *int32
	storageRef    string
	metadata      Metadata
	status        Status
	uploadedBy    uuid.UUID
	createdAt     time.Time
}

func NewItem(draftClientID uuid.UUID, kind Kind, storageRef string, meta Metadata, ordinal *int32, uploadedBy uuid.UUID, now time.Time) (*Item, error) {
	ref := strings.TrimSpace(storageRef)
	if ref == "" {
		return nil, ErrEmptyStorageRef
	}
	if kind != KindImage && kind != KindVideo {
		return nil, ErrInvalidKind
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	if kind == KindVideo {
		ordinal = nil
	}

	return &Item{
		id:            uuid.New(),
		draftClientID: draftClientID,
		kind:          kind,
		ordinal:       ordinal,
		storageRef:    ref,
		metadata:      meta,
		status:        StatusUploaded,
		uploadedBy:    uploadedBy,
		createdAt:     now,
	}, nil
}

func ReconstructItem(
	id, draftClientID uuid.UUID,
	situationID *uuid.UUID,
	kind Kind,
	ordinal *int32,
	storageRef string,
	meta Metadata,
	status Status,
	uploadedBy uuid.UUID,
	createdAt time.Time,
) *Item {
	return &Item{
		id:            id,
		draftClientID: draftClientID,
		situationID:   situationID,
		kind:          kind,
		ordinal:       ordinal,
		storageRef:    storageRef,
		metadata:      meta,
		status:        status,
		uploadedBy:    uploadedBy,
		createdAt:     createdAt,
	}
}

func (i *Item) ID() uuid.UUID { return i.id }
func (i *Item) DraftClientID() uuid.UUID { return i.draftClientID }
func (i *Item) SituationID() *uuid.UUID { return i.situationID }
func (i *Item) Kind() Kind { return i.kind }
func (i *Item) Ordinal() *int32 { return i.ordinal }
func (i *Item) StorageRef() string { return i.storageRef }
func (i *Item) Metadata() Metadata { return i.metadata }
func (i *Item) Status() Status { return i.status }
func (i *Item) UploadedBy() uuid.UUID { return i.uploadedBy }
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// Refresh merges re-reported metadata into an existing item. Unset fields keep their value.
func (i *Item) Refresh(meta Metadata) error {
	if err := meta.validate(); err != nil {
		return err
	}
	if meta.PreviewRef != nil {
		i.metadata.PreviewRef = meta.PreviewRef
	}
	if meta.Width != nil {
		i.metadata.Width = meta.Width
	}
	if meta.Height != nil {
		i.metadata.Height = meta.Height
	}
	if meta.DurationSeconds != nil {
		i.metadata.DurationSeconds = meta.DurationSeconds
	}
	if meta.SizeBytes != nil {
		i.metadata.SizeBytes = meta.SizeBytes
	}
	return nil
}
