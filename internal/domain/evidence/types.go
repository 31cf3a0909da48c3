package evidence

import (
	"strings"

	"fieldsync/internal/pkg/errs"
)

const (
	MaxImages = 3
	MaxVideos = 1
)

var (
	ErrInvalidKind        = errs.Validation("evidence kind must be IMAGE or VIDEO")
	ErrEmptyStorageRef    = errs.Validation("storage reference is required")
	ErrInvalidOrdinalHint = errs.Validation("ordinal hint must be between 1 and 3")
	ErrInvalidMetadata    = errs.Validation("evidence metadata must not be negative")
	ErrImageCapacity      = errs.Conflict("draft already has the maximum number of images")
	ErrVideoCapacity      = errs.Conflict("draft already has a video")
	ErrStorageRefTaken    = errs.Conflict("storage reference is attached to another draft")
)

type Kind string

const (
	KindImage Kind = "IMAGE"
	KindVideo Kind = "VIDEO"
)

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindImage, KindVideo:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Status string

const (
	StatusUploaded Status = "UPLOADED"
	StatusLinked   Status = "LINKED"
)

// Occupancy is what a draft already holds, read under the draft row lock.
type Occupancy struct {
	Images     int
	Videos     int
	MaxOrdinal int32
}

// NextOrdinal returns the slot for a new item of kind k. Videos carry no ordinal.
func (o Occupancy) NextOrdinal(k Kind) (*int32, error) {
	switch k {
	case KindImage:
		next := o.MaxOrdinal + 1
		if next > MaxImages {
			return nil, ErrImageCapacity
		}
		return &next, nil
	case KindVideo:
		if o.Videos >= MaxVideos {
			return nil, ErrVideoCapacity
		}
		return nil, nil
	default:
		return nil, ErrInvalidKind
	}
}

// Tally is the completeness summary returned to the client.
type Tally struct {
	Fotos    int  `json:"fotos"`
	Videos   int  `json:"videos"`
	Completa bool `json:"completa"`
}

func NewTally(images, videos int) Tally {
	return Tally{
		Fotos:    images,
		Videos:   videos,
		Completa: images >= MaxImages && videos >= MaxVideos,
	}
}

func ValidateOrdinalHint(hint *int32) error {
	if hint == nil {
		return nil
	}
	if *hint < 1 || *hint > MaxImages {
		return ErrInvalidOrdinalHint
	}
	return nil
}
