package conflict

import (
	"strings"

	"fieldsync/internal/pkg/errs"
)

var (
	ErrInvalidKind       = errs.Validation("conflict kind must be DUPLICATE, KEY_REUSED or CONCURRENT_EDIT")
	ErrInvalidDecision   = errs.Validation("decision must be USE_CLIENT, USE_AUTHORITATIVE or DISCARD")
	ErrEmptyNaturalKey   = errs.Validation("natural key is required")
	ErrInvalidState      = errs.Validation("client state must be a JSON object")
	ErrInvalidDifference = errs.Validation("every difference needs a field name")
	ErrAlreadyResolved   = errs.Conflict("conflict case already resolved")
)

type Kind string

const (
	KindDuplicate      Kind = "DUPLICATE"
	KindKeyReused      Kind = "KEY_REUSED"
	KindConcurrentEdit Kind = "CONCURRENT_EDIT"
)

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindDuplicate, KindKeyReused, KindConcurrentEdit:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusResolved Status = "RESOLVED"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusResolved:
		return st, nil
	default:
		return "", errs.Validation("status must be PENDING or RESOLVED")
	}
}

type Decision string

const (
	DecisionUseClient        Decision = "USE_CLIENT"
	DecisionUseAuthoritative Decision = "USE_AUTHORITATIVE"
	DecisionDiscard          Decision = "DISCARD"
)

var decisionAliases = map[string]Decision{
	"USE_SERVER": DecisionUseAuthoritative,
	"USE_LOCAL":  DecisionUseClient,
}

func (d Decision) String() string {
	return string(d)
}

// ParseDecision accepts the canonical names and the legacy USE_SERVER / USE_LOCAL spellings.
func ParseDecision(s string) (Decision, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if alias, ok := decisionAliases[normalized]; ok {
		return alias, nil
	}
	switch d := Decision(normalized); d {
	case DecisionUseClient, DecisionUseAuthoritative, DecisionDiscard:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}
