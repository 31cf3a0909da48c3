package conflict

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Difference is one field on which the client and the store disagree.
type Difference struct {
	Field         string          `json:"field"`
	Client        json.RawMessage `json:"client"`
	Authoritative json.RawMessage `json:"authoritative"`
}

type Differences []Difference

func (ds Differences) Validate() error {
	for _, d := range ds {
		if strings.TrimSpace(d.Field) == "" {
			return ErrInvalidDifference
		}
	}
	return nil
}

func (ds Differences) Fields() []string {
	fields := make([]string, 0, len(ds))
	for _, d := range ds {
		fields = append(fields, d.Field)
	}
	return fields
}

// Render produces one "field: authoritative -> client" line per difference.
func (ds Differences) Render() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Field)
		b.WriteString(": ")
		b.WriteString(renderValue(d.Authoritative))
		b.WriteString(" -> ")
		b.WriteString(renderValue(d.Client))
	}
	return b.String()
}

func renderValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "(empty)"
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}
