//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body that has been decoded into a generic map.
type Mutation func(m map[string]any)

// BodyMap renders v through its JSON tags so that tests can break individual
// fields the way a misbehaving device would.
func BodyMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets the value at a dotted path, e.g. "payload.km". A nil value
// removes the key so required-field checks can be exercised.
func Field(path string, value any) Mutation {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		for _, k := range keys[:len(keys)-1] {
			next, ok := m[k].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[k] = next
			}
			m = next
		}
		last := keys[len(keys)-1]
		if value == nil {
			delete(m, last)
			return
		}
		m[last] = value
	}
}
