//go:build unit

package draft_test

import (
	"encoding/json"
	"testing"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/situation"
	"fieldsync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	cases := []struct {
		name       string
		kind       draft.Kind
		payload    string
		detailType situation.DetailType
		errContain string
	}{
		{
			name:       "traffic incident",
			kind:       draft.KindTrafficIncident,
			payload:    `{"km":41.5,"direction":"NORTH","incident":{"incidentType":"COLLISION","injured":2,"vehicles":[{"plate":"P123ABC"}]}}`,
			detailType: situation.DetailIncident,
		},
		{
			name:       "traffic incident without incident block",
			kind:       draft.KindTrafficIncident,
			payload:    `{"km":41.5}`,
			errContain: "incident (required)",
		},
		{
			name:       "vehicle without plate",
			kind:       draft.KindTrafficIncident,
			payload:    `{"incident":{"incidentType":"COLLISION","vehicles":[{"brand":"Toyota"}]}}`,
			errContain: "incident.vehicles[0].plate (required)",
		},
		{
			name:       "vehicle assist",
			kind:       draft.KindVehicleAssist,
			payload:    `{"assist":{"assistanceType":"FLAT_TIRE","vehicle":{"plate":"C555XYZ"}}}`,
			detailType: situation.DetailVehicleAssist,
		},
		{
			name:       "emergency",
			kind:       draft.KindEmergency,
			payload:    `{"emergency":{"emergencyType":"FIRE"}}`,
			detailType: situation.DetailIncident,
		},
		{
			name:       "patrol has a general detail",
			kind:       draft.KindPatrol,
			payload:    `{"description":"routine","notes":"all clear"}`,
			detailType: situation.DetailGeneral,
		},
		{
			name:       "negative km",
			kind:       draft.KindPatrol,
			payload:    `{"km":-1}`,
			errContain: "km (gte)",
		},
		{
			name:       "unknown direction",
			kind:       draft.KindMealBreak,
			payload:    `{"direction":"UP"}`,
			errContain: "direction (oneof)",
		},
		{
			name:       "wrong field type",
			kind:       draft.KindOther,
			payload:    `{"km":"twelve"}`,
			errContain: "malformed draft payload",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := draft.DecodePayload(c.kind, json.RawMessage(c.payload))
			if c.errContain != "" {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Contains(t, err.Error(), c.errContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.detailType, got.DetailType)
			assert.True(t, json.Valid(got.Detail))
		})
	}

	t.Run("general detail records the kind", func(t *testing.T) {
		got, err := draft.DecodePayload(draft.KindRestBreak, json.RawMessage(`{"notes":"15m"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"REST_BREAK","notes":"15m"}`, string(got.Detail))
	})
}
