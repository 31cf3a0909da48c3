package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"fieldsync/internal/domain/situation"
	"fieldsync/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type VehicleData struct {
	Plate       string `json:"plate" validate:"required,max=16"`
	VehicleType string `json:"vehicleType" validate:"max=32"`
	Brand       string `json:"brand" validate:"max=64"`
	Color       string `json:"color" validate:"max=32"`
}

type IncidentData struct {
	IncidentType string        `json:"incidentType" validate:"required,max=64"`
	Injured      int           `json:"injured" validate:"gte=0"`
	Deceased     int           `json:"deceased" validate:"gte=0"`
	Vehicles     []VehicleData `json:"vehicles" validate:"omitempty,dive"`
	Authorities  []string      `json:"authorities" validate:"omitempty,dive,max=64"`
}

type AssistData struct {
	AssistanceType   string      `json:"assistanceType" validate:"required,max=64"`
	Vehicle          VehicleData `json:"vehicle" validate:"required"`
	ServicesProvided []string    `json:"servicesProvided" validate:"omitempty,dive,max=64"`
}

type EmergencyData struct {
	EmergencyType string        `json:"emergencyType" validate:"required,max=64"`
	Incident      *IncidentData `json:"incident" validate:"omitempty"`
}

type trafficIncidentPayload struct {
	situation.Input
	Incident IncidentData `json:"incident" validate:"required"`
}

type vehicleAssistPayload struct {
	situation.Input
	Assist AssistData `json:"assist" validate:"required"`
}

type emergencyPayload struct {
	situation.Input
	Emergency EmergencyData `json:"emergency" validate:"required"`
}

type generalPayload struct {
	situation.Input
	Notes string `json:"notes" validate:"max=2000"`
}

// Content is a decoded payload split into the primary record and its detail.
type Content struct {
	Situation  situation.Input
	DetailType situation.DetailType
	Detail     json.RawMessage
}

// Decode parses the payload with the schema of the draft kind.
func (d *Draft) Decode() (*Content, error) {
	return DecodePayload(d.kind, d.payload)
}

func DecodePayload(kind Kind, payload json.RawMessage) (*Content, error) {
	switch kind {
	case KindTrafficIncident:
		var p trafficIncidentPayload
		if err := decodeInto(payload, &p); err != nil {
			return nil, err
		}
		return content(p.Input, situation.DetailIncident, p.Incident)
	case KindVehicleAssist:
		var p vehicleAssistPayload
		if err := decodeInto(payload, &p); err != nil {
			return nil, err
		}
		return content(p.Input, situation.DetailVehicleAssist, p.Assist)
	case KindEmergency:
		var p emergencyPayload
		if err := decodeInto(payload, &p); err != nil {
			return nil, err
		}
		return content(p.Input, situation.DetailIncident, p.Emergency)
	case KindPatrol, KindTrafficControl, KindStrategicStop, KindRouteChange,
		KindMealBreak, KindRestBreak, KindOther:
		var p generalPayload
		if err := decodeInto(payload, &p); err != nil {
			return nil, err
		}
		return content(p.Input, situation.DetailGeneral, struct {
			Kind  Kind   `json:"kind"`
			Notes string `json:"notes,omitempty"`
		}{kind, p.Notes})
	default:
		return nil, ErrInvalidKind
	}
}

func decodeInto(payload json.RawMessage, dst any) error {
	if !isJSONObject(payload) {
		return ErrInvalidPayload
	}
	if err := json.NewDecoder(bytes.NewReader(payload)).Decode(dst); err != nil {
		return errs.Mark(errs.Wrap(err, "malformed draft payload"), errs.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		return errs.Mark(errs.New(describeValidation(err)), errs.ErrValidation)
	}
	return nil
}

func content(in situation.Input, detailType situation.DetailType, detail any) (*Content, error) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode detail")
	}
	return &Content{Situation: in, DetailType: detailType, Detail: raw}, nil
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errs.As(err, &ve) {
		return "invalid draft payload: " + err.Error()
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		// Namespace starts with the payload struct name.
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		ns = strings.TrimPrefix(ns, "Input.")
		fields = append(fields, fmt.Sprintf("%s (%s)", ns, fe.Tag()))
	}
	return "invalid draft payload: " + strings.Join(fields, ", ")
}
