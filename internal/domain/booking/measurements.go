package booking

import (
	"encoding/json"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
)

// ===============================
// Measurements Payload
// ===============================

const (
	MeasurementsExisting  = "existing"
	MeasurementsNew       = "new"
	MeasurementsHomeVisit = "home-visit"
)

// MeasurementsPayload is the discriminated structure serialized into
// the order's opaque measurements field.
type MeasurementsPayload struct {
	Type string `json:"type"`
}

func EncodeMeasurements(kind string) (string, error) {
	switch kind {
	case MeasurementsExisting, MeasurementsNew, MeasurementsHomeVisit:
	case "":
		kind = MeasurementsExisting
	default:
		return "", httperr.ErrBusiness("invalid_measurements")
	}

	b, err := json.Marshal(MeasurementsPayload{Type: kind})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeMeasurements(raw string) (MeasurementsPayload, error) {
	var p MeasurementsPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return MeasurementsPayload{}, httperr.ErrBusiness("invalid_measurements")
	}
	return p, nil
}
