package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
)

func TestEncodeMeasurements_Kinds(t *testing.T) {
	for _, kind := range []string{
		MeasurementsExisting, MeasurementsNew, MeasurementsHomeVisit,
	} {
		raw, err := EncodeMeasurements(kind)
		require.NoError(t, err, kind)

		p, err := DecodeMeasurements(raw)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, p.Type)
	}
}

func TestEncodeMeasurements_EmptyDefaultsToExisting(t *testing.T) {
	raw, err := EncodeMeasurements("")
	require.NoError(t, err)

	p, err := DecodeMeasurements(raw)
	require.NoError(t, err)
	assert.Equal(t, MeasurementsExisting, p.Type)
}

func TestEncodeMeasurements_UnknownKind(t *testing.T) {
	_, err := EncodeMeasurements("remote")
	assert.True(t, httperr.IsBusiness(err, "invalid_measurements"))
}

func TestDecodeMeasurements_Garbage(t *testing.T) {
	_, err := DecodeMeasurements("{not json")
	assert.True(t, httperr.IsBusiness(err, "invalid_measurements"))
}
