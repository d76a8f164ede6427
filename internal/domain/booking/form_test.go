package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
)

func validForm() Form {
	return Form{
		TailorID:      "t-1",
		ServiceType:   "custom_stitching",
		GarmentType:   "shirt",
		PickupAddress: "12 MG Road, Bengaluru",
		PickupDate:    "2026-04-02",
		PaymentMethod: "cod",
	}
}

func TestFormValidate_OK(t *testing.T) {
	assert.NoError(t, validForm().Validate())
}

func TestFormValidate_MissingTailor(t *testing.T) {
	f := validForm()
	f.TailorID = ""
	assert.True(t, httperr.IsBusiness(f.Validate(), "missing_tailor"))
}

func TestFormValidate_UnknownServiceType(t *testing.T) {
	f := validForm()
	f.ServiceType = "dry_cleaning"
	assert.True(t, httperr.IsBusiness(f.Validate(), "invalid_service_type"))
}

func TestFormValidate_UnknownGarmentType(t *testing.T) {
	f := validForm()
	f.GarmentType = "hat"
	assert.True(t, httperr.IsBusiness(f.Validate(), "invalid_garment_type"))
}

func TestFormValidate_BlankPickupAddress(t *testing.T) {
	f := validForm()
	f.PickupAddress = "   "
	assert.True(t, httperr.IsBusiness(f.Validate(), "missing_pickup_address"))
}

func TestFormValidate_MissingPickupDate(t *testing.T) {
	f := validForm()
	f.PickupDate = ""
	assert.True(t, httperr.IsBusiness(f.Validate(), "missing_pickup_date"))
}

func TestFormValidate_PaymentMethod(t *testing.T) {
	f := validForm()

	f.PaymentMethod = "online"
	assert.NoError(t, f.Validate())

	f.PaymentMethod = "upi"
	assert.True(t, httperr.IsBusiness(f.Validate(), "invalid_payment_method"))

	f.PaymentMethod = ""
	assert.True(t, httperr.IsBusiness(f.Validate(), "invalid_payment_method"))
}

func TestPickupAt_DefaultSlot(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	f := validForm()
	f.PickupTime = ""

	at, err := f.PickupAt(loc)
	require.NoError(t, err)
	assert.Equal(t, 10, at.Hour())
	assert.Equal(t, 0, at.Minute())
	assert.Equal(t, loc, at.Location())
}

func TestPickupAt_ExplicitSlot(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	f := validForm()
	f.PickupTime = "16:30"

	at, err := f.PickupAt(loc)
	require.NoError(t, err)
	assert.Equal(t, 16, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, time.Date(2026, 4, 2, 16, 30, 0, 0, loc), at)
}

func TestPickupAt_BadDate(t *testing.T) {
	f := validForm()
	f.PickupDate = "02/04/2026"

	_, err := f.PickupAt(time.UTC)
	assert.True(t, httperr.IsBusiness(err, "invalid_pickup_date"))
}
