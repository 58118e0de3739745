package partner_test

import (
	"testing"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartner(t *testing.T) *partner.DeliveryPartner {
	t.Helper()

	p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi Kumar", "+911234567890", "KA-01-AB-1234")
	require.NoError(t, err)
	return p
}

func TestNewDeliveryPartner_StartsActiveAndAvailable(t *testing.T) {
	p := newTestPartner(t)

	assert.True(t, p.IsActive())
	assert.True(t, p.IsAvailable())
	assert.Equal(t, 0.0, p.Rating())
	assert.Equal(t, 0, p.TotalDeliveries())
	assert.Equal(t, 0, p.TotalEarnings())
	assert.Nil(t, p.Location())
	assert.Nil(t, p.LocatedAt())
}

func TestNewDeliveryPartner_RequiresNameAndPhone(t *testing.T) {
	_, err := partner.NewDeliveryPartner(kernel.NewUUID(), "", "+911234567890", "")
	require.ErrorIs(t, err, partner.ErrNameIsRequired)

	_, err = partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi Kumar", "", "")
	require.ErrorIs(t, err, partner.ErrPhoneIsRequired)

	_, err = partner.NewDeliveryPartner(kernel.UUID{}, "Ravi Kumar", "+911234567890", "")
	require.Error(t, err)
}

func TestDeliveryPartner_Validate(t *testing.T) {
	var p partner.DeliveryPartner
	require.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)

	require.NoError(t, newTestPartner(t).Validate())
}

func TestDeliveryPartner_AvailabilityToggle(t *testing.T) {
	p := newTestPartner(t)

	p.MarkBusy()
	assert.False(t, p.IsAvailable())

	require.NoError(t, p.MarkAvailable())
	assert.True(t, p.IsAvailable())
}

func TestDeliveryPartner_DeactivateBlocksAvailability(t *testing.T) {
	p := newTestPartner(t)

	p.Deactivate()
	assert.False(t, p.IsActive())
	assert.False(t, p.IsAvailable())

	err := p.MarkAvailable()
	require.ErrorIs(t, err, partner.ErrPartnerIsInactive)

	p.Activate()
	assert.True(t, p.IsActive())
	assert.False(t, p.IsAvailable())
	require.NoError(t, p.MarkAvailable())
}

func TestDeliveryPartner_RecordDelivery(t *testing.T) {
	p := newTestPartner(t)
	p.MarkBusy()

	require.NoError(t, p.RecordDelivery(30))
	require.NoError(t, p.RecordDelivery(30))

	assert.Equal(t, 2, p.TotalDeliveries())
	assert.Equal(t, 60, p.TotalEarnings())
	assert.True(t, p.IsAvailable())

	require.Error(t, p.RecordDelivery(-1))
}

func TestDeliveryPartner_RecordDeliveryKeepsInactivePartnerUnavailable(t *testing.T) {
	p := newTestPartner(t)
	p.Deactivate()

	require.NoError(t, p.RecordDelivery(30))

	assert.Equal(t, 1, p.TotalDeliveries())
	assert.False(t, p.IsAvailable())
}

func TestDeliveryPartner_SetRatingBounds(t *testing.T) {
	p := newTestPartner(t)

	require.NoError(t, p.SetRating(4.3))
	assert.Equal(t, 4.3, p.Rating())

	require.Error(t, p.SetRating(-0.1))
	require.Error(t, p.SetRating(5.1))
	assert.Equal(t, 4.3, p.Rating())
}

func TestDeliveryPartner_MoveTo(t *testing.T) {
	p := newTestPartner(t)
	loc, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	at := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	require.NoError(t, p.MoveTo(loc, at))

	require.NotNil(t, p.Location())
	assert.True(t, loc.IsEqual(*p.Location()))
	require.NotNil(t, p.LocatedAt())
	assert.Equal(t, at, *p.LocatedAt())
}

func TestRestoreDeliveryPartner_RoundTrip(t *testing.T) {
	p := newTestPartner(t)
	loc, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	at := time.Now()
	require.NoError(t, p.MoveTo(loc, at))
	require.NoError(t, p.SetRating(4.5))
	require.NoError(t, p.RecordDelivery(30))
	p.SetPushToken("device-token-123")

	restored, err := partner.RestoreDeliveryPartner(
		p.ID(), p.Name(), p.Phone(), p.VehicleNumber(), p.PushToken(),
		p.IsAvailable(), p.IsActive(), p.Rating(),
		p.TotalDeliveries(), p.TotalEarnings(),
		p.Location(), p.LocatedAt(),
	)

	require.NoError(t, err)
	assert.True(t, p.IsEqual(restored))
	assert.Equal(t, p.Name(), restored.Name())
	assert.Equal(t, p.Rating(), restored.Rating())
	assert.Equal(t, p.TotalDeliveries(), restored.TotalDeliveries())
	assert.Equal(t, p.TotalEarnings(), restored.TotalEarnings())
	assert.Equal(t, "device-token-123", restored.PushToken())
	require.NotNil(t, restored.Location())
	assert.True(t, loc.IsEqual(*restored.Location()))
}

func TestRestoreDeliveryPartner_RejectsInvalidState(t *testing.T) {
	_, err := partner.RestoreDeliveryPartner(
		kernel.NewUUID(), "Ravi Kumar", "+911234567890", "", "",
		true, true, 6.0, 0, 0, nil, nil,
	)
	require.Error(t, err)

	_, err = partner.RestoreDeliveryPartner(
		kernel.NewUUID(), "Ravi Kumar", "+911234567890", "", "",
		true, true, 4.0, -1, 0, nil, nil,
	)
	require.Error(t, err)
}
