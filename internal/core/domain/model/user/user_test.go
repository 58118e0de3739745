package user_test

import (
	"testing"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Customer(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Anita Desai", "+919876543210", user.Customer, nil)

	require.NoError(t, err)
	assert.Equal(t, user.Customer, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.PartnerID())
	assert.Empty(t, u.PushToken())
}

func TestNewUser_DeliveryPartnerLinksAggregate(t *testing.T) {
	partnerID := kernel.NewUUID()

	u, err := user.NewUser(kernel.NewUUID(), "Ravi Kumar", "+911234567890", user.DeliveryPartner, &partnerID)

	require.NoError(t, err)
	require.NotNil(t, u.PartnerID())
	assert.True(t, partnerID.IsEqual(*u.PartnerID()))
}

func TestNewUser_PartnerIDRejectedForOtherRoles(t *testing.T) {
	partnerID := kernel.NewUUID()

	_, err := user.NewUser(kernel.NewUUID(), "Anita Desai", "+919876543210", user.Customer, &partnerID)
	require.Error(t, err)

	_, err = user.NewUser(kernel.NewUUID(), "Admin", "+910000000000", user.Admin, &partnerID)
	require.Error(t, err)
}

func TestNewUser_RejectsInvalidInput(t *testing.T) {
	_, err := user.NewUser(kernel.NewUUID(), "", "+919876543210", user.Customer, nil)
	require.ErrorIs(t, err, user.ErrNameIsRequired)

	_, err = user.NewUser(kernel.NewUUID(), "Anita Desai", "", user.Customer, nil)
	require.ErrorIs(t, err, user.ErrPhoneIsRequired)

	_, err = user.NewUser(kernel.NewUUID(), "Anita Desai", "+919876543210", user.UnknownRole, nil)
	require.Error(t, err)
}

func TestRole_WireFormat(t *testing.T) {
	assert.Equal(t, "customer", user.Customer.String())
	assert.Equal(t, "delivery_partner", user.DeliveryPartner.String())
	assert.Equal(t, "admin", user.Admin.String())
	assert.Equal(t, "unknown", user.UnknownRole.String())

	role, err := user.RoleFromString("delivery_partner")
	require.NoError(t, err)
	assert.Equal(t, user.DeliveryPartner, role)

	_, err = user.RoleFromString("superuser")
	require.Error(t, err)
}

func TestUser_ActivationToggle(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Anita Desai", "+919876543210", user.Customer, nil)
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}

func TestRestoreUser_RoundTrip(t *testing.T) {
	partnerID := kernel.NewUUID()
	u, err := user.NewUser(kernel.NewUUID(), "Ravi Kumar", "+911234567890", user.DeliveryPartner, &partnerID)
	require.NoError(t, err)
	u.SetPushToken("device-token-456")
	u.Deactivate()

	restored, err := user.RestoreUser(
		u.ID(), u.Name(), u.Phone(), u.Role(), u.PartnerID(),
		u.PushToken(), u.IsActive(),
	)

	require.NoError(t, err)
	assert.True(t, u.IsEqual(restored))
	assert.Equal(t, "device-token-456", restored.PushToken())
	assert.False(t, restored.IsActive())
	require.NotNil(t, restored.PartnerID())
}
