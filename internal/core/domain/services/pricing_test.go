package services_test

import (
	"testing"

	"waterdrop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPricer_DeliveryFee(t *testing.T) {
	pricer := services.NewPricer()

	assert.Equal(t, 20, pricer.DeliveryFee(0))
	assert.Equal(t, 20, pricer.DeliveryFee(55))
	assert.Equal(t, 20, pricer.DeliveryFee(99))
	assert.Equal(t, 0, pricer.DeliveryFee(100))
	assert.Equal(t, 0, pricer.DeliveryFee(101))
	assert.Equal(t, 0, pricer.DeliveryFee(500))
}

func TestPricer_PartnerEarningIsFlat(t *testing.T) {
	pricer := services.NewPricer()

	assert.Equal(t, 30, pricer.PartnerEarning())
}
