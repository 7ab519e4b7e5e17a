package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileByName(t *testing.T) {
	p, err := services.ProfileByName("")
	require.NoError(t, err)
	assert.Equal(t, services.ProfileIntake, p.Name)
	assert.Equal(t, order.Basic, p.Model)
	assert.Equal(t, services.ShipmentPriority, p.Ordering)
	assert.Equal(t, 30*24*time.Hour, p.History.Window)

	p, err = services.ProfileByName("Fulfillment")
	require.NoError(t, err)
	assert.Equal(t, order.Extended, p.Model)
	assert.Equal(t, services.StatusPriority, p.Ordering)
	assert.Zero(t, p.History.Window)
	assert.Equal(t, 50, p.History.Cap)
	assert.Equal(t, time.Hour, p.StaleAfter)

	_, err = services.ProfileByName("dispatch")
	assert.Error(t, err)
}

func TestWorkflowProfile_Validate(t *testing.T) {
	p := services.IntakeProfile()
	require.NoError(t, p.Validate())

	p.StaleAfter = 0
	assert.Error(t, p.Validate())

	p = services.IntakeProfile()
	p.History.Cap = -1
	assert.Error(t, p.Validate())
}
