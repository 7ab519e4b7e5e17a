package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(order.Intake{
		ClientName:   "Ferretería Norte",
		ShipmentType: order.Local,
		Shift:        order.Saltillo,
		Attachments:  []string{"a.pdf"},
	})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Ferretería Norte", cmd.Intake().ClientName)
	assert.Equal(t, order.Saltillo, cmd.Intake().Shift)
	assert.Equal(t, []string{"a.pdf"}, cmd.Intake().Attachments)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.Intake{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "client name")
	assert.Contains(t, err.Error(), "shipment type")
}

func TestNewCreateOrderCommand_ShiftOnForeignOrder(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.Intake{
		ClientName:   "Cliente",
		ShipmentType: order.Foreign,
		Shift:        order.MorningLocal,
	})
	assert.ErrorIs(t, err, order.ErrShiftRequiresLocalShipment)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
