package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JAYASASIREKHA/fooddelivery/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"created to confirmed", models.StatusCreated, models.StatusConfirmed, true},
		{"created to cancelled", models.StatusCreated, models.StatusCancelled, true},
		{"confirmed to preparing", models.StatusConfirmed, models.StatusPreparing, true},
		{"confirmed to cancelled", models.StatusConfirmed, models.StatusCancelled, true},
		{"preparing to out for delivery", models.StatusPreparing, models.StatusOutForDelivery, true},
		{"out for delivery to delivered", models.StatusOutForDelivery, models.StatusDelivered, true},
		{"no skipping ahead", models.StatusCreated, models.StatusDelivered, false},
		{"no going backward", models.StatusPreparing, models.StatusConfirmed, false},
		{"no cancel after preparing", models.StatusPreparing, models.StatusCancelled, false},
		{"no self transition", models.StatusCreated, models.StatusCreated, false},
		{"delivered is terminal", models.StatusDelivered, models.StatusOutForDelivery, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusCreated))
	assert.False(t, IsTerminal(models.StatusOutForDelivery))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusCreated, models.StatusConfirmed, models.StatusPreparing,
		models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled,
	} {
		assert.True(t, IsValidStatus(s), string(s))
	}
	assert.False(t, IsValidStatus("READY_FOR_PICKUP"))
	assert.False(t, IsValidStatus(""))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusConfirmed, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusCreated))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
}
