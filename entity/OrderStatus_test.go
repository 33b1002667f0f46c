package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for s := StatusReceived; s <= StatusCancelled; s++ {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, OrderStatus(0).IsValid())
	assert.False(t, OrderStatus(7).IsValid())
	assert.False(t, OrderStatus(-1).IsValid())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReceived.IsTerminal())
	assert.False(t, StatusInKitchen.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
}
