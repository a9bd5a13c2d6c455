package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusIncomplete))
	assert.True(t, ValidOrderStatus(OrderStatusComplete))

	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("all"))
	assert.False(t, ValidOrderStatus("done"))
	assert.False(t, ValidOrderStatus("Incomplete"))
}
