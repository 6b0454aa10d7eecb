package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfHourSlots(t *testing.T) {
	slots := halfHourSlots(480, 1020)
	assert.Len(t, slots, 18)
	assert.Equal(t, "08:00 AM - 08:30 AM", slots[0])
	assert.Equal(t, "12:00 PM - 12:30 PM", slots[8])
	assert.Equal(t, "04:30 PM - 05:00 PM", slots[len(slots)-1])

	assert.Empty(t, halfHourSlots(600, 620))
}
