package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.True(t, ValidID(id), "generated id %q must be 24 hex chars", id)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("64a1b2c3d4e5f60718293a4b"))
	assert.True(t, ValidID("64A1B2C3D4E5F60718293A4B"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("64a1b2c3d4e5f60718293a4"))    // 23 chars
	assert.False(t, ValidID("64a1b2c3d4e5f60718293a4bc"))  // 25 chars
	assert.False(t, ValidID("zza1b2c3d4e5f60718293a4b"))   // non-hex
	assert.False(t, ValidID("64a1b2c3-4e5f-6071-8293a4b")) // punctuation
}

func TestBookingStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingPending, BookingPending, true},
		{BookingConfirmed, BookingConfirmed, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestListingTypeValid(t *testing.T) {
	for _, typ := range []ListingType{TypeApartment, TypeHouse, TypeVilla, TypeHotel} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, ListingType("castle").Valid())
	assert.False(t, ListingType("").Valid())
}
