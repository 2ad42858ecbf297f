package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderPending:        {OrderConfirmed, OrderCancelled},
		OrderConfirmed:      {OrderPreparing, OrderCancelled},
		OrderPreparing:      {OrderOutForDelivery},
		OrderOutForDelivery: {OrderDelivered},
		OrderDelivered:      {},
		OrderCancelled:      {},
	}
	all := []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled}

	for from, targets := range allowed {
		for _, to := range all {
			want := false
			for _, a := range targets {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatusValidAndCancellable(t *testing.T) {
	assert.True(t, OrderOutForDelivery.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("pending").Valid())

	assert.True(t, OrderPending.Cancellable())
	assert.True(t, OrderConfirmed.Cancellable())
	assert.False(t, OrderPreparing.Cancellable())
	assert.False(t, OrderCancelled.Cancellable())
}

func TestUserIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{UserType: UserTypeClient}).IsAdmin())
	assert.True(t, (&User{UserType: UserTypeAdmin}).IsAdmin())
}
