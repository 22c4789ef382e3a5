package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcess,
		OrderStatusOnDelivery,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}

	allowed := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:    {OrderStatusProcess: true, OrderStatusCancelled: true},
		OrderStatusProcess:    {OrderStatusOnDelivery: true, OrderStatusCancelled: true},
		OrderStatusOnDelivery: {OrderStatusCompleted: true},
		OrderStatusCompleted:  {},
		OrderStatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			assert.Equalf(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	assert.Empty(t, ValidTransitions[OrderStatusCompleted])
	assert.Empty(t, ValidTransitions[OrderStatusCancelled])
}

func TestSelfTransitionsRejected(t *testing.T) {
	for from := range ValidTransitions {
		assert.Falsef(t, from.CanTransitionTo(from), "self transition %s", from)
	}
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input string
		want  OrderStatus
		ok    bool
	}{
		{"pending", OrderStatusPending, true},
		{"process", OrderStatusProcess, true},
		{"ondelivery", OrderStatusOnDelivery, true},
		{"completed", OrderStatusCompleted, true},
		{"cancelled", OrderStatusCancelled, true},
		{"shipped", "", false},
		{"Pending", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseOrderStatus(tt.input)
		assert.Equalf(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}
