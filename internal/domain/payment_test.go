package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     PaymentStatus
		to       PaymentStatus
		expected bool
	}{
		{"pending to paid", PaymentStatusPending, PaymentStatusPaid, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending to refunded", PaymentStatusPending, PaymentStatusRefunded, false},
		{"paid to refunded", PaymentStatusPaid, PaymentStatusRefunded, true},
		{"paid to failed", PaymentStatusPaid, PaymentStatusFailed, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusPaid, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{Status: tt.from}
			assert.Equal(t, tt.expected, p.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentIsSettled(t *testing.T) {
	assert.False(t, (&Payment{Status: PaymentStatusPending}).IsSettled())
	assert.True(t, (&Payment{Status: PaymentStatusPaid}).IsSettled())
	assert.False(t, (&Payment{Status: PaymentStatusFailed}).IsSettled())
	assert.True(t, (&Payment{Status: PaymentStatusRefunded}).IsSettled())
}
