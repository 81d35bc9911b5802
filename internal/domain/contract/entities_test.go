package contract

import "testing"

func TestPayment_Payable(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentPending, true},
		{PaymentLate, true},
		{PaymentPaid, false},
		{PaymentMissed, false},
		{PaymentCancelled, false},
	}
	for _, tt := range tests {
		p := &Payment{Status: tt.status}
		if got := p.Payable(); got != tt.want {
			t.Errorf("Payable(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
