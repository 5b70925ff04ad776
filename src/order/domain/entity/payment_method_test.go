package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	valid := []string{"BANK_TRANSFER", "CASH_ON_DELIVERY", "CREDIT_CARD", "PAYPAL", "CASH", "CARD_GATEWAY"}
	for _, s := range valid {
		m, err := ParsePaymentMethod(s)
		require.NoError(t, err, s)
		assert.Equal(t, PaymentMethod(s), m)
	}

	for _, s := range []string{"", "cash", "BITCOIN", "CARD"} {
		_, err := ParsePaymentMethod(s)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod, s)
	}
}
