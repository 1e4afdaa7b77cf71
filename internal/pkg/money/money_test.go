//go:build unit

package money_test

import (
	"testing"

	"travel-broker/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		minor    int64
		currency string
		want     string
	}{
		{150000, "USD", "1,500 USD"},
		{150050, "usd", "1,500.50 USD"},
		{99, "EUR", "0.99 EUR"},
		{0, "EUR", "0 EUR"},
		{123456789, "UZS", "1,234,567.89 UZS"},
		{-5000, "USD", "-50 USD"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.minor, tt.currency))
		})
	}
}
