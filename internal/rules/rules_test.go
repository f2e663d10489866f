package rules

import (
	"errors"
	"testing"

	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateCreation(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		want    error
	}{
		{name: "zero", balance: d("0"), want: apperr.ErrBalanceBelowMinimum},
		{name: "fifty", balance: d("50"), want: apperr.ErrBalanceBelowMinimum},
		{name: "just below", balance: d("99.99"), want: apperr.ErrBalanceBelowMinimum},
		{name: "negative", balance: d("-500"), want: apperr.ErrBalanceBelowMinimum},
		{name: "exactly minimum", balance: d("100"), want: nil},
		{name: "above minimum", balance: d("500"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCreation(tt.balance); !errors.Is(err, tt.want) {
				t.Errorf("[%s] expected %v got %v", tt.name, tt.want, err)
			}
		})
	}
}

func TestValidateDeposit(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   error
	}{
		{name: "small", amount: d("1"), want: nil},
		{name: "exactly cap", amount: d("10000"), want: nil},
		{name: "just above cap", amount: d("10000.01"), want: apperr.ErrDepositTooLarge},
		{name: "well above cap", amount: d("15000"), want: apperr.ErrDepositTooLarge},
		{name: "huge", amount: d("500000"), want: apperr.ErrDepositTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDeposit(tt.amount); !errors.Is(err, tt.want) {
				t.Errorf("[%s] expected %v got %v", tt.name, tt.want, err)
			}
		})
	}
}

func TestValidateWithdrawalLimit(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		total  decimal.Decimal
		want   error
	}{
		{name: "above share of total", amount: d("600"), total: d("650"), want: apperr.ErrWithdrawalTooLarge},
		{name: "exactly share of total", amount: d("585"), total: d("650"), want: nil},
		{name: "below share of total", amount: d("580"), total: d("650"), want: nil},
		{name: "tiny total", amount: d("100"), total: d("10"), want: apperr.ErrWithdrawalTooLarge},
		{name: "no accounts", amount: d("1"), total: d("0"), want: apperr.ErrWithdrawalTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateWithdrawalLimit(tt.amount, tt.total); !errors.Is(err, tt.want) {
				t.Errorf("[%s] expected %v got %v", tt.name, tt.want, err)
			}
		})
	}
}

func TestValidateWithdrawalFloor(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		amount  decimal.Decimal
		want    error
	}{
		{name: "leaves exactly minimum", balance: d("500"), amount: d("400"), want: nil},
		{name: "leaves plenty", balance: d("700"), amount: d("100"), want: nil},
		{name: "drops below minimum", balance: d("500"), amount: d("580"), want: apperr.ErrBalanceBelowMinimum},
		{name: "one cent short", balance: d("500"), amount: d("400.01"), want: apperr.ErrBalanceBelowMinimum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateWithdrawalFloor(tt.balance, tt.amount); !errors.Is(err, tt.want) {
				t.Errorf("[%s] expected %v got %v", tt.name, tt.want, err)
			}
		})
	}
}
