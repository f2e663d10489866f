// Package rules holds the admission checks for account mutations. Every
// function is pure: it reads its arguments and returns nil or a validation
// error from apperr.
package rules

import (
	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/shopspring/decimal"
)

var (
	MinimumBalance  = decimal.NewFromInt(100)
	MaximumDeposit  = decimal.NewFromInt(10000)
	WithdrawalShare = decimal.RequireFromString("0.9")
)

// ValidateCreation rejects an opening balance below MinimumBalance.
func ValidateCreation(balance decimal.Decimal) error {
	if balance.LessThan(MinimumBalance) {
		return apperr.ErrBalanceBelowMinimum
	}
	return nil
}

// ValidateDeposit rejects a single deposit above MaximumDeposit.
func ValidateDeposit(amount decimal.Decimal) error {
	if amount.GreaterThan(MaximumDeposit) {
		return apperr.ErrDepositTooLarge
	}
	return nil
}

// ValidateWithdrawalLimit rejects an amount above WithdrawalShare of total,
// where total is the user's balance across all accounts before the withdrawal.
func ValidateWithdrawalLimit(amount, total decimal.Decimal) error {
	if amount.GreaterThan(total.Mul(WithdrawalShare)) {
		return apperr.ErrWithdrawalTooLarge
	}
	return nil
}

// ValidateWithdrawalFloor rejects a withdrawal that would leave the account
// below MinimumBalance.
func ValidateWithdrawalFloor(accountBalance, amount decimal.Decimal) error {
	if accountBalance.Sub(amount).LessThan(MinimumBalance) {
		return apperr.ErrBalanceBelowMinimum
	}
	return nil
}
