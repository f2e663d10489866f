package cqrs

import "github.com/shopspring/decimal"

type CreateAccountCommand struct {
	UserID  int64
	Balance decimal.Decimal
}

type DeleteAccountCommand struct {
	UserID    int64
	AccountID int64
}

type DepositCommand struct {
	UserID    int64
	AccountID int64
	Amount    decimal.Decimal
}

type WithdrawCommand struct {
	UserID    int64
	AccountID int64
	Amount    decimal.Decimal
}
