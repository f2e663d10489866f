package models

import "github.com/shopspring/decimal"

// User is the aggregate returned by every ledger operation. Accounts keeps
// creation order.
type User struct {
	ID       int64     `json:"id"`
	Accounts []Account `json:"accounts"`
}

type Account struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// Clone returns a deep copy so callers never share the store's slice.
func (u User) Clone() User {
	accounts := make([]Account, len(u.Accounts))
	copy(accounts, u.Accounts)
	return User{ID: u.ID, Accounts: accounts}
}

// TotalBalance sums the balances of every account the user owns.
func (u User) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range u.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// Account returns the account with the given id, if the user owns it.
func (u User) Account(id int64) (Account, bool) {
	for _, a := range u.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
