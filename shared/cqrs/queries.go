package cqrs

// ---------- User queries ----------

// GetUserQuery fetches a single user and its accounts by ID.
type GetUserQuery struct {
	UserID int64
}

// ListUsersQuery fetches every user known to the ledger.
type ListUsersQuery struct{}
